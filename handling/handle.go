package handling

import (
	"errors"
	"net/http"

	"brandia_server/lib"

	"github.com/MonkyMars/gecho"
)

func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	gecho.InternalServerError(w, gecho.Send())
}

// HandleServiceError maps service-layer sentinel errors onto client
// responses. Driver details never reach the client; unknown errors are
// logged and surfaced as a generic 500.
func HandleServiceError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Resource not found"), gecho.Send())
		return
	case errors.Is(err, lib.ErrConflict):
		gecho.BadRequest(w, gecho.WithMessage("Resource already exists"), gecho.Send())
		return
	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
		return
	}

	var ve *lib.ValidationError
	if errors.As(err, &ve) {
		gecho.BadRequest(w, gecho.WithMessage("Validation failed"), gecho.WithData(ve.Errors), gecho.Send())
		return
	}

	HandleError(err, msg, logger, w)
}
