package lib

import (
	"brandia_server/database"
	"errors"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MapDBError converts driver-level errors into the sentinel errors handlers
// branch on. Anything unrecognized passes through untouched and surfaces as
// a generic server error.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	switch database.SQLState(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}

	return err
}
