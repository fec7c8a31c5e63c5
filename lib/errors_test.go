package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapDBError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: "23505"}
	noData := &pgconn.PgError{Code: "P0002"}
	deadlock := &pgconn.PgError{Code: "40P01"}

	assert.Nil(t, MapDBError(nil))
	assert.ErrorIs(t, MapDBError(uniqueViolation), ErrConflict)
	assert.ErrorIs(t, MapDBError(fmt.Errorf("insert: %w", uniqueViolation)), ErrConflict, "Wrapped driver errors still map")
	assert.ErrorIs(t, MapDBError(noData), ErrNotFound)

	// Unrecognized codes pass through for the retry and logging layers
	assert.Equal(t, deadlock, MapDBError(deadlock))

	plain := errors.New("not a driver error")
	assert.Equal(t, plain, MapDBError(plain))
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrConflict, ErrNotFound)
	assert.NotErrorIs(t, ErrInvalidToken, ErrExpiredToken)
}
