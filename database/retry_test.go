package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code, Message: "test error"}
}

func TestSQLState(t *testing.T) {
	assert.Equal(t, "23505", SQLState(pgError("23505")))
	assert.Equal(t, "23505", SQLState(fmt.Errorf("insert failed: %w", pgError("23505"))), "Wrapped errors still classify")
	assert.Empty(t, SQLState(errors.New("plain error")))
	assert.Empty(t, SQLState(nil))
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"context cancelled", context.Canceled, false},
		{"no rows", sql.ErrNoRows, false},
		{"unique violation", pgError("23505"), false},
		{"foreign key violation", pgError("23503"), false},
		{"undefined column", pgError("42703"), false},
		{"serialization failure", pgError("40001"), true},
		{"deadlock", pgError("40P01"), true},
		{"connection failure", pgError("08006"), true},
		{"too many connections", pgError("53300"), true},
		{"cannot connect now", pgError("57P03"), true},
		{"read only transaction", pgError("25006"), false},
		{"network refused without sqlstate", errors.New("dial tcp: connection refused"), true},
		{"io timeout without sqlstate", errors.New("read tcp: i/o timeout"), true},
		{"unrelated error", errors.New("something else entirely"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0, EnableRetry: true}

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return pgError("23505")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "Permanent errors fail immediately")
}

func TestRetryWithBackoffRecoversTransientError(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0, EnableRetry: true}

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return pgError("40001")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoffExhaustsAttempts(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2.0, EnableRetry: true}

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return pgError("08006")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoffDisabled(t *testing.T) {
	cfg := RetryConfig{EnableRetry: false}

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return pgError("40001")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoffHonorsContext(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 5, InitialDelay: 50 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2.0, EnableRetry: true}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := RetryWithBackoff(ctx, cfg, func() error {
		return pgError("08006")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
