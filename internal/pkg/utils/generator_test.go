package utils

import (
	"errors"
	"testing"
	"time"

	"phonelink-service/internal/pkg/constvars"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAuthCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateAuthCode()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, code, constvars.AuthCodeMin)
		assert.LessOrEqual(t, code, constvars.AuthCodeMax)
	}
}

func TestParseFlexibleDate(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		parsed, err := ParseFlexibleDate("2025-03-01T10:30:00+02:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC), parsed)
	})

	t.Run("date only", func(t *testing.T) {
		parsed, err := ParseFlexibleDate(" 2025-03-01 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseFlexibleDate("next tuesday")
		assert.Error(t, err)
	})
}

func TestUniqueViolationConstraint(t *testing.T) {
	wrapped := &wrapErr{err: &pq.Error{Code: "23505", Constraint: "uq_phone_links_active_code"}}
	constraint, ok := UniqueViolationConstraint(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "uq_phone_links_active_code", constraint)

	_, ok = UniqueViolationConstraint(&pq.Error{Code: "23503"})
	assert.False(t, ok, "foreign key violation is not a unique violation")

	_, ok = UniqueViolationConstraint(errors.New("boom"))
	assert.False(t, ok)
}

type wrapErr struct{ err error }

func (w *wrapErr) Error() string { return "wrapped: " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
