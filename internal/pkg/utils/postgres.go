package utils

import (
	"errors"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// UniqueViolationConstraint returns the violated constraint name when err wraps
// a Postgres unique violation.
func UniqueViolationConstraint(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}
