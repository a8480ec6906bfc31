package utils

import (
	"phonelink-service/internal/pkg/constvars"
	"strings"
	"time"
)

// ParseFlexibleDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed.UTC(), nil
	}
	return time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, time.UTC)
}
