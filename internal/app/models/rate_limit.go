package models

import "time"

type RateLimitDecision struct {
	Allowed    bool
	Count      int
	Remaining  int
	RetryAfter time.Duration
}
