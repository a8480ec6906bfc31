package constvars

import "time"

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	TimeoutRequest = 10 * time.Second
)

// Auth code lifecycle
const (
	AuthCodeMin                 = 10000000
	AuthCodeMax                 = 99999999
	AuthCodeValidity            = 24 * time.Hour
	AuthCodeMaxGenerateAttempts = 5
	AuthCommandPrefix           = "#auth"
)

const (
	WebhookMessageTypeAuth = "auth"

	WebhookResultTypeAuth     = "auth"
	WebhookResultTypeUnlinked = "unlinked"
	WebhookResultTypeMessage  = "message"

	PhoneLinkStatusLinked   = "linked"
	PhoneLinkStatusUnlinked = "unlinked"
)

const (
	TodoPriorityHigh   = 1
	TodoPriorityMedium = 2
	TodoPriorityLow    = 3
)

const (
	RateLimitBackendRedis  = "redis"
	RateLimitBackendMemory = "memory"

	RateLimitGroupWebhook     = "webhook"
	RateLimitGroupPhoneStatus = "phone-status"
	RateLimitKeyPrefix        = "ratelimit"
)

const (
	ClientIPUnknown = "unknown"
)

const (
	CleanupLeaderLockKey   = "cleanup:leader"
	CleanupLeaderLockTTL   = 2 * time.Minute
	CleanupDefaultCronSpec = "@hourly"
	CleanupReportPrefix    = "cleanup"
)

const (
	DateLayoutYYYYMMDD = "2006-01-02"
)
