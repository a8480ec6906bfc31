package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingUserIDKey      = "user_id"
	LoggingPhoneLinkIDKey = "phone_link_id"
	LoggingPhoneNumberKey = "phone_number"
	LoggingTodoIDKey      = "todo_id"
	LoggingCountKey       = "count"
	LoggingAttemptKey     = "attempt"
	LoggingMessageTypeKey = "message_type"
	LoggingTriggerKey     = "trigger"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingClientIPKey   = "client_ip"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingRateLimitKeyKey   = "rate_limit_key"
	LoggingRateLimitCountKey = "rate_limit_count"
	LoggingRetryAfterKey     = "retry_after"

	LoggingRedisKey                = "redis_key"
	LoggingLockValueKey            = "lock_value"
	LoggingLockExpirationTimeKey   = "lock_expiration_time"
	LoggingQueueNameKey            = "queue_name"
	LoggingBucketNameKey           = "bucket_name"
	LoggingObjectNameKey           = "object_name"
	LoggingCronSpecKey             = "cron_spec"
	LoggingCollectionNameKey       = "collection_name"
	LoggingMigrationsAppliedKey    = "migrations_applied"
	LoggingRateLimitBackendNameKey = "rate_limit_backend"
)
