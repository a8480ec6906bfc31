package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error labels rendered in the "error" field
const (
	ErrClientUnauthorized        = "Unauthorized"
	ErrClientForbidden           = "Forbidden"
	ErrClientTooManyRequests     = "Too many requests"
	ErrClientInternalServerError = "Internal server error"
	ErrClientNotImplemented      = "Not implemented"
	ErrClientGatewayTimeout      = "Gateway timeout"
)

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "An unexpected error occurred"
	ErrClientServerLongRespond             = "The server is taking too long to respond"
	ErrClientInvalidJSONBody               = "Invalid JSON body"
	ErrClientCannotReadBody                = "Unable to read request body"

	ErrClientMissingAPIKey          = "Missing API key. Include X-API-Key header or Authorization: Bearer <key>"
	ErrClientInvalidAPIKey          = "Invalid API key"
	ErrClientServerConfiguration    = "Server configuration error"
	ErrClientMissingSignature       = "Missing signature header"
	ErrClientInvalidSignature       = "Invalid signature"
	ErrClientIPNotAllowed           = "IP address %s not allowed"
	ErrClientRateLimitExceeded      = "Rate limit exceeded. Try again later."
	ErrClientAuthorizationRequired  = "Authorization header required"
	ErrClientInvalidToken           = "Invalid token"
	ErrClientInvalidCleanupToken    = "Invalid cleanup token"
	ErrClientAPITokensNotSupported  = "API token management is not implemented yet"
	ErrClientMissingRequiredFields  = "Missing required fields"
	ErrClientWebhookMissingFields   = "Missing required fields: message, senderPhoneNumber"
	ErrClientPhoneNumberRequired    = "Phone number is required"
	ErrClientSenderPhoneRequired    = "senderPhoneNumber is required"
	ErrClientInvalidAuthCommand     = "Invalid message format. Use: #auth 12345678"
	ErrClientAuthCodeNotFound       = "Invalid or expired auth code"
	ErrClientAuthCodeExpired        = "Auth code expired. Please generate a new one."
	ErrClientAuthCodeAlreadyUsed    = "Auth code has already been used"
	ErrClientPhoneAlreadyLinked     = "Phone number is already linked to another account"
	ErrClientFailedToLinkPhone      = "Failed to link phone number"
	ErrClientFailedToIssueAuthCode  = "Failed to generate auth code"
	ErrClientNoLinkedPhoneNumber    = "No linked phone number found"
	ErrClientTitleRequired          = "Title is required"
	ErrClientTodoNotFound           = "Todo not found"
	ErrClientInvalidDueDate         = "due_date must be an RFC 3339 timestamp or YYYY-MM-DD"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "request validation failed"
	ErrDevCannotParseJSON             = "cannot parse JSON"
	ErrDevCannotMarshalJSON           = "cannot marshal JSON"
	ErrDevCannotReadBody              = "cannot read request body"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevAPIKeyMissing               = "API key missing from request"
	ErrDevAPIKeyInvalid               = "API key does not match"
	ErrDevAPIKeyNotConfigured         = "WEBHOOK_API_KEY is not configured"
	ErrDevWebhookSecretNotConfigured  = "WEBHOOK_SECRET is not configured"
	ErrDevCleanupTokenNotConfigured   = "CLEANUP_TOKEN is not configured"
	ErrDevIdentitySecretNotConfigured = "IDENTITY_JWT_SECRET is not configured"
	ErrDevSignatureMissing            = "signature header missing"
	ErrDevSignatureMismatch           = "HMAC-SHA256 signature mismatch"
	ErrDevIPNotAllowed                = "client IP %s is not in ALLOWED_IPS"
	ErrDevRateLimitExceeded           = "rate limit exceeded for key %s"
	ErrDevAuthorizationHeaderMissing  = "bearer token missing"
	ErrDevAuthTokenInvalid            = "bearer token failed verification"
	ErrDevAuthSigningMethod           = "unexpected token signing method"
	ErrDevAuthTokenMissingSubject     = "bearer token has no subject claim"
	ErrDevCleanupTokenInvalid         = "cleanup bearer token mismatch"
	ErrDevNotImplemented              = "endpoint not implemented"
	ErrDevMissingRequiredFields       = "required fields missing from body"
	ErrDevInvalidAuthCommand          = "message does not match the auth command pattern"
	ErrDevAuthCodeNotFound            = "no active phone link holds auth code %d"
	ErrDevAuthCodeExpired             = "auth code %d is older than the validity window"
	ErrDevAuthCodeAlreadyUsed         = "conditional link update affected no rows"
	ErrDevPhoneAlreadyLinked          = "phone number already held by another active phone link"
	ErrDevGenerateAuthCode            = "cannot generate a unique auth code"
	ErrDevNoLinkedPhoneNumber         = "user has no active phone link with a phone number"
	ErrDevTodoNotFound                = "todo %s not found"
	ErrDevInvalidDueDate              = "due_date cannot be parsed"

	ErrDevDBFailedToFindData       = "failed to find data"
	ErrDevDBFailedToInsertData     = "failed to insert data"
	ErrDevDBFailedToUpdateData     = "failed to update data"
	ErrDevDBFailedToIterateDataset = "failed to iterate dataset"
	ErrDevDBFailedToFindDocument   = "failed to find document"
	ErrDevDBFailedToDecodeDocument = "failed to decode document"

	ErrDevRedisSetData        = "failed to set redis data"
	ErrDevRedisGetData        = "failed to get redis data"
	ErrDevRedisDeleteData     = "failed to delete redis data"
	ErrDevRedisIncrementValue = "failed to increment redis value"
	ErrDevRedisUnlock         = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
)
