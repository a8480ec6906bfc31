package constvars

const (
	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusGone                = 410
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType       = "Content-Type"
	HeaderAuthorization     = "Authorization"
	HeaderXRequestID        = "X-Request-ID"
	HeaderXAPIKey           = "X-API-Key"
	HeaderXSignature256     = "X-Signature-256"
	HeaderXHubSignature256  = "X-Hub-Signature-256"
	HeaderXForwardedFor     = "X-Forwarded-For"
	HeaderXRealIP           = "X-Real-IP"
	HeaderCFConnectingIP    = "CF-Connecting-IP"
	HeaderRetryAfter        = "Retry-After"
	HeaderXRateLimitLimit   = "X-RateLimit-Limit"
	HeaderXRateLimitRemain  = "X-RateLimit-Remaining"
	AuthorizationBearerType = "Bearer "
	SignatureSHA256Prefix   = "sha256="
)
