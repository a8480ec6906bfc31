package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_RAW_BODY                 ContextKey = "raw_body"
	CONTEXT_CLIENT_IP_KEY            ContextKey = "client_ip"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_AUTH_METHOD_KEY          ContextKey = "auth_method"
)

const (
	AuthMethodAPIKey  = "api_key"
	AuthMethodSession = "session"
)
