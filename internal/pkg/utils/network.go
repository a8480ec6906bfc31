package utils

import (
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"strings"
)

// ClientIP resolves the caller address from proxy headers. RemoteAddr is not
// consulted because the service is deployed behind a proxy.
func ClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get(constvars.HeaderXForwardedFor); forwardedFor != "" {
		first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get(constvars.HeaderXRealIP)); realIP != "" {
		return realIP
	}
	if connectingIP := strings.TrimSpace(r.Header.Get(constvars.HeaderCFConnectingIP)); connectingIP != "" {
		return connectingIP
	}
	return constvars.ClientIPUnknown
}

// RateLimitClientID keys rate limit counters on the first forwarded-for hop.
func RateLimitClientID(r *http.Request) string {
	forwardedFor := r.Header.Get(constvars.HeaderXForwardedFor)
	if forwardedFor == "" {
		return constvars.ClientIPUnknown
	}
	first := strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	if first == "" {
		return constvars.ClientIPUnknown
	}
	return first
}

func BearerToken(r *http.Request) string {
	header := r.Header.Get(constvars.HeaderAuthorization)
	if len(header) < len(constvars.AuthorizationBearerType) ||
		!strings.EqualFold(header[:len(constvars.AuthorizationBearerType)], constvars.AuthorizationBearerType) {
		return ""
	}
	return strings.TrimSpace(header[len(constvars.AuthorizationBearerType):])
}
