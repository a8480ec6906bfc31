package routers

import (
	"fmt"
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"
	"phonelink-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	AuthCode  *controllers.AuthCodeController
	PhoneLink *controllers.PhoneLinkController
	Webhook   *controllers.WebhookController
	Cleanup   *controllers.CleanupController
	Todo      *controllers.TodoController
	APIToken  *controllers.APITokenController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept",
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXAPIKey,
			constvars.HeaderXRequestID,
			constvars.HeaderXSignature256,
			constvars.HeaderXHubSignature256,
		},
		ExposedHeaders: []string{
			constvars.HeaderXRequestID,
			constvars.HeaderRetryAfter,
			constvars.HeaderXRateLimitLimit,
			constvars.HeaderXRateLimitRemain,
		},
		MaxAge: 300,
	}
	router.Use(cors.Handler(corsOptions))

	window := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, window))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		attachAuthCodeRoutes(r, middlewares, ctrls.AuthCode)
		attachPhoneLinkRoutes(r, internalConfig, middlewares, ctrls.PhoneLink)
		attachWebhookRoutes(r, internalConfig, middlewares, ctrls.Webhook)
		attachCleanupRoutes(r, middlewares, ctrls.Cleanup)

		r.Route("/todos", func(r chi.Router) {
			attachTodoRoutes(r, middlewares, ctrls.Todo)
		})

		r.Route("/api-tokens", func(r chi.Router) {
			attachAPITokenRoutes(r, middlewares, ctrls.APIToken)
		})
	})
}

func windowSeconds(seconds int) time.Duration {
	if seconds <= 0 {
		return time.Minute
	}
	return time.Duration(seconds) * time.Second
}
