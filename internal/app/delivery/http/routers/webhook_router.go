package routers

import (
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"
	"phonelink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Signature runs first so unsigned traffic never touches the allow-list or the limiter.
func attachWebhookRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	webhookController *controllers.WebhookController,
) {
	rateLimit := internalConfig.RateLimit
	router.With(
		middlewares.BodyBuffer,
		middlewares.VerifySignature,
		middlewares.IPAllowlist,
		middlewares.RateLimit(
			constvars.RateLimitGroupWebhook,
			rateLimit.WebhookMax,
			windowSeconds(rateLimit.WebhookWindowSeconds),
		),
	).Post("/webhook/evolution-api-secure", webhookController.HandleInboundMessage)
}
