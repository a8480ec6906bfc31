package routers

import (
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"
	"phonelink-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthCodeRoutes(router chi.Router, middlewares *middlewares.Middlewares, authCodeController *controllers.AuthCodeController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireUserSession)
		r.Get("/auth-code", authCodeController.GetAuthCode)
		r.Delete("/auth-code", authCodeController.DeactivateAuthCodes)
	})
}

func attachPhoneLinkRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	phoneLinkController *controllers.PhoneLinkController,
) {
	router.With(middlewares.APIKeyAuth).Post("/whatsapp-auth", phoneLinkController.WhatsAppAuth)
	router.With(middlewares.APIKeyAuth).Post("/phone-lookup", phoneLinkController.LookupPhone)

	rateLimit := internalConfig.RateLimit
	router.With(
		middlewares.APIKeyAuth,
		middlewares.IPAllowlist,
		middlewares.RateLimit(
			constvars.RateLimitGroupPhoneStatus,
			rateLimit.PhoneStatusMax,
			windowSeconds(rateLimit.PhoneStatusWindowSeconds),
		),
	).Post("/phone-status", phoneLinkController.GetPhoneStatus)
	router.Get("/phone-status", phoneLinkController.DescribePhoneStatus)

	router.With(middlewares.RequireUserSession).Post("/phone-unlink", phoneLinkController.UnlinkPhone)
}
