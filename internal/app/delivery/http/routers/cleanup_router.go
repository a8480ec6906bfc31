package routers

import (
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCleanupRoutes(router chi.Router, middlewares *middlewares.Middlewares, cleanupController *controllers.CleanupController) {
	router.With(middlewares.RequireCleanupToken).Post("/cleanup-expired-codes", cleanupController.CleanupExpiredCodes)
}
