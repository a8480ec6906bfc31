package routers

import (
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAPITokenRoutes(router chi.Router, middlewares *middlewares.Middlewares, apiTokenController *controllers.APITokenController) {
	router.Use(middlewares.APIKeyAuth)

	router.Get("/{id}", apiTokenController.NotImplemented)
	router.Put("/{id}", apiTokenController.NotImplemented)
	router.Delete("/{id}", apiTokenController.NotImplemented)
}
