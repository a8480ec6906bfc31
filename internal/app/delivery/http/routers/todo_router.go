package routers

import (
	"phonelink-service/internal/app/delivery/http/controllers"
	"phonelink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTodoRoutes(router chi.Router, middlewares *middlewares.Middlewares, todoController *controllers.TodoController) {
	router.Use(middlewares.APIKeyOrSession)

	router.Get("/", todoController.ListTodos)
	router.Post("/", todoController.CreateTodo)
	router.Get("/{id}", todoController.GetTodo)
	router.Put("/{id}", todoController.UpdateTodo)
	router.Delete("/{id}", todoController.DeleteTodo)
}
