package contracts

import (
	"context"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"time"
)

type TodoUsecase interface {
	ListTodos(ctx context.Context, principal models.Principal, filter requests.TodoFilter) (*responses.TodoList, error)
	CreateTodo(ctx context.Context, principal models.Principal, request *requests.CreateTodo) (*responses.TodoDetail, error)
	GetTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDetail, error)
	UpdateTodo(ctx context.Context, principal models.Principal, todoID string, request *requests.UpdateTodo) (*responses.TodoDetail, error)
	DeleteTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDeleted, error)
}

type TodoRepository interface {
	FindAll(ctx context.Context, filter requests.TodoFilter) ([]models.Todo, error)
	FindByID(ctx context.Context, todoID string) (*models.Todo, error)
	Create(ctx context.Context, todo *models.Todo) (*models.Todo, error)
	Update(ctx context.Context, todoID string, patch *models.TodoPatch, at time.Time) (*models.Todo, error)
	SoftDelete(ctx context.Context, todoID string, at time.Time) (*models.Todo, error)
}
