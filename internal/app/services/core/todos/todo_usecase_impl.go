package todos

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type todoUsecase struct {
	TodoRepository contracts.TodoRepository
	Log            *zap.Logger
	now            func() time.Time
}

var (
	todoUsecaseInstance contracts.TodoUsecase
	onceTodoUsecase     sync.Once
)

func NewTodoUsecase(todoRepository contracts.TodoRepository, logger *zap.Logger) contracts.TodoUsecase {
	onceTodoUsecase.Do(func() {
		todoUsecaseInstance = newTodoUsecase(todoRepository, logger)
	})
	return todoUsecaseInstance
}

func newTodoUsecase(todoRepository contracts.TodoRepository, logger *zap.Logger) *todoUsecase {
	return &todoUsecase{
		TodoRepository: todoRepository,
		Log:            logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (uc *todoUsecase) ListTodos(ctx context.Context, principal models.Principal, filter requests.TodoFilter) (*responses.TodoList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.ListTodos called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	if principal.IsUser() {
		filter.UserID = &principal.UserID
	}
	if filter.UserID != nil {
		if _, err := uuid.Parse(*filter.UserID); err != nil {
			return &responses.TodoList{Todos: []responses.Todo{}}, nil
		}
	}

	todos, err := uc.TodoRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("todoUsecase.ListTodos error fetching todos",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.TodoList{Todos: make([]responses.Todo, 0, len(todos))}
	for _, todo := range todos {
		response.Todos = append(response.Todos, todo.ConvertIntoResponse())
	}

	uc.Log.Info("todoUsecase.ListTodos succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(response.Todos)),
	)
	return response, nil
}

func (uc *todoUsecase) CreateTodo(ctx context.Context, principal models.Principal, request *requests.CreateTodo) (*responses.TodoDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.CreateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	title := strings.TrimSpace(request.Title)
	if title == "" {
		return nil, exceptions.ErrTitleRequired(nil)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	dueDate, err := parseDueDate(request.DueDate)
	if err != nil {
		return nil, err
	}

	priority := constvars.TodoPriorityHigh
	if request.Priority != nil {
		priority = *request.Priority
	}

	userID := request.UserID
	if principal.IsUser() {
		userID = &principal.UserID
	}

	now := uc.now()
	created, err := uc.TodoRepository.Create(ctx, &models.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: request.Description,
		Priority:    priority,
		DueDate:     dueDate,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		uc.Log.Error("todoUsecase.CreateTodo error creating todo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("todoUsecase.CreateTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, created.ID),
	)
	return &responses.TodoDetail{Todo: created.ConvertIntoResponse()}, nil
}

func (uc *todoUsecase) GetTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.GetTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	todo, err := uc.findAccessible(ctx, principal, todoID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("todoUsecase.GetTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.TodoDetail{Todo: todo.ConvertIntoResponse()}, nil
}

func (uc *todoUsecase) UpdateTodo(ctx context.Context, principal models.Principal, todoID string, request *requests.UpdateTodo) (*responses.TodoDetail, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.UpdateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	if request.Title != nil {
		trimmed := strings.TrimSpace(*request.Title)
		if trimmed == "" {
			return nil, exceptions.ErrTitleRequired(nil)
		}
		request.Title = &trimmed
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	dueDate, err := parseDueDate(request.DueDate)
	if err != nil {
		return nil, err
	}

	if _, err := uc.findAccessible(ctx, principal, todoID); err != nil {
		return nil, err
	}

	updated, err := uc.TodoRepository.Update(ctx, todoID, &models.TodoPatch{
		Title:            request.Title,
		Description:      request.Description,
		Priority:         request.Priority,
		DueDate:          dueDate,
		IsComplete:       request.IsComplete,
		ClearDescription: request.ClearDescription,
		ClearDueDate:     request.ClearDueDate,
	}, uc.now())
	if err != nil {
		uc.Log.Error("todoUsecase.UpdateTodo error updating todo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrTodoNotFound(nil, todoID)
	}

	uc.Log.Info("todoUsecase.UpdateTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.TodoDetail{Todo: updated.ConvertIntoResponse()}, nil
}

func (uc *todoUsecase) DeleteTodo(ctx context.Context, principal models.Principal, todoID string) (*responses.TodoDeleted, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("todoUsecase.DeleteTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	if _, err := uc.findAccessible(ctx, principal, todoID); err != nil {
		return nil, err
	}

	deleted, err := uc.TodoRepository.SoftDelete(ctx, todoID, uc.now())
	if err != nil {
		uc.Log.Error("todoUsecase.DeleteTodo error deleting todo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if deleted == nil {
		return nil, exceptions.ErrTodoNotFound(nil, todoID)
	}

	uc.Log.Info("todoUsecase.DeleteTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.TodoDeleted{
		Message: constvars.MessageTodoDeleted,
		Todo:    deleted.ConvertIntoResponse(),
	}, nil
}

// findAccessible hides todos owned by other users behind the same 404 as missing ones.
func (uc *todoUsecase) findAccessible(ctx context.Context, principal models.Principal, todoID string) (*models.Todo, error) {
	if _, err := uuid.Parse(todoID); err != nil {
		return nil, exceptions.ErrTodoNotFound(err, todoID)
	}

	todo, err := uc.TodoRepository.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, exceptions.ErrTodoNotFound(nil, todoID)
	}
	if principal.IsUser() && !todo.BelongsTo(principal.UserID) {
		return nil, exceptions.ErrTodoNotFound(nil, todoID)
	}
	return todo, nil
}

func parseDueDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := utils.ParseFlexibleDate(*value)
	if err != nil {
		return nil, exceptions.ErrInvalidDueDate(err)
	}
	return &parsed, nil
}
