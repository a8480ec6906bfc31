package controllers

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/utils"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TodoController struct {
	Log         *zap.Logger
	TodoUsecase contracts.TodoUsecase
}

var (
	todoControllerInstance *TodoController
	onceTodoController     sync.Once
)

func NewTodoController(logger *zap.Logger, todoUsecase contracts.TodoUsecase) *TodoController {
	onceTodoController.Do(func() {
		todoControllerInstance = &TodoController{
			Log:         logger,
			TodoUsecase: todoUsecase,
		}
	})
	return todoControllerInstance
}

func (ctrl *TodoController) ListTodos(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("TodoController.ListTodos called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var filter requests.TodoFilter
	if userID := strings.TrimSpace(r.URL.Query().Get("user_id")); userID != "" {
		filter.UserID = &userID
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.TodoUsecase.ListTodos(ctx, utils.PrincipalFromContext(r.Context()), filter)
	if err != nil {
		ctrl.Log.Error("TodoController.ListTodos error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TodoController.ListTodos succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Todos)),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *TodoController) CreateTodo(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("TodoController.CreateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateTodo)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.TodoUsecase.CreateTodo(ctx, utils.PrincipalFromContext(r.Context()), request)
	if err != nil {
		ctrl.Log.Info("TodoController.CreateTodo error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusCreated, result)
}

func (ctrl *TodoController) GetTodo(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	todoID := chi.URLParam(r, "id")
	ctrl.Log.Info("TodoController.GetTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.TodoUsecase.GetTodo(ctx, utils.PrincipalFromContext(r.Context()), todoID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *TodoController) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	todoID := chi.URLParam(r, "id")
	ctrl.Log.Info("TodoController.UpdateTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	request := new(requests.UpdateTodo)
	body, err := readJSONBody(r, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.MarkExplicitNulls(body)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.TodoUsecase.UpdateTodo(ctx, utils.PrincipalFromContext(r.Context()), todoID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *TodoController) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	todoID := chi.URLParam(r, "id")
	ctrl.Log.Info("TodoController.DeleteTodo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.TodoUsecase.DeleteTodo(ctx, utils.PrincipalFromContext(r.Context()), todoID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TodoController.DeleteTodo succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
