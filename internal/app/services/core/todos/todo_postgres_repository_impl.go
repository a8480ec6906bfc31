package todos

import (
	"context"
	"database/sql"
	"errors"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/queries"
	"sync"
	"time"

	"go.uber.org/zap"
)

type todoPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	todoPostgresRepositoryInstance contracts.TodoRepository
	onceTodoPostgresRepository     sync.Once
)

func NewTodoPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.TodoRepository {
	onceTodoPostgresRepository.Do(func() {
		todoPostgresRepositoryInstance = newTodoPostgresRepository(db, logger)
	})
	return todoPostgresRepositoryInstance
}

func newTodoPostgresRepository(db *sql.DB, logger *zap.Logger) *todoPostgresRepository {
	return &todoPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		model       models.Todo
		description sql.NullString
		dueDate     sql.NullTime
		deletedAt   sql.NullTime
		userID      sql.NullString
	)
	err := row.Scan(
		&model.ID,
		&model.Title,
		&description,
		&model.Priority,
		&dueDate,
		&model.IsComplete,
		&model.IsDeleted,
		&deletedAt,
		&userID,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		model.Description = &description.String
	}
	if dueDate.Valid {
		model.DueDate = &dueDate.Time
	}
	if deletedAt.Valid {
		model.DeletedAt = &deletedAt.Time
	}
	if userID.Valid {
		model.UserID = &userID.String
	}
	return &model, nil
}

func (repo *todoPostgresRepository) FindAll(ctx context.Context, filter requests.TodoFilter) ([]models.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("todoPostgresRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := repo.DB.QueryContext(ctx, queries.QueryFindTodos, filter.UserID)
	if err != nil {
		repo.Log.Error("todoPostgresRepository.FindAll error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			repo.Log.Error("todoPostgresRepository.FindAll error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		todos = append(todos, *todo)
	}

	if err := rows.Err(); err != nil {
		repo.Log.Error("todoPostgresRepository.FindAll rows iteration error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	repo.Log.Info("todoPostgresRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(todos)),
	)
	return todos, nil
}

func (repo *todoPostgresRepository) FindByID(ctx context.Context, todoID string) (*models.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("todoPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	todo, err := scanTodo(repo.DB.QueryRowContext(ctx, queries.QueryFindTodoByID, todoID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Info("todoPostgresRepository.FindByID no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		repo.Log.Error("todoPostgresRepository.FindByID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	repo.Log.Info("todoPostgresRepository.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return todo, nil
}

func (repo *todoPostgresRepository) Create(ctx context.Context, todo *models.Todo) (*models.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("todoPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created, err := scanTodo(repo.DB.QueryRowContext(
		ctx,
		queries.QueryInsertTodo,
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.DueDate,
		todo.UserID,
		todo.CreatedAt,
	))
	if err != nil {
		repo.Log.Error("todoPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	repo.Log.Info("todoPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, created.ID),
	)
	return created, nil
}

func (repo *todoPostgresRepository) Update(ctx context.Context, todoID string, patch *models.TodoPatch, at time.Time) (*models.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("todoPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	updated, err := scanTodo(repo.DB.QueryRowContext(
		ctx,
		queries.QueryUpdateTodo,
		todoID,
		patch.Title,
		patch.Description,
		patch.Priority,
		patch.DueDate,
		patch.IsComplete,
		at,
		patch.ClearDescription,
		patch.ClearDueDate,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Info("todoPostgresRepository.Update no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		repo.Log.Error("todoPostgresRepository.Update error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("todoPostgresRepository.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return updated, nil
}

func (repo *todoPostgresRepository) SoftDelete(ctx context.Context, todoID string, at time.Time) (*models.Todo, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("todoPostgresRepository.SoftDelete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTodoIDKey, todoID),
	)

	deleted, err := scanTodo(repo.DB.QueryRowContext(ctx, queries.QuerySoftDeleteTodo, todoID, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			repo.Log.Info("todoPostgresRepository.SoftDelete no rows found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, nil
		}
		repo.Log.Error("todoPostgresRepository.SoftDelete error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}

	repo.Log.Info("todoPostgresRepository.SoftDelete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return deleted, nil
}
