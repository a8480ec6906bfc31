package todos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/queries"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var todoColumns = []string{"id", "title", "description", "priority", "due_date", "is_complete", "is_deleted", "deleted_at", "user_id", "created_at", "updated_at"}

func setupTodoRepository(t *testing.T) (*todoPostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mockDB, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newTodoPostgresRepository(db, zap.NewNop()), mockDB
}

func TestTodoPostgresRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("maps nullable columns", func(t *testing.T) {
		repo, mockDB := setupTodoRepository(t)
		mockDB.ExpectQuery(queries.QueryFindTodos).
			WithArgs(nil).
			WillReturnRows(sqlmock.NewRows(todoColumns).
				AddRow("todo-1", "Buy milk", nil, 1, nil, false, false, nil, nil, created, created).
				AddRow("todo-2", "Call", "the clinic", 2, created, true, false, nil, ownerID, created, created))

		todos, err := repo.FindAll(ctx, requests.TodoFilter{})
		require.NoError(t, err)
		require.Len(t, todos, 2)
		assert.Nil(t, todos[0].Description)
		assert.Nil(t, todos[0].UserID)
		assert.Equal(t, "the clinic", *todos[1].Description)
		assert.Equal(t, ownerID, *todos[1].UserID)
		assert.Equal(t, created, *todos[1].DueDate)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		repo, mockDB := setupTodoRepository(t)
		mockDB.ExpectQuery(queries.QueryFindTodos).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(todoColumns))

		owner := ownerID
		todos, err := repo.FindAll(ctx, requests.TodoFilter{UserID: &owner})
		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestTodoPostgresRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	repo, mockDB := setupTodoRepository(t)
	mockDB.ExpectQuery(queries.QueryFindTodoByID).
		WithArgs("todo-1").
		WillReturnError(sql.ErrNoRows)

	todo, err := repo.FindByID(ctx, "todo-1")
	assert.NoError(t, err)
	assert.Nil(t, todo)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTodoPostgresRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	repo, mockDB := setupTodoRepository(t)

	mockDB.ExpectQuery(queries.QueryInsertTodo).
		WithArgs("todo-1", "Buy milk", sqlmock.AnyArg(), 1, sqlmock.AnyArg(), sqlmock.AnyArg(), created).
		WillReturnRows(sqlmock.NewRows(todoColumns).
			AddRow("todo-1", "Buy milk", nil, 1, nil, false, false, nil, nil, created, created))

	todo, err := repo.Create(ctx, &models.Todo{ID: "todo-1", Title: "Buy milk", Priority: 1, CreatedAt: created, UpdatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, "todo-1", todo.ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTodoPostgresRepository_UpdateAndSoftDelete(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	t.Run("update on a missing row", func(t *testing.T) {
		repo, mockDB := setupTodoRepository(t)
		mockDB.ExpectQuery(queries.QueryUpdateTodo).
			WillReturnRows(sqlmock.NewRows(todoColumns))

		done := true
		todo, err := repo.Update(ctx, "todo-1", &models.TodoPatch{IsComplete: &done}, at)
		assert.NoError(t, err)
		assert.Nil(t, todo)
	})

	t.Run("update clears nullable columns", func(t *testing.T) {
		repo, mockDB := setupTodoRepository(t)
		mockDB.ExpectQuery(queries.QueryUpdateTodo).
			WithArgs("todo-1", nil, nil, nil, nil, nil, at, true, true).
			WillReturnRows(sqlmock.NewRows(todoColumns).
				AddRow("todo-1", "Buy milk", nil, 1, nil, false, false, nil, nil, at.Add(-time.Hour), at))

		todo, err := repo.Update(ctx, "todo-1", &models.TodoPatch{ClearDescription: true, ClearDueDate: true}, at)
		require.NoError(t, err)
		assert.Nil(t, todo.Description)
		assert.Nil(t, todo.DueDate)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("soft delete returns the deleted row", func(t *testing.T) {
		repo, mockDB := setupTodoRepository(t)
		mockDB.ExpectQuery(queries.QuerySoftDeleteTodo).
			WithArgs("todo-1", at).
			WillReturnRows(sqlmock.NewRows(todoColumns).
				AddRow("todo-1", "Buy milk", nil, 1, nil, false, true, at, nil, at.Add(-time.Hour), at))

		todo, err := repo.SoftDelete(ctx, "todo-1", at)
		require.NoError(t, err)
		assert.True(t, todo.IsDeleted)
		assert.Equal(t, at, *todo.DeletedAt)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
