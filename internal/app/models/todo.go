package models

import (
	"phonelink-service/internal/pkg/dto/responses"
	"time"
)

type Todo struct {
	ID          string
	Title       string
	Description *string
	Priority    int
	DueDate     *time.Time
	IsComplete  bool
	IsDeleted   bool
	DeletedAt   *time.Time
	UserID      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelongsTo reports whether the todo is owned by userID.
func (t Todo) BelongsTo(userID string) bool {
	return t.UserID != nil && *t.UserID == userID
}

func (t Todo) ConvertIntoResponse() responses.Todo {
	return responses.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		IsComplete:  t.IsComplete,
		IsDeleted:   t.IsDeleted,
		DeletedAt:   t.DeletedAt,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TodoPatch carries a partial update. Nil fields are left unchanged
// unless the matching Clear flag is set.
type TodoPatch struct {
	Title            *string
	Description      *string
	Priority         *int
	DueDate          *time.Time
	IsComplete       *bool
	ClearDescription bool
	ClearDueDate     bool
}
