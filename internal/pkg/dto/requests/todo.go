package requests

import "github.com/tidwall/gjson"

type CreateTodo struct {
	Title       string  `json:"title"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Priority    *int    `json:"priority" validate:"omitempty,oneof=1 2 3"`
	DueDate     *string `json:"due_date"`
	UserID      *string `json:"user_id" validate:"omitempty,uuid"`
}

type UpdateTodo struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=500"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Priority    *int    `json:"priority" validate:"omitempty,oneof=1 2 3"`
	DueDate     *string `json:"due_date"`
	IsComplete  *bool   `json:"is_complete"`

	// Set by MarkExplicitNulls; a JSON null decodes to the same nil pointer as an absent key.
	ClearDescription bool `json:"-"`
	ClearDueDate     bool `json:"-"`
}

// MarkExplicitNulls flags nullable keys that the raw body sets to null.
func (u *UpdateTodo) MarkExplicitNulls(body []byte) {
	u.ClearDescription = isExplicitNull(body, "description")
	u.ClearDueDate = isExplicitNull(body, "due_date")
}

func isExplicitNull(body []byte, key string) bool {
	value := gjson.GetBytes(body, key)
	return value.Exists() && value.Type == gjson.Null
}

// TodoFilter narrows list queries. A nil UserID lists every owner.
type TodoFilter struct {
	UserID *string
}
