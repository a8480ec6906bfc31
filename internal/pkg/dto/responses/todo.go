package responses

import "time"

type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	IsComplete  bool       `json:"is_complete"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at"`
	UserID      *string    `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type TodoList struct {
	Todos []Todo `json:"todos"`
}

type TodoDetail struct {
	Todo Todo `json:"todo"`
}

type TodoDeleted struct {
	Message string `json:"message"`
	Todo    Todo   `json:"todo"`
}
