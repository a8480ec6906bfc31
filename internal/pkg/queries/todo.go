package queries

const todoColumns = `id, title, description, priority, due_date, is_complete, is_deleted, deleted_at, user_id, created_at, updated_at`

const (
	QueryFindTodos = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE is_deleted = FALSE AND ($1::uuid IS NULL OR user_id = $1::uuid)
		ORDER BY created_at DESC`

	QueryFindTodoByID = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1 AND is_deleted = FALSE`

	QueryInsertTodo = `
		INSERT INTO todos (id, title, description, priority, due_date, is_complete, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7, $7)
		RETURNING ` + todoColumns

	// NULL parameters leave the stored column untouched; $8 and $9 clear the nullable columns.
	QueryUpdateTodo = `
		UPDATE todos
		SET title = COALESCE($2, title),
			description = CASE WHEN $8 THEN NULL ELSE COALESCE($3, description) END,
			priority = COALESCE($4, priority),
			due_date = CASE WHEN $9 THEN NULL ELSE COALESCE($5, due_date) END,
			is_complete = COALESCE($6, is_complete),
			updated_at = $7
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + todoColumns

	QuerySoftDeleteTodo = `
		UPDATE todos
		SET is_deleted = TRUE, deleted_at = $2, updated_at = $2
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING ` + todoColumns
)
