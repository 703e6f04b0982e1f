package models

// Todo is a single to-do record.
type Todo struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

// Request types

// CreateTodoRequest is the body of POST /todos. Content is a pointer so a
// missing field can be told apart from an empty one.
type CreateTodoRequest struct {
	Content *string `json:"content"`
}
