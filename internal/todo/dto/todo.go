package dto

import "time"

type CreateTodoInput struct {
	Title   string     `json:"title" validate:"required,max=255"`
	Notes   string     `json:"notes"`
	DueDate *time.Time `json:"due_date"`
}

type UpdateTodoInput struct {
	Title   *string    `json:"title" validate:"omitempty,max=255"`
	Notes   *string    `json:"notes"`
	Status  *string    `json:"status" validate:"omitempty,oneof=open done"`
	DueDate *time.Time `json:"due_date"`
}

type TodoOutput struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Status    string     `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type ActivityOutput struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
