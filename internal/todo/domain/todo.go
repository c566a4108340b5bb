package domain

import "time"

type Todo struct {
	ID        string
	UserID    string
	Title     string
	Notes     *string
	Status    string
	DueDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Activity is one entry of a todo's history trail.
type Activity struct {
	ID         string
	TodoID     string
	ActorID    string
	Action     string
	OccurredAt time.Time
}
