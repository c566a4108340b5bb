package domain

import (
	"context"
	"time"
)

// TodoRepository persists todos and their activity trail. Mutations write the
// todo row and its activity entry in one transaction.
type TodoRepository interface {
	CreateWithActivity(ctx context.Context, todo *Todo, activity *Activity) error
	GetByIDForUser(ctx context.Context, id, userID string) (*Todo, error)
	ListByUser(ctx context.Context, userID string) ([]Todo, error)
	UpdateWithActivity(ctx context.Context, todo *Todo, activity *Activity) error
	SoftDeleteWithActivity(ctx context.Context, id string, at time.Time, activity *Activity) error
	ListActivities(ctx context.Context, todoID string) ([]Activity, error)
}
