package domain

import (
	"context"
	"time"
)

type FeatureFlag struct {
	ID          string
	Key         string
	Enabled     bool
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// FlagRepository persists feature flags. Keys are unique among rows that are
// not soft-deleted.
type FlagRepository interface {
	Create(ctx context.Context, flag *FeatureFlag) error
	GetByKey(ctx context.Context, key string) (*FeatureFlag, error)
	GetByID(ctx context.Context, id string) (*FeatureFlag, error)
	List(ctx context.Context) ([]FeatureFlag, error)
	Update(ctx context.Context, flag *FeatureFlag) error
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
