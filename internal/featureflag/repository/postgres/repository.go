package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskforge/todo-service/internal/featureflag/domain"
)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type FlagRepository struct {
	db DB
}

func NewFlagRepository(db DB) *FlagRepository {
	return &FlagRepository{db: db}
}

func (r *FlagRepository) Create(ctx context.Context, flag *domain.FeatureFlag) error {
	query := `
		INSERT INTO feature_flags (id, key, enabled, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		flag.ID, flag.Key, flag.Enabled, flag.Description, flag.CreatedAt, flag.UpdatedAt)

	return err
}

func (r *FlagRepository) GetByKey(ctx context.Context, key string) (*domain.FeatureFlag, error) {
	query := `
		SELECT id, key, enabled, description, created_at, updated_at, deleted_at
		FROM feature_flags
		WHERE key = $1 AND deleted_at IS NULL;
	`

	return r.scanFlag(r.db.QueryRow(ctx, query, key))
}

func (r *FlagRepository) GetByID(ctx context.Context, id string) (*domain.FeatureFlag, error) {
	query := `
		SELECT id, key, enabled, description, created_at, updated_at, deleted_at
		FROM feature_flags
		WHERE id = $1 AND deleted_at IS NULL;
	`

	return r.scanFlag(r.db.QueryRow(ctx, query, id))
}

func (r *FlagRepository) List(ctx context.Context) ([]domain.FeatureFlag, error) {
	query := `
		SELECT id, key, enabled, description, created_at, updated_at, deleted_at
		FROM feature_flags
		WHERE deleted_at IS NULL
		ORDER BY key;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []domain.FeatureFlag
	for rows.Next() {
		var f domain.FeatureFlag
		err := rows.Scan(&f.ID, &f.Key, &f.Enabled, &f.Description,
			&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
		if err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}

	return flags, rows.Err()
}

func (r *FlagRepository) Update(ctx context.Context, flag *domain.FeatureFlag) error {
	query := `
		UPDATE feature_flags
		SET enabled = $1, description = $2, updated_at = $3
		WHERE id = $4 AND deleted_at IS NULL;
	`
	_, err := r.db.Exec(ctx, query, flag.Enabled, flag.Description, flag.UpdatedAt, flag.ID)

	return err
}

func (r *FlagRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE feature_flags
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL;
	`
	_, err := r.db.Exec(ctx, query, at, id)

	return err
}

func (r *FlagRepository) scanFlag(row pgx.Row) (*domain.FeatureFlag, error) {
	var f domain.FeatureFlag
	err := row.Scan(&f.ID, &f.Key, &f.Enabled, &f.Description,
		&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &f, nil
}
