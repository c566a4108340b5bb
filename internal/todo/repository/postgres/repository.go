package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taskforge/todo-service/internal/todo/domain"
)

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies it
// in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TodoRepository struct {
	db DB
}

func NewTodoRepository(db DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const insertActivityQuery = `
	INSERT INTO todo_activities (id, todo_id, actor_id, action, occurred_at)
	VALUES ($1, $2, $3, $4, $5);
`

func (r *TodoRepository) CreateWithActivity(ctx context.Context, todo *domain.Todo, activity *domain.Activity) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	insertTodo := `
		INSERT INTO todos (id, user_id, title, notes, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertTodo,
		todo.ID, todo.UserID, todo.Title, todo.Notes, todo.Status, todo.DueDate,
		todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertActivityQuery,
		activity.ID, activity.TodoID, activity.ActorID, activity.Action, activity.OccurredAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TodoRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Todo, error) {
	query := `
		SELECT id, user_id, title, notes, status, due_date, created_at, updated_at, deleted_at
		FROM todos
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL;
	`

	var todo domain.Todo
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Notes, &todo.Status,
		&todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt, &todo.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &todo, nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID string) ([]domain.Todo, error) {
	query := `
		SELECT id, user_id, title, notes, status, due_date, created_at, updated_at, deleted_at
		FROM todos
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		err := rows.Scan(&todo.ID, &todo.UserID, &todo.Title, &todo.Notes, &todo.Status,
			&todo.DueDate, &todo.CreatedAt, &todo.UpdatedAt, &todo.DeletedAt)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (r *TodoRepository) UpdateWithActivity(ctx context.Context, todo *domain.Todo, activity *domain.Activity) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	updateTodo := `
		UPDATE todos
		SET title = $1, notes = $2, status = $3, due_date = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL;
	`
	_, err = tx.Exec(ctx, updateTodo,
		todo.Title, todo.Notes, todo.Status, todo.DueDate, todo.UpdatedAt, todo.ID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertActivityQuery,
		activity.ID, activity.TodoID, activity.ActorID, activity.Action, activity.OccurredAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TodoRepository) SoftDeleteWithActivity(ctx context.Context, id string, at time.Time, activity *domain.Activity) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	softDelete := `
		UPDATE todos
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND deleted_at IS NULL;
	`
	_, err = tx.Exec(ctx, softDelete, at, id)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, insertActivityQuery,
		activity.ID, activity.TodoID, activity.ActorID, activity.Action, activity.OccurredAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TodoRepository) ListActivities(ctx context.Context, todoID string) ([]domain.Activity, error) {
	query := `
		SELECT id, todo_id, actor_id, action, occurred_at
		FROM todo_activities
		WHERE todo_id = $1
		ORDER BY occurred_at DESC;
	`

	rows, err := r.db.Query(ctx, query, todoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.TodoID, &a.ActorID, &a.Action, &a.OccurredAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}
