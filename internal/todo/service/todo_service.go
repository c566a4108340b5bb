package service

//go:generate mockgen -destination=../../mocks/mock_todo_repository.go -package=mocks github.com/taskforge/todo-service/internal/todo/domain TodoRepository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taskforge/todo-service/internal/audit"
	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/internal/todo/domain"
	"github.com/taskforge/todo-service/internal/todo/dto"
	"github.com/taskforge/todo-service/pkg/constant"
)

type TodoService struct {
	repo     domain.TodoRepository
	recorder *audit.Recorder
}

func NewTodoService(repo domain.TodoRepository, recorder *audit.Recorder) *TodoService {
	return &TodoService{repo: repo, recorder: recorder}
}

func (s *TodoService) Create(ctx context.Context, userID string, input dto.CreateTodoInput) (*dto.TodoOutput, error) {
	now := time.Now()

	todo := &domain.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Status:    constant.TodoStatusOpen,
		DueDate:   input.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Notes != "" {
		todo.Notes = &input.Notes
	}

	activity := newActivity(todo.ID, userID, constant.TodoActionCreated, now)
	if err := s.repo.CreateWithActivity(ctx, todo, activity); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, userID, constant.TodoActionCreated, todo.ID)

	out := todoOutput(todo)

	return &out, nil
}

func (s *TodoService) Get(ctx context.Context, userID, todoID string) (*dto.TodoOutput, error) {
	todo, err := s.repo.GetByIDForUser(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, autherror.ErrTodoNotFound
	}

	out := todoOutput(todo)

	return &out, nil
}

func (s *TodoService) List(ctx context.Context, userID string) ([]dto.TodoOutput, error) {
	todos, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TodoOutput, 0, len(todos))
	for i := range todos {
		out = append(out, todoOutput(&todos[i]))
	}

	return out, nil
}

func (s *TodoService) Update(ctx context.Context, userID, todoID string, input dto.UpdateTodoInput) (*dto.TodoOutput, error) {
	todo, err := s.repo.GetByIDForUser(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, autherror.ErrTodoNotFound
	}

	action := constant.TodoActionUpdated
	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Notes != nil {
		todo.Notes = input.Notes
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	if input.Status != nil && *input.Status != todo.Status {
		todo.Status = *input.Status
		if todo.Status == constant.TodoStatusDone {
			action = constant.TodoActionCompleted
		}
	}

	now := time.Now()
	todo.UpdatedAt = now

	activity := newActivity(todo.ID, userID, action, now)
	if err := s.repo.UpdateWithActivity(ctx, todo, activity); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, userID, action, todo.ID)

	out := todoOutput(todo)

	return &out, nil
}

func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	todo, err := s.repo.GetByIDForUser(ctx, todoID, userID)
	if err != nil {
		return err
	}
	if todo == nil {
		return autherror.ErrTodoNotFound
	}

	now := time.Now()
	activity := newActivity(todo.ID, userID, constant.TodoActionDeleted, now)
	if err := s.repo.SoftDeleteWithActivity(ctx, todo.ID, now, activity); err != nil {
		return err
	}

	s.recordAudit(ctx, userID, constant.TodoActionDeleted, todo.ID)

	return nil
}

// History returns the activity trail, owner-scoped like every other read.
func (s *TodoService) History(ctx context.Context, userID, todoID string) ([]dto.ActivityOutput, error) {
	todo, err := s.repo.GetByIDForUser(ctx, todoID, userID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, autherror.ErrTodoNotFound
	}

	activities, err := s.repo.ListActivities(ctx, todoID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ActivityOutput, 0, len(activities))
	for _, a := range activities {
		out = append(out, dto.ActivityOutput{
			ID:         a.ID,
			Action:     a.Action,
			ActorID:    a.ActorID,
			OccurredAt: a.OccurredAt,
		})
	}

	return out, nil
}

func (s *TodoService) recordAudit(ctx context.Context, userID, action, todoID string) {
	s.recorder.Record(ctx, audit.Entry{
		ActorID:    &userID,
		ActorType:  constant.RevokedByUser,
		Action:     "todo_" + action,
		EntityType: "todo",
		EntityID:   todoID,
	})
}

func newActivity(todoID, actorID, action string, at time.Time) *domain.Activity {
	return &domain.Activity{
		ID:         uuid.NewString(),
		TodoID:     todoID,
		ActorID:    actorID,
		Action:     action,
		OccurredAt: at,
	}
}

func todoOutput(t *domain.Todo) dto.TodoOutput {
	out := dto.TodoOutput{
		ID:        t.ID,
		Title:     t.Title,
		Status:    t.Status,
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.Notes != nil {
		out.Notes = *t.Notes
	}

	return out
}
