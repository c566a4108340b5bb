package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/internal/mocks"
	"github.com/taskforge/todo-service/internal/todo/domain"
	"github.com/taskforge/todo-service/internal/todo/dto"
	"github.com/taskforge/todo-service/internal/todo/service"
	"github.com/taskforge/todo-service/pkg/constant"
)

func TestTodoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	input := dto.CreateTodoInput{Title: "write report", Notes: "by friday"}

	mockRepo.EXPECT().CreateWithActivity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, todo *domain.Todo, activity *domain.Activity) error {
			assert.Equal(t, "user-1", todo.UserID)
			assert.Equal(t, constant.TodoStatusOpen, todo.Status)
			assert.Equal(t, "by friday", *todo.Notes)
			assert.Equal(t, todo.ID, activity.TodoID)
			assert.Equal(t, constant.TodoActionCreated, activity.Action)
			return nil
		})

	out, err := s.Create(context.Background(), "user-1", input)

	assert.NoError(t, err)
	assert.Equal(t, "write report", out.Title)
	assert.Equal(t, constant.TodoStatusOpen, out.Status)
	assert.NotEmpty(t, out.ID)
}

func TestTodoService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(nil, nil)

	out, err := s.Get(context.Background(), "user-1", "todo-1")

	assert.Equal(t, autherror.ErrTodoNotFound, err)
	assert.Nil(t, out)
}

func TestTodoService_Update_CompletionLogsCompletedAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	existing := &domain.Todo{
		ID:     "todo-1",
		UserID: "user-1",
		Title:  "write report",
		Status: constant.TodoStatusOpen,
	}
	done := constant.TodoStatusDone

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(existing, nil)
	mockRepo.EXPECT().UpdateWithActivity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, todo *domain.Todo, activity *domain.Activity) error {
			assert.Equal(t, constant.TodoStatusDone, todo.Status)
			assert.Equal(t, constant.TodoActionCompleted, activity.Action)
			return nil
		})

	out, err := s.Update(context.Background(), "user-1", "todo-1", dto.UpdateTodoInput{Status: &done})

	assert.NoError(t, err)
	assert.Equal(t, constant.TodoStatusDone, out.Status)
}

func TestTodoService_Update_PlainEditLogsUpdatedAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	existing := &domain.Todo{
		ID:     "todo-1",
		UserID: "user-1",
		Title:  "write report",
		Status: constant.TodoStatusOpen,
	}
	newTitle := "write quarterly report"

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(existing, nil)
	mockRepo.EXPECT().UpdateWithActivity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, todo *domain.Todo, activity *domain.Activity) error {
			assert.Equal(t, newTitle, todo.Title)
			assert.Equal(t, constant.TodoActionUpdated, activity.Action)
			return nil
		})

	out, err := s.Update(context.Background(), "user-1", "todo-1", dto.UpdateTodoInput{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, newTitle, out.Title)
}

func TestTodoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	existing := &domain.Todo{ID: "todo-1", UserID: "user-1", Status: constant.TodoStatusOpen}

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(existing, nil)
	mockRepo.EXPECT().SoftDeleteWithActivity(gomock.Any(), "todo-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, activity *domain.Activity) error {
			assert.Equal(t, constant.TodoActionDeleted, activity.Action)
			return nil
		})

	err := s.Delete(context.Background(), "user-1", "todo-1")

	assert.NoError(t, err)
}

func TestTodoService_History_OwnerScoped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-2").Return(nil, nil)

	out, err := s.History(context.Background(), "user-2", "todo-1")

	assert.Equal(t, autherror.ErrTodoNotFound, err)
	assert.Nil(t, out)
}

func TestTodoService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	s := service.NewTodoService(mockRepo, nil)

	existing := &domain.Todo{ID: "todo-1", UserID: "user-1"}
	activities := []domain.Activity{
		{ID: "act-2", TodoID: "todo-1", ActorID: "user-1", Action: constant.TodoActionCompleted},
		{ID: "act-1", TodoID: "todo-1", ActorID: "user-1", Action: constant.TodoActionCreated},
	}

	mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(existing, nil)
	mockRepo.EXPECT().ListActivities(gomock.Any(), "todo-1").Return(activities, nil)

	out, err := s.History(context.Background(), "user-1", "todo-1")

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, constant.TodoActionCompleted, out[0].Action)
}
