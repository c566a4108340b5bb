package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskforge/todo-service/config"
	authhandler "github.com/taskforge/todo-service/internal/auth/handler"
	authservice "github.com/taskforge/todo-service/internal/auth/service"
	"github.com/taskforge/todo-service/internal/mocks"
	"github.com/taskforge/todo-service/internal/todo/domain"
	"github.com/taskforge/todo-service/internal/todo/dto"
	"github.com/taskforge/todo-service/internal/todo/handler"
	"github.com/taskforge/todo-service/internal/todo/service"
	"github.com/taskforge/todo-service/pkg/constant"
)

type todoApp struct {
	app      *fiber.App
	mockRepo *mocks.MockTodoRepository
	token    string
}

func newTodoApp(t *testing.T, ctrl *gomock.Controller) *todoApp {
	t.Helper()

	mockRepo := mocks.NewMockTodoRepository(ctrl)
	todoService := service.NewTodoService(mockRepo, nil)
	todoHandler := handler.NewTodoHandler(todoService)

	tokenService := authservice.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)
	mockAuthRepo := mocks.NewMockAuthRepository(ctrl)
	authService := authservice.NewAuthService(mockAuthRepo, tokenService,
		authservice.NewBcryptHasher(), nil, &config.Config{})
	authHandler := authhandler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, todoHandler, authHandler.RequireAuth)

	pair, err := tokenService.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	require.NoError(t, err)

	return &todoApp{app: app, mockRepo: mockRepo, token: pair.AccessToken}
}

func (ta *todoApp) request(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+ta.token)
	return req
}

func TestCreateTodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newTodoApp(t, ctrl)

	t.Run("success", func(t *testing.T) {
		ta.mockRepo.EXPECT().CreateWithActivity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		resp, _ := ta.app.Test(ta.request(t, "POST", "/api/v1/todos/", dto.CreateTodoInput{Title: "write report"}))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.TodoOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "write report", out.Title)
		assert.Equal(t, constant.TodoStatusOpen, out.Status)
	})

	t.Run("missing title is 400", func(t *testing.T) {
		resp, _ := ta.app.Test(ta.request(t, "POST", "/api/v1/todos/", dto.CreateTodoInput{}))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("no token is 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/todos/", nil)
		resp, _ := ta.app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetTodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newTodoApp(t, ctrl)

	t.Run("success", func(t *testing.T) {
		todo := &domain.Todo{
			ID:        "todo-1",
			UserID:    "user-1",
			Title:     "write report",
			Status:    constant.TodoStatusOpen,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		ta.mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(todo, nil)

		resp, _ := ta.app.Test(ta.request(t, "GET", "/api/v1/todos/todo-1", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("someone else's todo is 404", func(t *testing.T) {
		ta.mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-9", "user-1").Return(nil, nil)

		resp, _ := ta.app.Test(ta.request(t, "GET", "/api/v1/todos/todo-9", nil))
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteTodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newTodoApp(t, ctrl)

	todo := &domain.Todo{ID: "todo-1", UserID: "user-1", Status: constant.TodoStatusOpen}

	ta.mockRepo.EXPECT().GetByIDForUser(gomock.Any(), "todo-1", "user-1").Return(todo, nil)
	ta.mockRepo.EXPECT().SoftDeleteWithActivity(gomock.Any(), "todo-1", gomock.Any(), gomock.Any()).Return(nil)

	resp, _ := ta.app.Test(ta.request(t, "DELETE", "/api/v1/todos/todo-1", nil))
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
