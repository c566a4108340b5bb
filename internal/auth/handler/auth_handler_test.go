package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/todo-service/config"
	"github.com/taskforge/todo-service/internal/auth/domain"
	"github.com/taskforge/todo-service/internal/auth/dto"
	"github.com/taskforge/todo-service/internal/auth/handler"
	"github.com/taskforge/todo-service/internal/auth/service"
	"github.com/taskforge/todo-service/internal/mocks"
	"github.com/taskforge/todo-service/pkg/constant"
)

func testConfig() *config.Config {
	return &config.Config{
		LoginMaxAttempts:   5,
		LoginWindowMinutes: 15,
	}
}

func passthrough(c *fiber.Ctx) error {
	return c.Next()
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	authService := service.NewAuthService(mockRepo, mockTokens, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, mockTokens)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := &domain.User{
		ID:            "user-1",
		Email:         "test@example.com",
		PasswordHash:  string(hashed),
		Status:        constant.UserStatusActive,
		EmailVerified: true,
		RoleName:      constant.RoleTodoUser,
	}

	t.Run("success", func(t *testing.T) {
		input := dto.LoginInput{Email: user.Email, Password: "password123"}
		pair := &service.TokenPair{
			AccessToken:      "access",
			RefreshToken:     "refresh",
			AccessExpiresAt:  time.Now().Add(time.Hour),
			RefreshExpiresAt: time.Now().Add(24 * time.Hour),
		}

		mockRepo.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, gomock.Any(), 15).Return(0, nil)
		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockTokens.EXPECT().Generate(user.ID, user.RoleName, gomock.Any(), false).Return(pair, nil)
		mockRepo.EXPECT().CreateSessionWithRootToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/login", input))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.LoginOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, user.ID, out.SubjectID)
		assert.Equal(t, "refresh", out.Token.RefreshToken)
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/login", bytes.NewReader([]byte("not-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid credentials are one generic 401", func(t *testing.T) {
		input := dto.LoginInput{Email: user.Email, Password: "wrong-password"}

		mockRepo.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, gomock.Any(), 15).Return(0, nil)
		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().RecordLoginAttempt(gomock.Any(), gomock.Any()).Return(nil)

		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/login", input))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "invalid credentials", out["error"])
	})

	t.Run("throttled", func(t *testing.T) {
		input := dto.LoginInput{Email: user.Email, Password: "password123"}

		mockRepo.EXPECT().CountRecentFailedAttempts(gomock.Any(), user.Email, gomock.Any(), 15).Return(5, nil)

		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/login", input))
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	})
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	authService := service.NewAuthService(mockRepo, mockTokens, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, mockTokens)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	t.Run("unknown token is 401", func(t *testing.T) {
		mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(nil, nil)

		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/refresh", dto.RefreshInput{RefreshToken: "garbage"}))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("reused token is the same 401", func(t *testing.T) {
		rotatedAt := time.Now().Add(-time.Minute)
		stored := &domain.RefreshToken{
			ID:        "token-1",
			SessionID: "session-1",
			ExpiresAt: time.Now().Add(time.Hour),
			RotatedAt: &rotatedAt,
		}

		mockRepo.EXPECT().GetRefreshTokenByHash(gomock.Any(), gomock.Any()).Return(stored, nil)
		mockRepo.EXPECT().RevokeSessionCascade(gomock.Any(), gomock.Any()).Return(nil)

		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/refresh", dto.RefreshInput{RefreshToken: "replayed"}))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "invalid refresh token", out["error"])
	})

	t.Run("missing token is 400", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/refresh", dto.RefreshInput{}))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)

	authService := service.NewAuthService(mockRepo, tokenService, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	pair, err := tokenService.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	t.Run("revokes the active session", func(t *testing.T) {
		now := time.Now()
		session := &domain.Session{ID: "session-1", UserID: "user-1", ExpiresAt: now.Add(time.Hour)}

		mockRepo.EXPECT().GetLatestActiveSessionByUserID(gomock.Any(), "user-1", gomock.Any()).Return(session, nil)
		mockRepo.EXPECT().RevokeSessionCascade(gomock.Any(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().GetSessionRevocation(gomock.Any(), "session-1").
			Return(&domain.SessionRevocation{SessionID: "session-1", RevokedAt: now, RevokedBy: constant.RevokedByUser}, nil)

		req := jsonRequest(t, "POST", "/api/v1/logout", dto.LogoutInput{})
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.LogoutOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "session-1", out.SessionID)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(t, "POST", "/api/v1/logout", dto.LogoutInput{}))
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)

	authService := service.NewAuthService(mockRepo, tokenService, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	pair, err := tokenService.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	t.Run("owner sees the refresh chain", func(t *testing.T) {
		now := time.Now()
		session := &domain.Session{ID: "session-1", UserID: "user-1", ExpiresAt: now.Add(time.Hour)}
		chain := []domain.RefreshToken{{ID: "token-1", SessionID: "session-1"}}

		mockRepo.EXPECT().GetSessionByID(gomock.Any(), "session-1").Return(session, nil)
		mockRepo.EXPECT().ListRefreshTokensBySessionID(gomock.Any(), "session-1").Return(chain, nil)

		req := httptest.NewRequest("GET", "/api/v1/sessions/session-1", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.SessionDetailOutput
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Len(t, out.RefreshChain, 1)
	})

	t.Run("someone else's session is 404", func(t *testing.T) {
		session := &domain.Session{ID: "session-2", UserID: "user-2"}

		mockRepo.EXPECT().GetSessionByID(gomock.Any(), "session-2").Return(session, nil)

		req := httptest.NewRequest("GET", "/api/v1/sessions/session-2", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)

	authService := service.NewAuthService(mockRepo, tokenService, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	userPair, err := tokenService.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)
	adminPair, err := tokenService.Generate("admin-1", constant.RoleSystemAdmin, "session-2", false)
	assert.NoError(t, err)

	t.Run("non-admin is 403", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/admin/user/user-2/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+userPair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin force logout", func(t *testing.T) {
		mockRepo.EXPECT().ListActiveSessionsByUserID(gomock.Any(), "user-2", "", gomock.Any()).
			Return([]domain.Session{{ID: "session-9"}}, nil)
		mockRepo.EXPECT().RevokeSessionCascade(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rev *domain.SessionRevocation) error {
				assert.Equal(t, constant.RevokedBySystem, rev.RevokedBy)
				return nil
			})

		req := httptest.NewRequest("DELETE", "/api/v1/admin/user/user-2/sessions", nil)
		req.Header.Set("Authorization", "Bearer "+adminPair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuthRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 60, 10080, 43200)

	authService := service.NewAuthService(mockRepo, tokenService, service.NewBcryptHasher(), nil, testConfig())
	authHandler := handler.NewAuthHandler(authService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, passthrough)

	pair, err := tokenService.Generate("user-1", constant.RoleTodoUser, "session-1", false)
	assert.NoError(t, err)

	t.Run("wrong current password is 401", func(t *testing.T) {
		hashed, err := bcrypt.GenerateFromPassword([]byte("actual-password"), bcrypt.MinCost)
		assert.NoError(t, err)
		user := &domain.User{ID: "user-1", PasswordHash: string(hashed), RoleName: constant.RoleTodoUser}

		mockRepo.EXPECT().GetByIDWithRole(gomock.Any(), "user-1").Return(user, nil)

		req := jsonRequest(t, "POST", "/api/v1/password", dto.ChangePasswordInput{
			CurrentPassword: "wrong-password",
			NewPassword:     "brand-new-password",
		})
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("short new password is 400", func(t *testing.T) {
		req := jsonRequest(t, "POST", "/api/v1/password", dto.ChangePasswordInput{
			CurrentPassword: "actual-password",
			NewPassword:     "short",
		})
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
