package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/todo-service/internal/auth/dto"
	"github.com/taskforge/todo-service/internal/auth/service"
	autherror "github.com/taskforge/todo-service/internal/errors"
)

type AuthHandler struct {
	authService  *service.AuthService
	tokenService service.TokenGenerator
	validate     *validator.Validate
}

func NewAuthHandler(authService *service.AuthService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		validate:     validator.New(),
	}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrTooManyLoginAttempts) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": err.Error()})
		}
		if autherror.Unauthorized(err) {
			// One generic message for every precondition failure.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input.IPAddress = c.IP()
	input.UserAgent = string(c.Request().Header.UserAgent())

	out, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		if autherror.Unauthorized(err) {
			// Invalid, expired and reused tokens are indistinguishable here.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := mustClaims(c)

	var input dto.LogoutInput
	_ = c.BodyParser(&input) // body is optional

	out, err := h.authService.Logout(c.Context(), claims.UserID, input)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *AuthHandler) RevokeOtherSessions(c *fiber.Ctx) error {
	claims := mustClaims(c)

	var input dto.RevokeOthersInput
	_ = c.BodyParser(&input)

	if err := h.authService.RevokeOtherSessions(c.Context(), claims.UserID, claims.SessionID, input); err != nil {
		return internalError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims := mustClaims(c)

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.authService.ChangePassword(c.Context(), claims.UserID, claims.SessionID, input)
	if err != nil {
		if autherror.Unauthorized(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		}

		return internalError(c)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) ListSessions(c *fiber.Ctx) error {
	claims := mustClaims(c)

	sessions, err := h.authService.ListSessions(c.Context(), claims.UserID)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *AuthHandler) GetSession(c *fiber.Ctx) error {
	claims := mustClaims(c)
	sessionID := c.Params("id")

	detail, err := h.authService.GetSession(c.Context(), claims.UserID, sessionID, false)
	if err != nil {
		if errors.Is(err, autherror.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(detail)
}

func (h *AuthHandler) ForceLogout(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.authService.ForceLogout(c.Context(), userID); err != nil {
		return internalError(c)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) GetUserSessions(c *fiber.Ctx) error {
	userID := c.Params("id")

	sessions, err := h.authService.ListSessions(c.Context(), userID)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
