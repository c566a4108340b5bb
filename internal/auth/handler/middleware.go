package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/todo-service/internal/auth/service"
)

const claimsLocalKey = "claims"

func (h *AuthHandler) authenticate(c *fiber.Ctx) (*service.JWTCustomClaims, error) {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("missing or malformed token")
	}

	return h.tokenService.VerifyAccessToken(parts[1])
}

// RequireAuth validates the bearer token and stores its claims for handlers
// downstream.
func (h *AuthHandler) RequireAuth(c *fiber.Ctx) error {
	claims, err := h.authenticate(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing token"})
	}

	c.Locals(claimsLocalKey, claims)

	return c.Next()
}

// RequireRole builds on bearer authentication and additionally checks the
// token's role claim.
func (h *AuthHandler) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := h.authenticate(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing token"})
		}

		if claims.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}

		c.Locals(claimsLocalKey, claims)

		return c.Next()
	}
}

func mustClaims(c *fiber.Ctx) *service.JWTCustomClaims {
	claims, _ := c.Locals(claimsLocalKey).(*service.JWTCustomClaims)
	if claims == nil {
		return &service.JWTCustomClaims{}
	}
	return claims
}
