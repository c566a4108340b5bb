package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskforge/todo-service/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, loginLimit fiber.Handler) {
	v1 := app.Group("/api/v1")

	v1.Post("/login", loginLimit, h.Login)
	v1.Post("/refresh", loginLimit, h.Refresh)
	v1.Post("/logout", h.RequireAuth, h.Logout)
	v1.Post("/sessions/revoke-others", h.RequireAuth, h.RevokeOtherSessions)
	v1.Post("/password", h.RequireAuth, h.ChangePassword)
	v1.Get("/sessions", h.RequireAuth, h.ListSessions)
	v1.Get("/sessions/:id", h.RequireAuth, h.GetSession)

	// Admin-only endpoints
	admin := v1.Group("/admin", h.RequireRole(constant.RoleSystemAdmin))
	admin.Delete("/user/:id/sessions", h.ForceLogout)
	admin.Get("/user/:id/sessions", h.GetUserSessions)
}
