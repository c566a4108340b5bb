package handler

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, h *FlagHandler, requireAdmin fiber.Handler) {
	app.Get("/api/v1/flags/:key", h.Evaluate)

	admin := app.Group("/api/v1/admin/flags", requireAdmin)
	admin.Post("/", h.Create)
	admin.Get("/", h.List)
	admin.Patch("/:id", h.Update)
	admin.Delete("/:id", h.Delete)
}
