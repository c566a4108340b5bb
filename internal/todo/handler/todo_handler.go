package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authservice "github.com/taskforge/todo-service/internal/auth/service"
	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/internal/todo/dto"
	"github.com/taskforge/todo-service/internal/todo/service"
)

type TodoHandler struct {
	todoService *service.TodoService
	validate    *validator.Validate
}

func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		validate:    validator.New(),
	}
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.todoService.Create(c.Context(), userID(c), input)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	out, err := h.todoService.List(c.Context(), userID(c))
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TodoHandler) Get(c *fiber.Ctx) error {
	out, err := h.todoService.Get(c.Context(), userID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, autherror.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "todo not found"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TodoHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateTodoInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.todoService.Update(c.Context(), userID(c), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, autherror.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "todo not found"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	err := h.todoService.Delete(c.Context(), userID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, autherror.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "todo not found"})
		}

		return internalError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TodoHandler) History(c *fiber.Ctx) error {
	out, err := h.todoService.History(c.Context(), userID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, autherror.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "todo not found"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func userID(c *fiber.Ctx) string {
	claims, _ := c.Locals("claims").(*authservice.JWTCustomClaims)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
