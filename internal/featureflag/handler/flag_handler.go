package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	authservice "github.com/taskforge/todo-service/internal/auth/service"
	autherror "github.com/taskforge/todo-service/internal/errors"
	"github.com/taskforge/todo-service/internal/featureflag/dto"
	"github.com/taskforge/todo-service/internal/featureflag/service"
)

type FlagHandler struct {
	flagService *service.FlagService
	validate    *validator.Validate
}

func NewFlagHandler(flagService *service.FlagService) *FlagHandler {
	return &FlagHandler{
		flagService: flagService,
		validate:    validator.New(),
	}
}

func (h *FlagHandler) Evaluate(c *fiber.Ctx) error {
	out, err := h.flagService.Evaluate(c.Context(), c.Params("key"))
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *FlagHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateFlagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.flagService.Create(c.Context(), actorID(c), input)
	if err != nil {
		if errors.Is(err, autherror.ErrFlagKeyTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "flag key already exists"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *FlagHandler) List(c *fiber.Ctx) error {
	out, err := h.flagService.List(c.Context())
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *FlagHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateFlagInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.flagService.Update(c.Context(), actorID(c), c.Params("id"), input)
	if err != nil {
		if errors.Is(err, autherror.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "flag not found"})
		}

		return internalError(c)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *FlagHandler) Delete(c *fiber.Ctx) error {
	err := h.flagService.Delete(c.Context(), actorID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, autherror.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "flag not found"})
		}

		return internalError(c)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func actorID(c *fiber.Ctx) string {
	claims, _ := c.Locals("claims").(*authservice.JWTCustomClaims)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
