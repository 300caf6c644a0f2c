package handlers

import (
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/draftdeck/draftdeck/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type TemplateHandler struct {
	s service.TemplateService
}

func NewTemplateHandler(service service.TemplateService) *TemplateHandler {
	return &TemplateHandler{s: service}
}

func (h *TemplateHandler) SaveTemplate(c *fiber.Ctx) error {
	var req transfer.TemplateSaveRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	template, err := h.s.Save(c.Context(), &req)
	if err != nil {
		return errJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(template)
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list templates",
		})
	}

	return c.Status(fiber.StatusOK).JSON(templates)
}

func (h *TemplateHandler) RemoveTemplate(c *fiber.Ctx) error {
	id := c.Query("id")

	if err := h.s.Remove(c.Context(), id); err != nil {
		return errJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
