package handlers

import (
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/gofiber/fiber/v2"
)

type WorkspaceHandler struct {
	s service.WorkspaceService
}

func NewWorkspaceHandler(service service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{s: service}
}

func (h *WorkspaceHandler) GetWorkspace(c *fiber.Ctx) error {
	ws, err := h.s.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to load workspace",
		})
	}

	return c.Status(fiber.StatusOK).JSON(ws)
}

func (h *WorkspaceHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.s.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to compute stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *WorkspaceHandler) ListActivity(c *fiber.Ctx) error {
	activity, err := h.s.Activity(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list activity",
		})
	}

	return c.Status(fiber.StatusOK).JSON(activity)
}
