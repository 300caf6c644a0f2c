package handlers

import (
	"context"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/models"
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/draftdeck/draftdeck/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) ComposePost(c *fiber.Ctx) error {
	var req transfer.PostComposition
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request body",
		})
	}

	post, err := h.s.Compose(c.Context(), &req)
	if err != nil {
		return errJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	postID := c.Query("id")

	if postID != "" {
		post, err := h.s.PostInfo(c.Context(), postID)
		if err != nil {
			return errJSON(c, err)
		}
		return c.Status(fiber.StatusOK).JSON(post)
	}

	posts, err := h.s.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to list posts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) ApprovePost(c *fiber.Ctx) error {
	return h.transition(c, h.s.Approve)
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	return h.transition(c, h.s.MarkScheduled)
}

func (h *PostHandler) PublishPost(c *fiber.Ctx) error {
	return h.transition(c, h.s.Publish)
}

func (h *PostHandler) transition(c *fiber.Ctx, op func(ctx context.Context, id string) (*models.Post, error)) error {
	id := c.Query("id")

	post, err := op(c.Context(), id)
	if err != nil {
		return errJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	id := c.Query("id")

	if err := h.s.Remove(c.Context(), id); err != nil {
		return errJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
