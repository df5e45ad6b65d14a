package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sandeshm27/postline/internal/service"
	"github.com/sandeshm27/postline/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{s: service}
}

func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req transfer.ContentCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if req.ContentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content name is required",
		})
	}

	content, err := h.s.Create(c.Context(), req.ContentName)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Content created successfully",
		"content": content,
	})
}

func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content ID is required",
		})
	}

	content, err := h.s.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content retrieved successfully",
		"content": content,
	})
}

func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id := c.Params("id")

	var req transfer.ContentUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if id == "" || req.ContentName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content ID and content name are required",
		})
	}

	content, err := h.s.Rename(c.Context(), id, req.ContentName)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content updated successfully",
		"content": content,
	})
}

func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content ID is required",
		})
	}

	content, err := h.s.Remove(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content deleted successfully",
		"content": content,
	})
}
