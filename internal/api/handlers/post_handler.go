package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sandeshm27/postline/internal/service"
	"github.com/sandeshm27/postline/internal/transfer"
)

const dateLayout = "2006-01-02"

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) GeneratePost(c *fiber.Ctx) error {
	channelID := c.Query("social_media_uuid")
	if channelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "social_media_uuid is required",
		})
	}

	requestIP := c.IP()
	generated, err := h.s.Generate(c.Context(), channelID, GetAccountID(c), &requestIP)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post generated successfully",
		"postId":  generated.PostID,
		"content": generated.Content,
		"media":   generated.Media,
	})
}

func (h *PostHandler) UpdatePostStatus(c *fiber.Ctx) error {
	postID := c.Params("post_uuid")

	var req transfer.PostStatusUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if postID == "" || req.Status == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "post_uuid and status are required",
		})
	}

	requestIP := c.IP()
	post, err := h.s.UpdateStatus(c.Context(), postID, *req.Status, req.FailReason, GetAccountID(c), &requestIP)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post status updated successfully",
		"post":    post,
	})
}

func (h *PostHandler) GetPostHistory(c *fiber.Ctx) error {
	contentID := c.Query("content_uuid")
	mediaID := c.Query("media_uuid")
	fromDate := c.Query("from_date")
	endDate := c.Query("end_date")
	accountID := c.Query("phone_uuid")

	if contentID == "" || fromDate == "" || endDate == "" || accountID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Required parameters are missing",
		})
	}

	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "from_date must be formatted as YYYY-MM-DD",
		})
	}
	to, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "end_date must be formatted as YYYY-MM-DD",
		})
	}

	posts, err := h.s.History(c.Context(), &transfer.PostHistoryFilter{
		ContentID: contentID,
		MediaID:   mediaID,
		From:      from,
		To:        to,
		AccountID: accountID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post history retrieved successfully",
		"posts":   posts,
	})
}
