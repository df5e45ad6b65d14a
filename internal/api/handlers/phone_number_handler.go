package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/sandeshm27/postline/configs"
	"github.com/sandeshm27/postline/internal/service"
	"github.com/sandeshm27/postline/internal/transfer"
	"github.com/sandeshm27/postline/pkg/utils"
)

const sessionDuration = 24 * time.Hour

type PhoneNumberHandler struct {
	s   service.PhoneNumberService
	cfg config.Config
}

func NewPhoneNumberHandler(cfg config.Config, service service.PhoneNumberService) *PhoneNumberHandler {
	return &PhoneNumberHandler{s: service, cfg: cfg}
}

func (h *PhoneNumberHandler) Authenticate(c *fiber.Ctx) error {
	var req transfer.PhoneAuth
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if req.Number == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number and password are required",
		})
	}

	phone, err := h.s.Authenticate(c.Context(), req.Number, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := utils.GenerateToken(h.cfg.SecretKey, phone.ID, sessionDuration)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(sessionDuration),
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Authentication successful",
		"phone":   phone,
	})
}

func (h *PhoneNumberHandler) CreatePhoneNumber(c *fiber.Ctx) error {
	var req transfer.PhoneNumberCreation
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if req.PhoneNumber == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number and password are required",
		})
	}

	phone, err := h.s.Register(c.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Phone number created successfully",
		"phone":   phone,
	})
}

func (h *PhoneNumberHandler) UpdatePhoneNumber(c *fiber.Ctx) error {
	var req transfer.PhoneNumberUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	if req.ID == "" || req.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number ID and active status are required",
		})
	}

	phone, err := h.s.SetActive(c.Context(), req.ID, *req.Active)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Phone number updated successfully",
		"phone":   phone,
	})
}

func (h *PhoneNumberHandler) DeletePhoneNumber(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Phone number ID is required",
		})
	}

	phone, err := h.s.Remove(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Phone number deleted successfully",
		"phone":   phone,
	})
}
