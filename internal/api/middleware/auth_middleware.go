package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	config "github.com/sandeshm27/postline/configs"
	"github.com/sandeshm27/postline/pkg/utils"
)

type AuthMiddleware struct {
	cfg config.Config
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth guards the admin surface: a valid session cookie or nothing.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing session cookie",
			})
		}

		claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
		if err != nil {
			c.Cookie(&fiber.Cookie{
				Name:   m.cfg.CookieName,
				Value:  "",
				Path:   "/",
				MaxAge: -1, // Delete cookie
			})

			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("account_id", claims.AccountID)
		return c.Next()
	}
}

// ResolveAuth never rejects; it only resolves the acting account for the
// public post routes so the audit log can attribute the request.
func (m *AuthMiddleware) ResolveAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(m.cfg.CookieName)
		if tokenString != "" {
			if claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString); err == nil {
				c.Locals("account_id", claims.AccountID)
			}
		}
		return c.Next()
	}
}
