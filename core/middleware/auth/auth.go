package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the api-key guard.
type Config struct {
	// ApiKey is the expected key. An empty key disables the guard.
	ApiKey string
}

// Header is the request header carrying the api key.
const Header = "X-Api-Key"

// New creates a middleware that rejects requests lacking the configured
// api key with a 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		provided := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid or missing api key",
			})
		}

		return c.Next()
	}
}
