// middleware/gateway.go
package middleware

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ServiceTokenMiddleware validates the Bearer token sent by upstream callers.
// An empty expectedToken disables the check. Paths in public skip it.
func ServiceTokenMiddleware(expectedToken string, public ...string) fiber.Handler {
	if expectedToken == "" {
		log.Println("⚠️  [AUTH] ARENA_SERVICE_TOKEN not set, API is open")
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	skip := make(map[string]struct{}, len(public))
	for _, p := range public {
		skip[trimSlash(p)] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := skip[trimSlash(c.Path())]; ok {
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Printf("🚫 [AUTH] Missing Authorization header for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "service authentication token missing",
			})
		}

		// Accept "Bearer <token>" or the raw token
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			log.Printf("❌ [AUTH] Invalid token for %s", c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid service authentication token",
			})
		}

		return c.Next()
	}
}

// trimSlash drops a trailing slash so "/healthz/" matches "/healthz" the way
// non-strict routing does.
func trimSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimRight(path, "/")
	}
	return path
}
