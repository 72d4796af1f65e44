package middleware

import (
	"smartstudy/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// BodyLimit rejects requests whose body exceeds max bytes before the body is
// parsed. Fiber's app-wide BodyLimit is set to the largest accepted upload;
// this narrows the ceiling for routes with a smaller one.
func BodyLimit(max int, hint string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(c.Body()) > max {
			return domain.NewPayloadTooLargeError("File too large").
				WithContext("hint", hint)
		}
		return c.Next()
	}
}
