package handler

import (
	"smartstudy/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary Health check
// @Description Reports whether the API is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:  "ok",
		Message: "Smart Study Assistant API is running",
	})
}
