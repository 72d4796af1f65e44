package handler

import (
	"io"

	"smartstudy/internal/dto"
	"smartstudy/internal/logger"
	"smartstudy/internal/service"
	"smartstudy/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// VisionHandler handles image analysis requests
type VisionHandler struct {
	service   service.VisionService
	validator *validation.Validator
}

// NewVisionHandler creates a new VisionHandler instance
func NewVisionHandler(service service.VisionService) *VisionHandler {
	return &VisionHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// AnalyzeImage godoc
// @Summary Analyze an uploaded or drawn image
// @Description Sends the image with an optional question to the vision provider
// @Tags vision
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (png/jpg/jpeg/gif/webp, max 4MB)"
// @Param question formData string false "Question about the image"
// @Param context formData string false "Additional context"
// @Param format formData string false "Set to html to include rendered fragments"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /vision/analyze [post]
func (h *VisionHandler) AnalyzeImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "No image file uploaded",
		})
	}

	// The 4MB ceiling is enforced by the route group's BodyLimit too; this
	// is the deliberate second check inside the handler.
	mimeType, err := h.validator.ValidateImageUpload(file)
	if err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		logger.Get().Error("Failed to open uploaded image", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Uploaded file not readable",
		})
	}
	defer src.Close()

	imageBytes, err := io.ReadAll(src)
	if err != nil {
		logger.Get().Error("Failed to read uploaded image", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Uploaded file not readable",
		})
	}

	resp, err := h.service.AnalyzeImage(c.Context(), &service.AnalyzeImageInput{
		ImageBytes: imageBytes,
		MimeType:   mimeType,
		Question:   c.FormValue("question"),
		Context:    c.FormValue("context"),
		Format:     c.FormValue("format"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
