package handler

import (
	"os"
	"path/filepath"

	"smartstudy/internal/dto"
	"smartstudy/internal/logger"
	"smartstudy/internal/service"
	"smartstudy/internal/util"
	"smartstudy/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PDFHandler handles PDF upload, summarization and explanation requests
type PDFHandler struct {
	service   service.StudyService
	validator *validation.Validator
}

// NewPDFHandler creates a new PDFHandler instance
func NewPDFHandler(service service.StudyService) *PDFHandler {
	return &PDFHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// UploadPDF godoc
// @Summary Upload a PDF and extract its text
// @Description Accepts a PDF file and returns the extracted plain text
// @Tags pdf
// @Accept multipart/form-data
// @Produce json
// @Param pdf formData file true "PDF file (max 10MB)"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 413 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /pdf/upload [post]
func (h *PDFHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "No PDF file uploaded",
		})
	}

	if err := h.validator.ValidatePDFUpload(file); err != nil {
		return err
	}

	// The upload is staged in a temp file that is removed whether or not
	// extraction succeeds. Removal failure is logged, never surfaced.
	tempPath := filepath.Join(os.TempDir(), util.NewULID()+"_"+filepath.Base(file.Filename))
	if err := c.SaveFile(file, tempPath); err != nil {
		logger.Get().Error("Failed to stage uploaded PDF", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Uploaded file not readable",
		})
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			logger.Get().Warn("Failed to remove temp upload file",
				zap.String("path", tempPath),
				zap.Error(err))
		}
	}()

	pdfBytes, err := os.ReadFile(tempPath)
	if err != nil {
		logger.Get().Error("Failed to read staged PDF", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Uploaded file not readable",
		})
	}

	resp, err := h.service.ExtractPDF(file.Filename, pdfBytes)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Summarize godoc
// @Summary Summarize text
// @Description Generates a structured summary of the supplied text
// @Tags pdf
// @Accept json
// @Produce json
// @Param request body dto.TextRequest true "Text to summarize"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /pdf/summarize [post]
func (h *PDFHandler) Summarize(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if errs := h.validator.ValidateTextRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Summarize(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Explain godoc
// @Summary Explain concepts in text
// @Description Generates a beginner-friendly explanation, optionally focused on a topic
// @Tags pdf
// @Accept json
// @Produce json
// @Param request body dto.TextRequest true "Text to explain, with optional topic"
// @Success 200 {object} dto.ExplanationResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /pdf/explain [post]
func (h *PDFHandler) Explain(c *fiber.Ctx) error {
	var req dto.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if errs := h.validator.ValidateTextRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Explain(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
