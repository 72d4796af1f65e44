package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"smartstudy/internal/domain"
	"smartstudy/internal/dto"
)

// Upload size ceilings. Also enforced at the transport layer via the route
// group's BodyLimit; the image check here is the deliberate second line.
const (
	MaxPDFSize   = 10 * 1024 * 1024
	MaxImageSize = 4 * 1024 * 1024
)

// Bounds for quiz generation requests.
const (
	MinQuestions = 1
	MaxQuestions = 20
)

var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePDFUpload checks the declared content type and size of an uploaded
// PDF before any bytes are read.
func (v *Validator) ValidatePDFUpload(file *multipart.FileHeader) error {
	if contentType := file.Header.Get("Content-Type"); contentType != "" && contentType != "application/pdf" {
		return domain.NewValidationError("Uploaded file is not a PDF").
			WithContext("content_type", contentType)
	}
	if file.Size > MaxPDFSize {
		return domain.NewPayloadTooLargeError("PDF file is too large. Maximum size is 10MB.").
			WithContext("hint", "Split the document or try a smaller file.")
	}
	return nil
}

// ValidateImageUpload checks size and extension of an uploaded image and
// returns the canonical MIME type for the accepted extension.
func (v *Validator) ValidateImageUpload(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxImageSize {
		return "", domain.NewPayloadTooLargeError("Image file is too large. Maximum size is 4MB.").
			WithContext("hint", "Please compress your image or try a smaller file.")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedImageExtensions[ext] {
		return "", domain.NewValidationError("Invalid file type").
			WithContext("hint", "Please upload a PNG, JPEG, GIF, or WebP image.")
	}

	return ImageMIMEType(ext), nil
}

// ImageMIMEType maps a whitelisted extension to its canonical MIME type.
func ImageMIMEType(ext string) string {
	if ext == "jpg" || ext == "jpeg" {
		return "image/jpeg"
	}
	return "image/" + ext
}

// ValidateTextRequest validates the summarize/explain request body.
func (v *Validator) ValidateTextRequest(req *dto.TextRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Text) == "" {
		errs = append(errs, domain.NewMissingFieldError("text"))
	}
	if req.Format != "" && req.Format != dto.FormatText && req.Format != dto.FormatHTML {
		errs = append(errs, domain.ValidationError{Field: "format", Message: `must be "text" or "html"`})
	}
	return errs
}

// ValidateGenerateQuizRequest validates the quiz generation request and
// applies the documented defaults in place.
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.Text) == "" {
		errs = append(errs, domain.NewMissingFieldError("text"))
	}

	if req.NumQuestions == 0 {
		req.NumQuestions = 5
	} else if req.NumQuestions < MinQuestions || req.NumQuestions > MaxQuestions {
		errs = append(errs, domain.NewOutOfRangeError("numQuestions", MinQuestions, MaxQuestions))
	}

	switch req.QuestionType {
	case "":
		req.QuestionType = domain.QuestionTypeMixed
	case domain.QuestionTypeMixed, domain.QuestionTypeMultipleChoice, domain.QuestionTypeShortAnswer:
	default:
		errs = append(errs, domain.ValidationError{
			Field:   "questionType",
			Message: fmt.Sprintf("must be one of %q, %q, %q", domain.QuestionTypeMixed, domain.QuestionTypeMultipleChoice, domain.QuestionTypeShortAnswer),
		})
	}

	switch req.Difficulty {
	case "":
		req.Difficulty = domain.DifficultyMedium
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		errs = append(errs, domain.ValidationError{
			Field:   "difficulty",
			Message: fmt.Sprintf("must be one of %q, %q, %q", domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard),
		})
	}

	return errs
}

// ValidateCheckAnswerRequest validates the answer-grading request body.
func (v *Validator) ValidateCheckAnswerRequest(req *dto.CheckAnswerRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(req.Question.Question) == "" {
		errs = append(errs, domain.NewMissingFieldError("question.question"))
	}
	if strings.TrimSpace(req.Question.CorrectAnswer) == "" {
		errs = append(errs, domain.NewMissingFieldError("question.correctAnswer"))
	}
	if strings.TrimSpace(req.UserAnswer) == "" {
		errs = append(errs, domain.NewMissingFieldError("userAnswer"))
	}
	return errs
}
