package llm

import (
	"context"
	"strings"
	"time"

	"smartstudy/internal/config"
	"smartstudy/internal/domain"
	"smartstudy/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Substrings that mark a provider error as "this model does not exist for
// this key". The provider gives no structured code for it, so this is a
// best-effort classification.
var modelNotFoundMarkers = []string{
	"not found",
	"is not found",
	"not supported",
	"unknown name",
	"404",
}

// GeminiVisionService implements domain.VisionService with the Gemini
// generative API, sending the image inline as a base64 blob part.
type GeminiVisionService struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiVisionService creates the vision gateway from config.
func NewGeminiVisionService(ctx context.Context, cfg config.GeminiConfig) (*GeminiVisionService, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewProviderError(nil).WithContext("reason", "GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, domain.NewProviderError(err)
	}

	return &GeminiVisionService{
		client:  client,
		model:   cfg.VisionModel,
		timeout: cfg.Timeout,
	}, nil
}

// Close releases the underlying client. Called at process shutdown.
func (s *GeminiVisionService) Close() error {
	return s.client.Close()
}

// Analyze sends a text prompt plus an inline image and returns the raw text.
func (s *GeminiVisionService) Analyze(ctx context.Context, prompt string, imageBytes []byte, mimeType string) (string, error) {
	l := logger.Get()
	l.Info("Sending image to vision model",
		zap.String("model", s.model),
		zap.String("mime_type", mimeType),
		zap.Int("image_bytes", len(imageBytes)))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: imageBytes},
	)
	if err != nil {
		if IsModelNotFound(err) {
			l.Error("Configured vision model rejected by provider",
				zap.String("model", s.model),
				zap.Error(err))
			return "", domain.NewModelUnavailableError(s.model, err)
		}
		l.Error("Vision request failed", zap.String("model", s.model), zap.Error(err))
		return "", domain.NewProviderError(err)
	}

	text := collectText(resp)
	if text == "" {
		l.Error("Vision provider returned an empty response", zap.String("model", s.model))
		return "", domain.NewProviderError(nil).WithContext("reason", "empty response")
	}

	l.Info("Vision analysis complete", zap.Int("response_length", len(text)))
	return text, nil
}

// IsModelNotFound reports whether a provider error looks like a rejection of
// the configured model name rather than a transport or auth failure.
func IsModelNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range modelNotFoundMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

var _ domain.VisionService = (*GeminiVisionService)(nil)
