package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"smartstudy/internal/config"
	"smartstudy/internal/domain"
	"smartstudy/internal/logger"
	"smartstudy/internal/prompt"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// GroqCompletionService implements domain.CompletionService against Groq's
// OpenAI-compatible chat completion API. The client is constructed once at
// process start and injected into services.
type GroqCompletionService struct {
	llm         *openaiLLM.LLM
	model       string
	temperature float64
	maxTokens   int
	timeout     time.Duration
}

// NewGroqCompletionService creates the completion gateway from config.
func NewGroqCompletionService(cfg config.GroqConfig) (*GroqCompletionService, error) {
	if cfg.APIKey == "" {
		return nil, domain.NewProviderError(nil).WithContext("reason", "GROQ_API_KEY is not set")
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	client, err := openaiLLM.New(
		openaiLLM.WithToken(cfg.APIKey),
		openaiLLM.WithModel(cfg.Model),
		openaiLLM.WithBaseURL(cfg.BaseURL),
		openaiLLM.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, domain.NewProviderError(err)
	}

	return &GroqCompletionService{
		llm:         client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     cfg.Timeout,
	}, nil
}

// Complete sends one system + one user message and returns the raw text.
// Single attempt, no retry, no streaming.
func (s *GroqCompletionService) Complete(ctx context.Context, userPrompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prompt.SystemMessage),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := s.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(s.temperature),
		llms.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		l.Error("Completion request failed",
			zap.String("model", s.model),
			zap.Error(err))
		return "", domain.NewProviderError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		l.Error("Completion provider returned an empty response", zap.String("model", s.model))
		return "", domain.NewProviderError(nil).WithContext("reason", "empty response")
	}

	return resp.Choices[0].Content, nil
}

var _ domain.CompletionService = (*GroqCompletionService)(nil)
