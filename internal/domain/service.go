package domain

import "context"

// CompletionService wraps a single call to the text-completion provider.
// One attempt, no retry, no streaming.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// VisionService wraps a single call to the vision-capable generative
// provider with an inline image payload.
type VisionService interface {
	Analyze(ctx context.Context, prompt string, imageBytes []byte, mimeType string) (string, error)
}

// ExtractedDocument is the text pulled out of an uploaded PDF. It lives for
// the duration of the request that produced it and is never stored.
type ExtractedDocument struct {
	Text       string
	SourceName string
}
