package service

import (
	"context"

	"smartstudy/internal/domain"
	"smartstudy/internal/dto"
	"smartstudy/internal/logger"
	"smartstudy/internal/prompt"
	"smartstudy/internal/render"

	"go.uber.org/zap"
)

// AnalyzeImageInput carries one validated image request. Ephemeral: exists
// only for the lifetime of the request.
type AnalyzeImageInput struct {
	ImageBytes []byte
	MimeType   string
	Question   string
	Context    string
	Format     string
}

// VisionService answers a visual question about an uploaded or drawn image.
type VisionService interface {
	AnalyzeImage(ctx context.Context, in *AnalyzeImageInput) (*dto.AnalyzeResponse, error)
}

type visionService struct {
	vision domain.VisionService
}

// NewVisionService creates a new instance of visionService
func NewVisionService(vision domain.VisionService) VisionService {
	return &visionService{vision: vision}
}

func (s *visionService) AnalyzeImage(ctx context.Context, in *AnalyzeImageInput) (*dto.AnalyzeResponse, error) {
	analysis, err := s.vision.Analyze(ctx, prompt.Vision(in.Question, in.Context), in.ImageBytes, in.MimeType)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Image analyzed",
		zap.String("mime_type", in.MimeType),
		zap.Int("analysis_length", len(analysis)))

	question := in.Question
	if question == "" {
		question = "Image analysis"
	}

	resp := &dto.AnalyzeResponse{
		Success:  true,
		Analysis: analysis,
		Question: question,
	}
	if in.Format == dto.FormatHTML {
		resp.HTML = render.HTML(analysis)
	}
	return resp, nil
}
