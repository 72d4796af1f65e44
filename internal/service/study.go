package service

import (
	"context"

	"smartstudy/internal/domain"
	"smartstudy/internal/dto"
	"smartstudy/internal/extractor"
	"smartstudy/internal/logger"
	"smartstudy/internal/prompt"
	"smartstudy/internal/render"

	"go.uber.org/zap"
)

// StudyService covers the PDF text pipeline: extraction, summarization and
// concept explanation.
type StudyService interface {
	ExtractPDF(filename string, pdfBytes []byte) (*dto.UploadResponse, error)
	Summarize(ctx context.Context, req *dto.TextRequest) (*dto.SummaryResponse, error)
	Explain(ctx context.Context, req *dto.TextRequest) (*dto.ExplanationResponse, error)
}

type studyService struct {
	completion domain.CompletionService
}

// NewStudyService creates a new instance of studyService
func NewStudyService(completion domain.CompletionService) StudyService {
	return &studyService{completion: completion}
}

// ExtractPDF turns an uploaded PDF into plain text. The document is not
// retained beyond this call.
func (s *studyService) ExtractPDF(filename string, pdfBytes []byte) (*dto.UploadResponse, error) {
	text, err := extractor.Extract(pdfBytes)
	if err != nil {
		logger.Get().Error("PDF extraction failed",
			zap.String("filename", filename),
			zap.Error(err))
		return nil, err
	}

	doc := domain.ExtractedDocument{Text: text, SourceName: filename}
	logger.Get().Info("Extracted text from PDF",
		zap.String("filename", doc.SourceName),
		zap.Int("text_length", len(doc.Text)))

	return &dto.UploadResponse{
		Success:  true,
		Text:     doc.Text,
		Filename: doc.SourceName,
	}, nil
}

func (s *studyService) Summarize(ctx context.Context, req *dto.TextRequest) (*dto.SummaryResponse, error) {
	summary, err := s.completion.Complete(ctx, prompt.Summary(req.Text))
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{Success: true, Summary: summary}
	if req.Format == dto.FormatHTML {
		resp.HTML = render.HTML(summary)
	}
	return resp, nil
}

func (s *studyService) Explain(ctx context.Context, req *dto.TextRequest) (*dto.ExplanationResponse, error) {
	explanation, err := s.completion.Complete(ctx, prompt.Explain(req.Text, req.Topic))
	if err != nil {
		return nil, err
	}

	resp := &dto.ExplanationResponse{Success: true, Explanation: explanation}
	if req.Format == dto.FormatHTML {
		resp.HTML = render.HTML(explanation)
	}
	return resp, nil
}
