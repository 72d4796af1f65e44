package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"smartstudy/internal/domain"
	"smartstudy/internal/dto"
	"smartstudy/internal/handler"
	"smartstudy/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStudyService
type MockStudyService struct {
	ExtractPDFFunc func(filename string, pdfBytes []byte) (*dto.UploadResponse, error)
	SummarizeFunc  func(ctx context.Context, req *dto.TextRequest) (*dto.SummaryResponse, error)
	ExplainFunc    func(ctx context.Context, req *dto.TextRequest) (*dto.ExplanationResponse, error)
}

func (m *MockStudyService) ExtractPDF(filename string, pdfBytes []byte) (*dto.UploadResponse, error) {
	if m.ExtractPDFFunc != nil {
		return m.ExtractPDFFunc(filename, pdfBytes)
	}
	panic("MockStudyService.ExtractPDFFunc not implemented")
}
func (m *MockStudyService) Summarize(ctx context.Context, req *dto.TextRequest) (*dto.SummaryResponse, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, req)
	}
	panic("MockStudyService.SummarizeFunc not implemented")
}
func (m *MockStudyService) Explain(ctx context.Context, req *dto.TextRequest) (*dto.ExplanationResponse, error) {
	if m.ExplainFunc != nil {
		return m.ExplainFunc(ctx, req)
	}
	panic("MockStudyService.ExplainFunc not implemented")
}

func setupPDFTestApp(svc *MockStudyService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewPDFHandler(svc)
	app.Post("/api/pdf/upload", h.UploadPDF)
	app.Post("/api/pdf/summarize", h.Summarize)
	app.Post("/api/pdf/explain", h.Explain)
	return app
}

func TestUploadPDF(t *testing.T) {
	mockService := &MockStudyService{
		ExtractPDFFunc: func(filename string, pdfBytes []byte) (*dto.UploadResponse, error) {
			assert.Equal(t, "notes.pdf", filename)
			assert.NotEmpty(t, pdfBytes)
			return &dto.UploadResponse{
				Success:  true,
				Text:     "Extracted lecture notes.",
				Filename: filename,
			}, nil
		},
	}
	app := setupPDFTestApp(mockService)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("pdf", "notes.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 fake content"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/pdf/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var respBody dto.UploadResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	require.NoError(t, err)
	assert.True(t, respBody.Success)
	assert.Equal(t, "Extracted lecture notes.", respBody.Text)
	assert.Equal(t, "notes.pdf", respBody.Filename)
}

func TestUploadPDF_NoFile(t *testing.T) {
	app := setupPDFTestApp(&MockStudyService{})

	req := httptest.NewRequest("POST", "/api/pdf/upload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, "No PDF file uploaded", errResp.Error)
}

func TestUploadPDF_ExtractionFailure(t *testing.T) {
	mockService := &MockStudyService{
		ExtractPDFFunc: func(filename string, pdfBytes []byte) (*dto.UploadResponse, error) {
			return nil, domain.NewExtractionError(assert.AnError)
		},
	}
	app := setupPDFTestApp(mockService)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("pdf", "broken.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a pdf"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/pdf/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var errResp middleware.ErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	assert.Equal(t, string(domain.CodeExtractionError), errResp.Code)
}

func TestSummarize(t *testing.T) {
	mockService := &MockStudyService{
		SummarizeFunc: func(ctx context.Context, req *dto.TextRequest) (*dto.SummaryResponse, error) {
			return &dto.SummaryResponse{Success: true, Summary: "A short summary."}, nil
		},
	}
	app := setupPDFTestApp(mockService)

	reqBodyBytes, _ := json.Marshal(dto.TextRequest{Text: "Long lecture transcript."})
	req := httptest.NewRequest("POST", "/api/pdf/summarize", bytes.NewReader(reqBodyBytes))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var respBody dto.SummaryResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", respBody.Summary)
}

func TestSummarize_MissingText(t *testing.T) {
	app := setupPDFTestApp(&MockStudyService{})

	reqBodyBytes, _ := json.Marshal(dto.TextRequest{Text: "   "})
	req := httptest.NewRequest("POST", "/api/pdf/summarize", bytes.NewReader(reqBodyBytes))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	err = json.NewDecoder(resp.Body).Decode(&errResp)
	require.NoError(t, err)
	require.NotEmpty(t, errResp.Errors)
	assert.Equal(t, "text", errResp.Errors[0].Field)
}

func TestExplain(t *testing.T) {
	mockService := &MockStudyService{
		ExplainFunc: func(ctx context.Context, req *dto.TextRequest) (*dto.ExplanationResponse, error) {
			assert.Equal(t, "osmosis", req.Topic)
			return &dto.ExplanationResponse{Success: true, Explanation: "Osmosis is diffusion of water."}, nil
		},
	}
	app := setupPDFTestApp(mockService)

	reqBodyBytes, _ := json.Marshal(dto.TextRequest{Text: "Cell biology chapter.", Topic: "osmosis"})
	req := httptest.NewRequest("POST", "/api/pdf/explain", bytes.NewReader(reqBodyBytes))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var respBody dto.ExplanationResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	require.NoError(t, err)
	assert.Equal(t, "Osmosis is diffusion of water.", respBody.Explanation)
}

func TestExplain_InvalidFormat(t *testing.T) {
	app := setupPDFTestApp(&MockStudyService{})

	reqBodyBytes, _ := json.Marshal(dto.TextRequest{Text: "Cell biology chapter.", Format: "pdf"})
	req := httptest.NewRequest("POST", "/api/pdf/explain", bytes.NewReader(reqBodyBytes))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
