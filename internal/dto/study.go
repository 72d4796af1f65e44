package dto

import "smartstudy/internal/domain"

// OutputFormat values accepted in the optional format field.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// TextRequest is the shared request body for summarize and explain.
// @Description Request body carrying extracted or pasted text
type TextRequest struct {
	Text   string `json:"text"`
	Topic  string `json:"topic,omitempty"`
	Format string `json:"format,omitempty"`
}

// UploadResponse is returned after a successful PDF upload and extraction.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// SummaryResponse wraps the generated summary.
type SummaryResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary"`
	HTML    string `json:"html,omitempty"`
}

// ExplanationResponse wraps the generated explanation.
type ExplanationResponse struct {
	Success     bool   `json:"success"`
	Explanation string `json:"explanation"`
	HTML        string `json:"html,omitempty"`
}

// GenerateQuizRequest is the request body for quiz generation.
// @Description Quiz generation parameters; defaults are applied server-side
type GenerateQuizRequest struct {
	Text         string `json:"text"`
	NumQuestions int    `json:"numQuestions,omitempty"`
	QuestionType string `json:"questionType,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

// GenerateQuizResponse wraps the normalized quiz.
type GenerateQuizResponse struct {
	Success bool         `json:"success"`
	Quiz    *domain.Quiz `json:"quiz"`
}

// CheckAnswerRequest is the request body for grading a single answer.
type CheckAnswerRequest struct {
	Question   domain.Question `json:"question"`
	UserAnswer string          `json:"userAnswer"`
}

// CheckAnswerResponse reports whether the answer earned credit.
type CheckAnswerResponse struct {
	Success     bool   `json:"success"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation,omitempty"`
}

// AnalyzeResponse wraps the vision provider's answer.
type AnalyzeResponse struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
	Question string `json:"question"`
	HTML     string `json:"html,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}
