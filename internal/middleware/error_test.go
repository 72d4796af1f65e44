package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"smartstudy/internal/domain"
	"smartstudy/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupErrorTestApp(routeErr error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return routeErr
	})
	return app
}

func TestErrorHandler_DomainErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name           string
		err            *domain.DomainError
		expectedStatus int
	}{
		{"Validation", domain.NewValidationError("bad input"), fiber.StatusBadRequest},
		{"PayloadTooLarge", domain.NewPayloadTooLargeError("too big"), fiber.StatusRequestEntityTooLarge},
		{"Extraction", domain.NewExtractionError(assert.AnError), fiber.StatusUnprocessableEntity},
		{"Provider", domain.NewProviderError(assert.AnError), fiber.StatusBadGateway},
		{"ModelUnavailable", domain.NewModelUnavailableError("m", nil), fiber.StatusBadGateway},
		{"MalformedQuiz", domain.NewMalformedQuizError(nil), fiber.StatusInternalServerError},
		{"SchemaViolation", domain.NewSchemaViolationError("empty quiz"), fiber.StatusInternalServerError},
		{"Internal", domain.NewInternalError("oops", nil), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := setupErrorTestApp(tc.err)
			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, string(tc.err.Code), body.Code)
			assert.Equal(t, tc.err.Message, body.Error)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := setupErrorTestApp(domain.ValidationErrors{
		domain.NewMissingFieldError("text"),
		domain.NewOutOfRangeError("numQuestions", 1, 20),
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "text", body.Errors[0].Field)
	assert.Equal(t, "numQuestions", body.Errors[1].Field)
}

func TestErrorHandler_DetailsFromContext(t *testing.T) {
	app := setupErrorTestApp(
		domain.NewPayloadTooLargeError("Image file is too large. Maximum size is 4MB.").
			WithContext("hint", "Please compress your image or try a smaller file."))

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Please compress your image or try a smaller file.", body.Details["hint"])
}

func TestErrorHandler_UnknownError(t *testing.T) {
	app := setupErrorTestApp(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeInternal), body.Code)
	assert.Equal(t, "Internal server error", body.Error)
}

func TestBodyLimit(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Post("/upload", middleware.BodyLimit(8, "Try a smaller file."), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("UnderLimit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/upload", bytes.NewReader([]byte("12345678")))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("OverLimit", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/upload", bytes.NewReader([]byte("123456789")))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

		var body middleware.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, string(domain.CodePayloadTooLarge), body.Code)
		assert.Equal(t, "Try a smaller file.", body.Details["hint"])
	})
}
