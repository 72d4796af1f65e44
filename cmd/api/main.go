// @title Smart Study Assistant API
// @version 1.0
// @description Study assistant backend: PDF text extraction, summaries, explanations, quiz generation and visual Q&A delegated to LLM providers.
// @contact.name API Support
// @license.name MIT
// @host localhost:5000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"smartstudy/internal/adapter/llm"
	"smartstudy/internal/config"
	"smartstudy/internal/handler"
	"smartstudy/internal/logger"
	"smartstudy/internal/middleware"
	"smartstudy/internal/service"
	"smartstudy/internal/validation"

	_ "smartstudy/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

// listenWithFallback listens on the configured port, probing successive
// ports when it is already taken.
func listenWithFallback(app *fiber.App, appLogger *zap.Logger, port, probes int) error {
	for i := 0; i <= probes; i++ {
		addr := ":" + strconv.Itoa(port+i)
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			appLogger.Warn("Port unavailable, trying next",
				zap.Int("port", port+i),
				zap.Error(err))
			continue
		}
		if i > 0 {
			appLogger.Info("Configured port was taken, using fallback", zap.Int("port", port+i))
		}
		appLogger.Info("Starting server", zap.Int("port", port+i), zap.String("env", os.Getenv("ENV")))
		return app.Listener(ln)
	}
	return fmt.Errorf("no free port in range %d-%d", port, port+probes)
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Provider clients are built once here and injected; nothing else in
	// the process holds ambient state.
	completion, err := llm.NewGroqCompletionService(cfg.Groq)
	if err != nil {
		appLogger.Fatal("Failed to create completion client", zap.Error(err))
	}
	appLogger.Info("Completion client initialized", zap.String("model", cfg.Groq.Model))

	vision, err := llm.NewGeminiVisionService(context.Background(), cfg.Gemini)
	if err != nil {
		appLogger.Fatal("Failed to create vision client", zap.Error(err))
	}
	defer vision.Close()
	appLogger.Info("Vision client initialized", zap.String("model", cfg.Gemini.VisionModel))

	// Initialize services
	studyService := service.NewStudyService(completion)
	quizService := service.NewQuizService(completion)
	visionService := service.NewVisionService(vision)

	// Initialize handlers
	pdfHandler := handler.NewPDFHandler(studyService)
	quizHandler := handler.NewQuizHandler(quizService)
	visionHandler := handler.NewVisionHandler(visionService)

	// Create Fiber app. BodyLimit covers the largest accepted upload (10MB
	// PDFs plus multipart overhead); the image routes narrow it to 4MB.
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    validation.MaxPDFSize + 1024*1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.ClientURL,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Get("/health", handler.Health)

	pdfGroup := apiGroup.Group("/pdf")
	pdfGroup.Post("/upload", pdfHandler.UploadPDF)
	pdfGroup.Post("/summarize", pdfHandler.Summarize)
	pdfGroup.Post("/explain", pdfHandler.Explain)

	quizGroup := apiGroup.Group("/quiz")
	quizGroup.Post("/generate", quizHandler.GenerateQuiz)
	quizGroup.Post("/check", quizHandler.CheckAnswer)

	visionGroup := apiGroup.Group("/vision",
		middleware.BodyLimit(validation.MaxImageSize+256*1024,
			"Maximum file size is 4MB. Please compress your image or try a smaller file."))
	visionGroup.Post("/analyze", visionHandler.AnalyzeImage)

	// Start server
	go func() {
		if err := listenWithFallback(app, appLogger, cfg.Server.Port, cfg.Server.PortProbes); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
