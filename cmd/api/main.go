package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/handlers"
	"alfredoptarigan/smart-ats/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.ReportPath)
	if err := storageService.EnsureReportDir(); err != nil {
		log.Fatalf("❌ Failed to create report directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	reportService := services.NewReportService(storageService)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized with model %s\n", geminiService.ModelName())

	evaluatorService := services.NewEvaluatorService(geminiService, pdfParser, cfg.Gemini.Timeout)

	// Initialize Handlers
	evaluateHandler := handlers.NewEvaluationHandler(
		evaluatorService,
		storageService,
		reportService,
		cfg.Storage.MaxFileSize,
	)
	reportHandler := handlers.NewReportHandler(reportService)
	log.Println("✅ Handlers initialized")

	// The model call alone may take up to the Gemini timeout.
	app := fiber.New(fiber.Config{
		AppName:      "Smart ATS Resume Evaluator",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Gemini.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	handlers.SetupRoutes(app, evaluateHandler, reportHandler, geminiService.ModelName())

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 Open http://localhost%s to evaluate a resume\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
