package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
)

func SetupRoutes(app *fiber.App, evaluateHandler *EvaluationHandler, reportHandler *ReportHandler, modelName string) {
	// Web UI
	app.Get("/", HandleIndex)
	app.Post("/evaluate", evaluateHandler.HandleEvaluatePage)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Model:  modelName,
		})
	})

	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Post("/report/json", reportHandler.HandleJSONReport)
	api.Post("/report/pdf", reportHandler.HandlePDFReport)
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
