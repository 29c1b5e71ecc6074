package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/services"
)

type EvaluationHandler struct {
	evaluator      services.EvaluatorService
	storageService services.StorageService
	reportService  services.ReportService
	maxFileSize    int64
}

func NewEvaluationHandler(
	evaluator services.EvaluatorService,
	storageService services.StorageService,
	reportService services.ReportService,
	maxFileSize int64,
) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator:      evaluator,
		storageService: storageService,
		reportService:  reportService,
		maxFileSize:    maxFileSize,
	}
}

// HandleEvaluate handles POST /api/v1/evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	result, err := h.evaluate(c)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(models.EvaluateResponse{
		Result: *result,
		View:   h.reportService.View(result),
	})
}

// HandleEvaluatePage handles POST /evaluate from the web form.
func (h *EvaluationHandler) HandleEvaluatePage(c *fiber.Ctx) error {
	page := pageData{JobDescription: c.FormValue("job_description")}

	result, err := h.evaluate(c)
	if err != nil {
		switch services.KindOf(err) {
		case services.KindValidation:
			page.Warning = "Please upload a resume and paste the job description. " + err.Error()
		case services.KindNormalization:
			page.Error = "Failed to parse Gemini response. Try again."
			if raw, ok := services.RawReply(err); ok {
				page.RawReply = raw
			}
		default:
			page.Error = err.Error()
		}
		return renderPage(c, statusFor(err), page)
	}

	reportJSON, err := h.reportService.RenderJSON(result)
	if err != nil {
		return err
	}

	view := h.reportService.View(result)
	page.View = &view
	page.ReportJSON = string(reportJSON)
	return renderPage(c, fiber.StatusOK, page)
}

func (h *EvaluationHandler) evaluate(c *fiber.Ctx) (*models.EvaluationResult, error) {
	jobDescription := c.FormValue("job_description")

	file, err := c.FormFile("resume")
	if err != nil {
		return nil, fmt.Errorf("%w: resume PDF is required", services.ErrValidation)
	}

	if file.Size > h.maxFileSize {
		return nil, fmt.Errorf("%w: resume file too large. Max size: %d bytes", services.ErrValidation, h.maxFileSize)
	}

	resume, err := h.storageService.ReadUpload(file)
	if err != nil {
		return nil, err
	}

	return h.evaluator.EvaluateDocument(c.UserContext(), resume, resume.Size(), jobDescription)
}

func statusFor(err error) int {
	switch services.KindOf(err) {
	case services.KindValidation:
		return fiber.StatusBadRequest
	case services.KindExtraction:
		return fiber.StatusUnprocessableEntity
	case services.KindService, services.KindNormalization:
		return fiber.StatusBadGateway
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return fiberErr.Code
		}
		return fiber.StatusInternalServerError
	}
}

func writeError(c *fiber.Ctx, err error) error {
	response := models.ErrorResponse{
		Error: err.Error(),
		Kind:  services.KindOf(err),
	}
	if raw, ok := services.RawReply(err); ok {
		response.RawReply = &raw
	}

	return c.Status(statusFor(err)).JSON(response)
}
