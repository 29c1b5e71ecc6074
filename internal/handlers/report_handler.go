package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// HandleJSONReport handles POST /api/v1/report/json
func (h *ReportHandler) HandleJSONReport(c *fiber.Ctx) error {
	result, err := parseReport(c)
	if err != nil {
		return writeReportError(c, err)
	}

	data, err := h.reportService.RenderJSON(result)
	if err != nil {
		return err
	}

	c.Attachment(services.JSONReportFilename)
	return c.Send(data)
}

// HandlePDFReport handles POST /api/v1/report/pdf
func (h *ReportHandler) HandlePDFReport(c *fiber.Ctx) error {
	result, err := parseReport(c)
	if err != nil {
		return writeReportError(c, err)
	}

	data, err := h.reportService.RenderPDF(result)
	if err != nil {
		return err
	}

	c.Attachment(services.PDFReportFilename)
	return c.Send(data)
}

// parseReport reads a report from the "report" form field or the raw body.
func parseReport(c *fiber.Ctx) (*models.EvaluationResult, error) {
	payload := c.FormValue("report")
	if strings.TrimSpace(payload) == "" {
		payload = string(c.Body())
	}

	return services.NormalizeResponse(payload)
}

func writeReportError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: err.Error(),
		Kind:  services.KindOf(err),
	})
}
