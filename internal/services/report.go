package services

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"alfredoptarigan/smart-ats/internal/models"
)

const (
	NoSuggestionsText = "No suggestions found."

	JSONReportFilename = "ats_evaluation.json"
	PDFReportFilename  = "ats_report.pdf"

	pdfMargin     = 15.0
	pdfFontSize   = 12.0
	pdfLineHeight = 10.0
)

type ReportService interface {
	View(result *models.EvaluationResult) models.ReportView
	RenderJSON(result *models.EvaluationResult) ([]byte, error)
	RenderPDF(result *models.EvaluationResult) ([]byte, error)
}

type reportService struct {
	storage StorageService
}

func NewReportService(storage StorageService) ReportService {
	return &reportService{storage: storage}
}

// View formats the result for on-screen display.
func (s *reportService) View(result *models.EvaluationResult) models.ReportView {
	suggestions := result.Suggestions
	if strings.TrimSpace(suggestions) == "" {
		suggestions = NoSuggestionsText
	}

	return models.ReportView{
		Progress:        float64(result.MatchPercentage) / 100,
		Match:           result.MatchLabel(),
		MissingKeywords: strings.Join(result.MissingKeywords, ", "),
		ProfileSummary:  result.ProfileSummary,
		Suggestions:     suggestions,
	}
}

func (s *reportService) RenderJSON(result *models.EvaluationResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return data, nil
}

// RenderPDF lays the four report blocks out in a fixed-width font. The file
// goes through the report directory and is removed once read back.
func (s *reportService) RenderPDF(result *models.EvaluationResult) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.AddPage()
	doc.SetFont("Courier", "", pdfFontSize)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, block := range pdfBlocks(result) {
		doc.MultiCell(0, pdfLineHeight, tr(block), "", "L", false)
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to build PDF report: %w", err)
	}

	return s.storage.WriteTransient("ats_report", ".pdf", func(w io.Writer) error {
		return doc.Output(w)
	})
}

func pdfBlocks(result *models.EvaluationResult) []string {
	return []string{
		"JD Match: " + result.MatchLabel(),
		"Missing Keywords: " + strings.Join(result.MissingKeywords, ", "),
		"Profile Summary:\n" + result.ProfileSummary,
		"Suggestions:\n" + result.Suggestions,
	}
}
