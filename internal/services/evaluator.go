package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"alfredoptarigan/smart-ats/internal/models"
)

type EvaluatorService interface {
	// EvaluateDocument extracts the resume text from a PDF and evaluates it.
	EvaluateDocument(ctx context.Context, resume io.ReaderAt, size int64, jobDescription string) (*models.EvaluationResult, error)
	// EvaluateFile does the same for a PDF on disk.
	EvaluateFile(ctx context.Context, resumePath string, jobDescription string) (*models.EvaluationResult, error)
	Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.EvaluationResult, error)
}

type evaluatorService struct {
	geminiService GeminiService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewEvaluatorService(
	geminiService GeminiService,
	pdfParser PDFParserService,
	timeout time.Duration,
) EvaluatorService {
	return &evaluatorService{
		geminiService: geminiService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

func (e *evaluatorService) EvaluateDocument(ctx context.Context, resume io.ReaderAt, size int64, jobDescription string) (*models.EvaluationResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrValidation)
	}
	if resume == nil || size == 0 {
		return nil, fmt.Errorf("%w: resume document is required", ErrValidation)
	}

	log.Println("📄 Parsing resume...")
	content, err := e.pdfParser.ExtractTextWithMetaData(resume, size)
	if err != nil {
		return nil, err
	}

	return e.evaluateContent(ctx, content, jobDescription)
}

func (e *evaluatorService) EvaluateFile(ctx context.Context, resumePath string, jobDescription string) (*models.EvaluationResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrValidation)
	}
	if strings.TrimSpace(resumePath) == "" {
		return nil, fmt.Errorf("%w: resume document is required", ErrValidation)
	}

	log.Printf("📄 Parsing resume %s...\n", resumePath)
	content, err := e.pdfParser.ExtractFile(resumePath)
	if err != nil {
		return nil, err
	}

	return e.evaluateContent(ctx, content, jobDescription)
}

func (e *evaluatorService) evaluateContent(ctx context.Context, content *PDFContent, jobDescription string) (*models.EvaluationResult, error) {
	log.Printf("✅ Extracted %d pages, %d characters\n", content.PageCount, len(content.Text))

	return e.Evaluate(ctx, models.EvaluationRequest{
		ResumeText:     content.Text,
		JobDescription: jobDescription,
	})
}

// Evaluate runs prompt composition, the model call and normalization.
// Nothing is retried; the caller re-triggers on failure.
func (e *evaluatorService) Evaluate(ctx context.Context, req models.EvaluationRequest) (*models.EvaluationResult, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrValidation)
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		return nil, fmt.Errorf("%w: resume contains no extractable text", ErrValidation)
	}

	prompt := e.promptBuilder.BuildATSPrompt(req.ResumeText, req.JobDescription)
	log.Printf("📝 ATS prompt length: %d characters\n", len(prompt))

	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	log.Printf("🤖 Evaluating resume with %s...\n", e.geminiService.ModelName())
	response, err := e.geminiService.GenerateText(callCtx, prompt)
	if err != nil {
		if !errors.Is(err, ErrService) {
			err = fmt.Errorf("%w: %w", ErrService, err)
		}
		return nil, fmt.Errorf("failed to generate evaluation: %w", err)
	}

	result, err := NormalizeResponse(response)
	if err != nil {
		log.Printf("❌ Failed to parse model response (%d characters): %v\n", len(response), err)
		return nil, &ReplyError{Raw: response, Err: err}
	}

	log.Printf("✅ Evaluation completed: %d%% match, %d missing keywords\n", result.MatchPercentage, len(result.MissingKeywords))
	return result, nil
}
