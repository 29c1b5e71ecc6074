package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/services"
)

type evaluatorFactory func(ctx context.Context, cfg *config.Config) (services.EvaluatorService, error)

type options struct {
	resumePath string
	jdPath     string
	jdText     string
	outDir     string
}

func main() {
	if err := newEvaluateCmd(newEvaluator).Execute(); err != nil {
		os.Exit(1)
	}
}

func newEvaluator(ctx context.Context, cfg *config.Config) (services.EvaluatorService, error) {
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}
	return services.NewEvaluatorService(geminiService, services.NewPDFParserService(), cfg.Gemini.Timeout), nil
}

func newEvaluateCmd(factory evaluatorFactory) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a PDF resume against a job description",
		Long: `Evaluate a PDF resume against a job description with Gemini and write
ats_evaluation.json and ats_report.pdf to the output directory.

Example:
  evaluate --resume cv.pdf --jd jd.txt --out ./reports
  evaluate --resume cv.pdf --jd-text "Senior Go engineer, Kubernetes, gRPC"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.Context(), cmd.OutOrStdout(), opts, factory)
		},
	}

	cmd.Flags().StringVar(&opts.resumePath, "resume", "", "Path to the resume PDF")
	cmd.Flags().StringVar(&opts.jdPath, "jd", "", "Path to a text file with the job description")
	cmd.Flags().StringVar(&opts.jdText, "jd-text", "", "Job description text (used when --jd is not set)")
	cmd.Flags().StringVar(&opts.outDir, "out", "./reports", "Directory for the JSON and PDF reports")
	_ = cmd.MarkFlagRequired("resume")

	return cmd
}

func runEvaluate(ctx context.Context, out io.Writer, opts *options, factory evaluatorFactory) error {
	if ctx == nil {
		ctx = context.Background()
	}

	jobDescription, err := loadJobDescription(opts)
	if err != nil {
		return err
	}

	cfg := config.Load()
	cfg.Storage.ReportPath = opts.outDir

	evaluator, err := factory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize evaluator: %w", err)
	}

	storageService := services.NewStorageService(opts.outDir)
	if err := storageService.EnsureReportDir(); err != nil {
		return err
	}
	reportService := services.NewReportService(storageService)

	log.Printf("🤖 Evaluating %s...\n", opts.resumePath)
	result, err := evaluator.EvaluateFile(ctx, opts.resumePath, jobDescription)
	if err != nil {
		if raw, ok := services.RawReply(err); ok {
			fmt.Fprintf(out, "❌ Failed to parse Gemini response. Raw reply:\n%s\n", raw)
		}
		return err
	}

	view := reportService.View(result)
	fmt.Fprintf(out, "🎯 JD Match: %s\n\n", view.Match)
	fmt.Fprintf(out, "❌ Missing Keywords:\n%s\n\n", view.MissingKeywords)
	fmt.Fprintf(out, "📝 Profile Summary:\n%s\n\n", view.ProfileSummary)
	fmt.Fprintf(out, "💡 AI Suggestions to Improve Resume:\n%s\n", view.Suggestions)

	jsonReport, err := reportService.RenderJSON(result)
	if err != nil {
		return err
	}
	pdfReport, err := reportService.RenderPDF(result)
	if err != nil {
		return err
	}

	for name, data := range map[string][]byte{
		services.JSONReportFilename: jsonReport,
		services.PDFReportFilename:  pdfReport,
	} {
		path := filepath.Join(opts.outDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("✅ Wrote %s\n", path)
	}

	return nil
}

func loadJobDescription(opts *options) (string, error) {
	if opts.jdPath == "" {
		if strings.TrimSpace(opts.jdText) == "" {
			return "", fmt.Errorf("%w: provide --jd or --jd-text", services.ErrValidation)
		}
		return opts.jdText, nil
	}

	data, err := os.ReadFile(opts.jdPath)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return string(data), nil
}
