package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"alfredoptarigan/smart-ats/internal/config"
)

const (
	responseMIMEType = "application/json"
	maxOutputTokens  = 4096
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(ctx context.Context, cfg config.GeminiConfig) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
	}, nil
}

func (g *geminiService) ModelName() string {
	return g.modelName
}

// generationConfig asks for a bare JSON object so the reply rarely needs cleanup.
func generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
		MaxOutputTokens:  maxOutputTokens,
	}
}

// GenerateText sends prompt to the configured model and returns the text of
// the reply. Failures are not retried.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), generationConfig())
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("%w: failed to generate text: %w", ErrService, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no response generated (nil response)", ErrService)
	}

	text := resp.Text()
	if text == "" {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: prompt blocked: %s", ErrService, resp.PromptFeedback.BlockReason)
		}
		return "", fmt.Errorf("%w: no text content in response", ErrService)
	}

	log.Printf("📊 Gemini response received: %d characters\n", len(text))
	return text, nil
}
