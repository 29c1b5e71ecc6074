package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/config"
)

func TestGenerationConfigRequestsJSON(t *testing.T) {
	cfg := generationConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.Equal(t, int32(4096), cfg.MaxOutputTokens)
}

func TestNewGeminiServiceRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiService(context.Background(), config.GeminiConfig{Model: "gemini-2.5-flash"})
	assert.Error(t, err)
}
