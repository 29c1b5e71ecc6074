package services

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/models"
)

func newTestReportService(t *testing.T) ReportService {
	t.Helper()
	return NewReportService(NewStorageService(t.TempDir()))
}

func TestReportView(t *testing.T) {
	reports := newTestReportService(t)

	view := reports.View(minifiedResult)

	assert.InDelta(t, 0.72, view.Progress, 1e-9)
	assert.Equal(t, "72%", view.Match)
	assert.Equal(t, "Kubernetes, gRPC", view.MissingKeywords)
	assert.Equal(t, "Solid backend experience.", view.ProfileSummary)
	assert.Equal(t, "Add cloud certifications.", view.Suggestions)
}

func TestReportViewFallbacks(t *testing.T) {
	reports := newTestReportService(t)

	view := reports.View(&models.EvaluationResult{
		MatchPercentage: 40,
		MissingKeywords: []string{},
		ProfileSummary:  "Limited overlap.",
	})

	assert.Equal(t, "", view.MissingKeywords)
	assert.Equal(t, NoSuggestionsText, view.Suggestions)
	assert.InDelta(t, 0.4, view.Progress, 1e-9)
}

func TestReportViewProgressBounds(t *testing.T) {
	reports := newTestReportService(t)

	for _, raw := range []string{
		`{"JD Match":"-30%","MissingKeywords":[],"Profile Summary":"","Suggestions":""}`,
		`{"JD Match":"250%","MissingKeywords":[],"Profile Summary":"","Suggestions":""}`,
	} {
		result, err := NormalizeResponse(raw)
		require.NoError(t, err)

		view := reports.View(result)
		assert.GreaterOrEqual(t, view.Progress, 0.0)
		assert.LessOrEqual(t, view.Progress, 1.0)
	}
}

func TestRenderJSON(t *testing.T) {
	reports := newTestReportService(t)

	data, err := reports.RenderJSON(minifiedResult)
	require.NoError(t, err)

	expected := `{
  "JD Match": "72%",
  "MissingKeywords": [
    "Kubernetes",
    "gRPC"
  ],
  "Profile Summary": "Solid backend experience.",
  "Suggestions": "Add cloud certifications."
}`
	assert.Equal(t, expected, string(data))

	var decoded models.EvaluationResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *minifiedResult, decoded)
}

func TestRenderJSONParsesBackThroughNormalizer(t *testing.T) {
	reports := newTestReportService(t)

	data, err := reports.RenderJSON(minifiedResult)
	require.NoError(t, err)

	got, err := NormalizeResponse(string(data))
	require.NoError(t, err)
	assert.Equal(t, minifiedResult, got)
}

func TestRenderPDF(t *testing.T) {
	reports := newTestReportService(t)

	data, err := reports.RenderPDF(minifiedResult)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	content, err := NewPDFParserService().ExtractTextWithMetaData(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	text := content.Text

	assert.Contains(t, text, "JD Match: 72%")
	assert.Contains(t, text, "Missing Keywords: Kubernetes, gRPC")
	assert.Contains(t, text, "Profile Summary:")
	assert.Contains(t, text, "Solid backend experience.")
	assert.Contains(t, text, "Suggestions:")
	assert.Contains(t, text, "Add cloud certifications.")
}

func TestRenderPDFHandlesNonLatinText(t *testing.T) {
	reports := newTestReportService(t)

	data, err := reports.RenderPDF(&models.EvaluationResult{
		MatchPercentage: 55,
		MissingKeywords: []string{"Café", "naïve Bayes"},
		ProfileSummary:  "Engineer’s profile — 日本語",
		Suggestions:     "",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}
