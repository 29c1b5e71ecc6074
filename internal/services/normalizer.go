package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"alfredoptarigan/smart-ats/internal/models"
)

var (
	ErrNoJSON       = errors.New("no JSON found in response")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidMatch = errors.New("invalid match percentage")
)

const snippetLimit = 120

// NormalizationError describes why a model reply could not be turned into an
// EvaluationResult. It matches ErrNormalization with errors.Is.
type NormalizationError struct {
	Err     error
	Snippet string
}

func (e *NormalizationError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%v: %v", ErrNormalization, e.Err)
	}
	return fmt.Sprintf("%v: %v (near %q)", ErrNormalization, e.Err, e.Snippet)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

func (e *NormalizationError) Is(target error) bool {
	return target == ErrNormalization
}

// NormalizeResponse recovers an EvaluationResult from a model reply that may be
// wrapped in markdown fences or surrounded by prose.
func NormalizeResponse(raw string) (*models.EvaluationResult, error) {
	text := stripFences(strings.TrimSpace(raw))

	candidate, ok := extractJSON(text)
	if !ok {
		return nil, &NormalizationError{Err: ErrNoJSON, Snippet: snippet(text)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return nil, &NormalizationError{Err: fmt.Errorf("failed to unmarshal JSON: %w", err), Snippet: snippet(candidate)}
	}

	for _, key := range models.RequiredKeys {
		// A null value counts as absent.
		value, exists := fields[key]
		if !exists || string(bytes.TrimSpace(value)) == "null" {
			return nil, &NormalizationError{Err: fmt.Errorf("%w: %q", ErrMissingField, key)}
		}
	}

	match, err := parseMatch(fields[models.KeyMatch])
	if err != nil {
		return nil, &NormalizationError{Err: err, Snippet: snippet(string(fields[models.KeyMatch]))}
	}

	result := &models.EvaluationResult{MatchPercentage: clampPercentage(match)}

	if err := decodeField(fields, models.KeyMissingKeywords, &result.MissingKeywords); err != nil {
		return nil, err
	}
	if err := decodeField(fields, models.KeyProfileSummary, &result.ProfileSummary); err != nil {
		return nil, err
	}
	if err := decodeField(fields, models.KeySuggestions, &result.Suggestions); err != nil {
		return nil, err
	}

	return result, nil
}

// stripFences removes a leading ``` or ```json marker and a trailing ``` marker.
func stripFences(text string) string {
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
			text = text[4:]
		}
		text = strings.TrimLeft(text, " \t\r\n")
	}

	text = strings.TrimSuffix(strings.TrimRight(text, " \t\r\n"), "```")
	return strings.TrimSpace(text)
}

// extractJSON returns the span from the first '{' to the last '}'.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func parseMatch(value json.RawMessage) (int, error) {
	var label string
	if err := json.Unmarshal(value, &label); err == nil {
		match, err := models.ParseMatchPercentage(label)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidMatch, err)
		}
		return match, nil
	}

	// Some replies carry the percentage as a bare JSON integer.
	var number int
	if err := json.Unmarshal(value, &number); err != nil {
		return 0, fmt.Errorf("%w: %s is neither a percentage string nor an integer", ErrInvalidMatch, value)
	}
	return number, nil
}

func clampPercentage(match int) int {
	if match < 0 {
		return 0
	}
	if match > 100 {
		return 100
	}
	return match
}

func decodeField(fields map[string]json.RawMessage, key string, target any) error {
	if err := json.Unmarshal(fields[key], target); err != nil {
		return &NormalizationError{Err: fmt.Errorf("field %q: %w", key, err), Snippet: snippet(string(fields[key]))}
	}
	return nil
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}
	return string(runes[:snippetLimit]) + "..."
}
