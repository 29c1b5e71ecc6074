package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Report keys shared by the prompt, the normalizer and the downloadable report.
const (
	KeyMatch           = "JD Match"
	KeyMissingKeywords = "MissingKeywords"
	KeyProfileSummary  = "Profile Summary"
	KeySuggestions     = "Suggestions"
)

// RequiredKeys lists the report keys in display order.
var RequiredKeys = []string{KeyMatch, KeyMissingKeywords, KeyProfileSummary, KeySuggestions}

type EvaluationRequest struct {
	ResumeText     string
	JobDescription string
}

// EvaluationResult is the structured evaluation of a resume against a job
// description. It is produced once by the normalizer and only read afterwards.
type EvaluationResult struct {
	MatchPercentage int
	MissingKeywords []string
	ProfileSummary  string
	Suggestions     string
}

type report struct {
	Match           string   `json:"JD Match"`
	MissingKeywords []string `json:"MissingKeywords"`
	ProfileSummary  string   `json:"Profile Summary"`
	Suggestions     string   `json:"Suggestions"`
}

// MatchLabel renders the percentage the way the report stores it, e.g. "72%".
func (r EvaluationResult) MatchLabel() string {
	return fmt.Sprintf("%d%%", r.MatchPercentage)
}

func (r EvaluationResult) MarshalJSON() ([]byte, error) {
	keywords := r.MissingKeywords
	if keywords == nil {
		keywords = []string{}
	}

	return json.Marshal(report{
		Match:           r.MatchLabel(),
		MissingKeywords: keywords,
		ProfileSummary:  r.ProfileSummary,
		Suggestions:     r.Suggestions,
	})
}

func (r *EvaluationResult) UnmarshalJSON(data []byte) error {
	var rep report
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}

	match, err := ParseMatchPercentage(rep.Match)
	if err != nil {
		return err
	}

	keywords := rep.MissingKeywords
	if keywords == nil {
		keywords = []string{}
	}

	*r = EvaluationResult{
		MatchPercentage: match,
		MissingKeywords: keywords,
		ProfileSummary:  rep.ProfileSummary,
		Suggestions:     rep.Suggestions,
	}
	return nil
}

// ParseMatchPercentage accepts "85" or "85%" and returns 85.
func ParseMatchPercentage(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))

	match, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("match percentage %q is not an integer", value)
	}
	return match, nil
}
