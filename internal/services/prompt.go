package services

import (
	"fmt"

	"alfredoptarigan/smart-ats/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSPrompt creates the resume vs job description evaluation prompt.
// The output format must stay in sync with NormalizeResponse.
func (pb *PromptBuilder) BuildATSPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Act like a skilled ATS (Applicant Tracking System) trained in tech hiring. Evaluate the resume against the job description below.

Resume: `+"```"+`%s`+"```"+`
Job Description: `+"```"+`%s`+"```"+`

Return a JSON object with exactly these fields:
- %q: how well the resume matches the job description, as a percentage string such as "85%%"
- %q: keywords from the job description missing in the resume, as a list of strings
- %q: a short paragraph summarising the candidate profile
- %q: tips and enhancements to rewrite the resume, as a paragraph

Output format:
{
  %q: "85%%",
  %q: ["...", "..."],
  %q: "...",
  %q: "..."
}

Return ONLY the JSON object. Do not add explanations, commentary, or markdown code fences.`,
		resumeText, jobDescription,
		models.KeyMatch, models.KeyMissingKeywords, models.KeyProfileSummary, models.KeySuggestions,
		models.KeyMatch, models.KeyMissingKeywords, models.KeyProfileSummary, models.KeySuggestions,
	)
}
