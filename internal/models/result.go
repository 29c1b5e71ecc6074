package models

type EvaluateResponse struct {
	Result EvaluationResult `json:"result"`
	View   ReportView       `json:"view"`
}

// ReportView is the on-screen rendering of an EvaluationResult.
type ReportView struct {
	Progress        float64 `json:"progress"`
	Match           string  `json:"match"`
	MissingKeywords string  `json:"missing_keywords"`
	ProfileSummary  string  `json:"profile_summary"`
	Suggestions     string  `json:"suggestions"`
}

type ErrorResponse struct {
	Error    string  `json:"error"`
	Kind     string  `json:"kind"`
	RawReply *string `json:"raw_reply,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
