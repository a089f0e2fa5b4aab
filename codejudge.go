// Package codejudge provides domain types for LLM-as-judge code evaluation.
package codejudge

import "context"

// Case is a single unit of code to be scored against the rubric.
type Case struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// InputIDKey is the result field linking a verdict back to its case.
const InputIDKey = "input_id"

// Result is one parsed judge verdict. The schema beyond "JSON object" is
// defined by the rubric, not validated here, so it stays a generic object
// tagged with the case id.
type Result map[string]any

// InputID returns the case id the result was tagged with, or empty if the
// tag is missing or not a string.
func (r Result) InputID() string {
	id, _ := r[InputIDKey].(string)
	return id
}

// Judge scores a piece of code against a rubric and returns the model's raw
// textual response. Implementations may call an LLM or return canned text
// (for tests); normalization and parsing are the caller's concern.
type Judge interface {
	Evaluate(ctx context.Context, rubric, code string) (string, error)
}

// ContentRequest describes a raw-content fetch against a git forge's
// contents API, derived from a blob URL.
type ContentRequest struct {
	Owner  string
	Repo   string
	Branch string
	Path   string
}

// ContentFetcher retrieves the raw text of a remote file.
type ContentFetcher interface {
	Fetch(ctx context.Context, req ContentRequest) (string, error)
}

// CaseLoader loads evaluation cases from a source.
type CaseLoader interface {
	Load(path string) ([]Case, error)
}

// ReportStore persists and retrieves evaluation reports.
type ReportStore interface {
	Load(path string) ([]Result, error)
	Save(path string, results []Result) error
}

// DebugStore persists the cleaned-but-unparseable output of failed cases.
// Save returns the path of the written artifact.
type DebugStore interface {
	Save(dir, id, text string) (string, error)
}
