package codejudge

import "time"

// ReviewCase pairs a judge verdict with the code it scored, for human review.
type ReviewCase struct {
	Result Result `json:"result"`
	Code   string `json:"code"` // Empty if the code for this id is unknown
}

// Judgment records a human reviewer's evaluation of a judge verdict.
type Judgment struct {
	InputID  string    `json:"input_id"`  // Links to Result.InputID()
	Index    int       `json:"index"`     // Position in the report (0-based)
	Judged   bool      `json:"judged"`    // Whether pass/fail has been explicitly set
	Pass     bool      `json:"pass"`      // Whether the verdict is acceptable
	Critique string    `json:"critique"`  // Explanation for failure (empty if pass)
	JudgedAt time.Time `json:"judged_at"` // When judgment was recorded
}

// JudgmentStore persists and retrieves judgments.
type JudgmentStore interface {
	Load(path string) ([]Judgment, error)
	Save(path string, judgments []Judgment) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// Highlighter renders source code with syntax highlighting for terminal
// display. Implementations fall back to the input text for unknown languages.
type Highlighter interface {
	Highlight(source string) string
}
