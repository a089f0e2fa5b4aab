// Package eval provides opt-in test helpers for exercising a live judge.
package eval

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/shirinlakhani/codejudge"
)

// Eval provides assertion helpers for live judge evaluation in tests.
type Eval struct {
	judge codejudge.Judge
}

// New creates a new Eval with the given judge.
func New(judge codejudge.Judge) *Eval {
	return &Eval{judge: judge}
}

// AssertParseableVerdict invokes the judge and fails the test unless the
// normalized response parses as a JSON object. Returns the parsed verdict
// on success, nil otherwise.
func (e *Eval) AssertParseableVerdict(tb testing.TB, rubric, code string) codejudge.Result {
	tb.Helper()

	raw, err := e.judge.Evaluate(tb.Context(), rubric, code)
	if err != nil {
		tb.Errorf("judge evaluation failed: %v", err)
		return nil
	}

	cleaned := codejudge.Normalize(raw)
	var result codejudge.Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		tb.Errorf("judge response is not valid JSON after normalization: %v\nResponse: %s", err, cleaned)
		return nil
	}
	return result
}

// SkipUnlessEvals skips the test unless GOEVALS environment variable is set.
// Use at the start of eval tests to make them opt-in.
func SkipUnlessEvals(tb testing.TB) {
	tb.Helper()
	if os.Getenv("GOEVALS") == "" {
		tb.Skip("GOEVALS not set")
	}
}
