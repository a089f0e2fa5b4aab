// Package jsondata provides JSON file persistence for evaluation cases,
// reports, and debug artifacts.
package jsondata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.CaseLoader = (*CaseLoader)(nil)

// CaseLoader loads Case records from a JSON array file.
type CaseLoader struct{}

// NewCaseLoader creates a new CaseLoader.
func NewCaseLoader() *CaseLoader {
	return &CaseLoader{}
}

// Load reads a JSON array of {id, code} objects. A missing file is an
// error; batch mode treats it as fatal.
func (l *CaseLoader) Load(path string) ([]codejudge.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cases []codejudge.Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cases, nil
}
