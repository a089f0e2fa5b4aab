package jsondata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.ReportStore = (*ReportStore)(nil)

// ReportStore persists evaluation reports as an indented JSON array,
// overwriting any prior report.
type ReportStore struct{}

// NewReportStore creates a new ReportStore.
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Load reads a report file back into results.
func (s *ReportStore) Load(path string) ([]codejudge.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var results []codejudge.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return results, nil
}

// Save writes results to path, creating parent directories if needed. An
// empty result set still produces a report containing an empty array.
func (s *ReportStore) Save(path string, results []codejudge.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Marshal a non-nil slice so the vacuous report is "[]", not "null".
	if results == nil {
		results = []codejudge.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
