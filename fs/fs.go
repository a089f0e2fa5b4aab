// Package fs resolves the fixed filesystem layout for runtime artifacts.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Layout maps the fixed artifact paths under a base directory. All paths
// are relative to the program location, not the working directory.
type Layout struct {
	Base string
}

// DefaultBase returns the directory containing the running executable,
// falling back to the working directory if it cannot be resolved.
func DefaultBase() string {
	exe, err := os.Executable()
	if err != nil {
		wd, werr := os.Getwd()
		if werr != nil {
			return "."
		}
		return wd
	}
	return filepath.Dir(exe)
}

// RubricPath is the fixed location of the judge rubric file.
func (l Layout) RubricPath() string {
	return filepath.Join(l.Base, ".specify", "agents", "judge.agent.md")
}

// DataDir holds all runtime artifacts.
func (l Layout) DataDir() string {
	return filepath.Join(l.Base, "data")
}

// SamplesPath is the batch-mode input: a JSON array of {id, code} cases.
func (l Layout) SamplesPath() string {
	return filepath.Join(l.DataDir(), "test_cases", "sample.json")
}

// ReportPath is the output report, overwritten each run.
func (l Layout) ReportPath() string {
	return filepath.Join(l.DataDir(), "evaluation_report.json")
}

// JudgmentsPath holds human review judgments recorded against a report.
func (l Layout) JudgmentsPath() string {
	return filepath.Join(l.DataDir(), "evaluation_report-judgments.jsonl")
}

// DebugDir holds one artifact per failed case.
func (l Layout) DebugDir() string {
	return filepath.Join(l.DataDir(), "debug")
}

// DebugPath is the artifact location for a failed case id.
func (l Layout) DebugPath(id string) string {
	return filepath.Join(l.DebugDir(), fmt.Sprintf("debug_%s.txt", id))
}
