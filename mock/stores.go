package mock

import "github.com/shirinlakhani/codejudge"

// Compile-time interface verification.
var (
	_ codejudge.CaseLoader    = (*CaseLoader)(nil)
	_ codejudge.ReportStore   = (*ReportStore)(nil)
	_ codejudge.DebugStore    = (*DebugStore)(nil)
	_ codejudge.JudgmentStore = (*JudgmentStore)(nil)
)

// CaseLoader is a mock implementation of codejudge.CaseLoader.
type CaseLoader struct {
	LoadFn func(path string) ([]codejudge.Case, error)
}

func (l *CaseLoader) Load(path string) ([]codejudge.Case, error) {
	return l.LoadFn(path)
}

// ReportStore is a mock implementation of codejudge.ReportStore.
type ReportStore struct {
	LoadFn func(path string) ([]codejudge.Result, error)
	SaveFn func(path string, results []codejudge.Result) error
}

func (s *ReportStore) Load(path string) ([]codejudge.Result, error) {
	return s.LoadFn(path)
}

func (s *ReportStore) Save(path string, results []codejudge.Result) error {
	return s.SaveFn(path, results)
}

// DebugStore is a mock implementation of codejudge.DebugStore.
type DebugStore struct {
	SaveFn func(dir, id, text string) (string, error)
}

func (s *DebugStore) Save(dir, id, text string) (string, error) {
	return s.SaveFn(dir, id, text)
}

// JudgmentStore is a mock implementation of codejudge.JudgmentStore.
type JudgmentStore struct {
	LoadFn func(path string) ([]codejudge.Judgment, error)
	SaveFn func(path string, judgments []codejudge.Judgment) error
}

func (s *JudgmentStore) Load(path string) ([]codejudge.Judgment, error) {
	return s.LoadFn(path)
}

func (s *JudgmentStore) Save(path string, judgments []codejudge.Judgment) error {
	return s.SaveFn(path, judgments)
}
