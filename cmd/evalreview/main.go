package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirinlakhani/codejudge"
	"github.com/shirinlakhani/codejudge/bubbletea"
	"github.com/shirinlakhani/codejudge/chroma"
	"github.com/shirinlakhani/codejudge/clipboard"
	"github.com/shirinlakhani/codejudge/fs"
	"github.com/shirinlakhani/codejudge/jsondata"
	"github.com/shirinlakhani/codejudge/jsonl"
)

// ErrNoResults is returned when the report contains no verdicts to review.
var ErrNoResults = errors.New("no results to review")

// JudgmentsPath returns the path for the judgments file given a report path.
// evaluation_report.json -> evaluation_report-judgments.jsonl
func JudgmentsPath(reportPath string) string {
	dir := filepath.Dir(reportPath)
	base := filepath.Base(reportPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"-judgments.jsonl")
}

// BuildReviewCases joins report results with their source code by input_id.
// Cases without a matching sample are reviewed without a code panel.
func BuildReviewCases(results []codejudge.Result, samples []codejudge.Case) []codejudge.ReviewCase {
	codeByID := make(map[string]string, len(samples))
	for _, s := range samples {
		codeByID[s.ID] = s.Code
	}

	cases := make([]codejudge.ReviewCase, 0, len(results))
	for _, r := range results {
		cases = append(cases, codejudge.ReviewCase{
			Result: r,
			Code:   codeByID[r.InputID()],
		})
	}
	return cases
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	layout := fs.Layout{Base: fs.DefaultBase()}
	reportPath := layout.ReportPath()
	if len(os.Args) > 1 {
		reportPath = os.Args[1]
	}

	results, err := jsondata.NewReportStore().Load(reportPath)
	if err != nil {
		return fmt.Errorf("loading report: %w", err)
	}
	if len(results) == 0 {
		return ErrNoResults
	}

	// The samples file is optional here; remote-audit reports have no
	// local code to show.
	samples, err := jsondata.NewCaseLoader().Load(layout.SamplesPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading samples: %w", err)
	}

	cases := BuildReviewCases(results, samples)

	store := jsonl.NewStore()
	outputPath := JudgmentsPath(reportPath)
	existingJudgments, err := store.Load(outputPath)
	if err != nil {
		return fmt.Errorf("loading judgments: %w", err)
	}

	opts := []bubbletea.ReviewModelOption{
		bubbletea.WithJudgmentStore(store, outputPath),
		bubbletea.WithHighlighter(chroma.NewHighlighter("monokai")),
		bubbletea.WithClipboard(clipboard.New()),
	}
	if len(existingJudgments) > 0 {
		opts = append(opts, bubbletea.WithExistingJudgments(existingJudgments))
	}

	m := bubbletea.NewReviewModel(cases, opts...)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
