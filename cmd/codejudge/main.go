package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shirinlakhani/codejudge"
	"github.com/shirinlakhani/codejudge/fs"
	"github.com/shirinlakhani/codejudge/gemini"
	"github.com/shirinlakhani/codejudge/github"
	"github.com/shirinlakhani/codejudge/jsondata"
)

// App encapsulates the evaluation pipeline for testing.
type App struct {
	Config  codejudge.Config
	Layout  fs.Layout
	Fetcher codejudge.ContentFetcher
	Judge   codejudge.Judge
	Cases   codejudge.CaseLoader
	Reports codejudge.ReportStore
	Debug   codejudge.DebugStore
	Out     io.Writer
}

// Run executes one evaluation: rubric load, input selection, the per-case
// judge loop, and the final report write. Remote-mode failures abort before
// any report is written; batch mode always writes a report, even an empty one.
func (a *App) Run(ctx context.Context, input string) error {
	rubric, err := os.ReadFile(a.Layout.RubricPath())
	if err != nil {
		return fmt.Errorf("missing judge rubric: %w", err)
	}

	var cases []codejudge.Case
	if strings.HasPrefix(input, "http") {
		fmt.Fprintf(a.Out, "mode: github audit -> %s\n", input)

		req, err := github.Resolve(input)
		if err != nil {
			return fmt.Errorf("resolving %q: %w", input, err)
		}
		code, err := a.Fetcher.Fetch(ctx, *req)
		if err != nil {
			return fmt.Errorf("failed to fetch code from GitHub: %w", err)
		}
		cases = []codejudge.Case{{ID: codejudge.RemoteCaseID, Code: code}}
	} else {
		fmt.Fprintf(a.Out, "mode: local samples -> %s\n", a.Layout.SamplesPath())

		cases, err = a.Cases.Load(a.Layout.SamplesPath())
		if err != nil {
			return fmt.Errorf("loading samples: %w", err)
		}
	}

	runner := &codejudge.Runner{
		Rubric:   string(rubric),
		Judge:    a.Judge,
		Debug:    a.Debug,
		DebugDir: a.Layout.DebugDir(),
		Out:      a.Out,
		Workers:  a.Config.Workers,
	}

	results, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}

	if err := a.Reports.Save(a.Layout.ReportPath(), results); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	fmt.Fprintf(a.Out, "evaluation complete, report saved to %s\n", a.Layout.ReportPath())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; the real environment takes precedence.
	_ = godotenv.Load()

	cfg, err := codejudge.FromEnv(os.Getenv)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := gemini.NewClient(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("creating gemini client: %w", err)
	}
	defer client.Close()

	app := &App{
		Config:  cfg,
		Layout:  fs.Layout{Base: fs.DefaultBase()},
		Fetcher: github.NewFetcher(github.WithToken(cfg.GitHubToken)),
		Judge:   gemini.NewJudge(client, gemini.DefaultModel),
		Cases:   jsondata.NewCaseLoader(),
		Reports: jsondata.NewReportStore(),
		Debug:   jsondata.NewDebugStore(),
		Out:     os.Stdout,
	}

	fmt.Fprintf(app.Out, "project: %s\n", cfg.Project)

	// Zero or one positional argument; a URL selects remote-audit mode.
	var input string
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	return app.Run(ctx, input)
}
