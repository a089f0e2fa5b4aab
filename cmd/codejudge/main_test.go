package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirinlakhani/codejudge"
	main "github.com/shirinlakhani/codejudge/cmd/codejudge"
	"github.com/shirinlakhani/codejudge/fs"
	"github.com/shirinlakhani/codejudge/jsondata"
	"github.com/shirinlakhani/codejudge/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App over a temp directory with a rubric in place and
// real file-backed stores, so runs exercise the full artifact layout.
func newTestApp(t *testing.T, judge codejudge.Judge, fetcher codejudge.ContentFetcher) (*main.App, fs.Layout, *bytes.Buffer) {
	t.Helper()

	layout := fs.Layout{Base: t.TempDir()}
	require.NoError(t, os.MkdirAll(filepath.Dir(layout.RubricPath()), 0o755))
	require.NoError(t, os.WriteFile(layout.RubricPath(), []byte("score this code"), 0o644))

	var out bytes.Buffer
	app := &main.App{
		Config:  codejudge.Config{APIKey: "test", Project: "test", Workers: 1},
		Layout:  layout,
		Fetcher: fetcher,
		Judge:   judge,
		Cases:   jsondata.NewCaseLoader(),
		Reports: jsondata.NewReportStore(),
		Debug:   jsondata.NewDebugStore(),
		Out:     &out,
	}
	return app, layout, &out
}

func writeSamples(t *testing.T, layout fs.Layout, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(layout.SamplesPath()), 0o755))
	require.NoError(t, os.WriteFile(layout.SamplesPath(), []byte(content), 0o644))
}

func TestApp_Run_BatchMode(t *testing.T) {
	t.Parallel()

	t.Run("fenced JSON response lands in the report", func(t *testing.T) {
		t.Parallel()

		judge := &mock.Judge{
			EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
				return "```json\n{\"score\":5}\n```", nil
			},
		}
		app, layout, _ := newTestApp(t, judge, nil)
		writeSamples(t, layout, `[{"id":"a","code":"x=1"}]`)

		require.NoError(t, app.Run(context.Background(), ""))

		raw, err := os.ReadFile(layout.ReportPath())
		require.NoError(t, err)

		var report []map[string]any
		require.NoError(t, json.Unmarshal(raw, &report))
		require.Len(t, report, 1)
		assert.Equal(t, float64(5), report[0]["score"])
		assert.Equal(t, "a", report[0]["input_id"])
	})

	t.Run("unparseable response produces a debug file and no report entry", func(t *testing.T) {
		t.Parallel()

		judge := &mock.Judge{
			EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
				return "not json", nil
			},
		}
		app, layout, out := newTestApp(t, judge, nil)
		writeSamples(t, layout, `[{"id":"b","code":"y=2"}]`)

		require.NoError(t, app.Run(context.Background(), ""))

		content, err := os.ReadFile(layout.DebugPath("b"))
		require.NoError(t, err)
		assert.Equal(t, "not json", string(content))

		raw, err := os.ReadFile(layout.ReportPath())
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw), "report is written even when every case fails")

		assert.Contains(t, out.String(), "json parse failed for b")
	})

	t.Run("mixed batch: M entries and N-M debug files", func(t *testing.T) {
		t.Parallel()

		judge := &mock.Judge{
			EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
				if code == "bad" {
					return "garbage", nil
				}
				return `{"score":1}`, nil
			},
		}
		app, layout, _ := newTestApp(t, judge, nil)
		writeSamples(t, layout, `[
			{"id":"a","code":"ok"},
			{"id":"b","code":"bad"},
			{"id":"c","code":"ok"},
			{"id":"d","code":"bad"}
		]`)

		require.NoError(t, app.Run(context.Background(), ""))

		report, err := jsondata.NewReportStore().Load(layout.ReportPath())
		require.NoError(t, err)
		require.Len(t, report, 2)
		assert.Equal(t, "a", report[0].InputID(), "report order follows input order")
		assert.Equal(t, "c", report[1].InputID())

		entries, err := os.ReadDir(layout.DebugDir())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "debug_b.txt", entries[0].Name())
		assert.Equal(t, "debug_d.txt", entries[1].Name())
	})

	t.Run("missing samples file is fatal with no report", func(t *testing.T) {
		t.Parallel()

		app, layout, _ := newTestApp(t, &mock.Judge{}, nil)

		err := app.Run(context.Background(), "")

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		_, statErr := os.Stat(layout.ReportPath())
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("non-URL argument still selects batch mode", func(t *testing.T) {
		t.Parallel()

		judge := &mock.Judge{
			EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
				return "{}", nil
			},
		}
		app, layout, out := newTestApp(t, judge, nil)
		writeSamples(t, layout, `[]`)

		require.NoError(t, app.Run(context.Background(), "whatever")) // ignored

		assert.Contains(t, out.String(), "mode: local samples")
		raw, err := os.ReadFile(layout.ReportPath())
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(raw))
	})
}

func TestApp_Run_RemoteMode(t *testing.T) {
	t.Parallel()

	t.Run("fetched file becomes the single github_audit case", func(t *testing.T) {
		t.Parallel()

		var fetchedReq codejudge.ContentRequest
		fetcher := &mock.ContentFetcher{
			FetchFn: func(ctx context.Context, req codejudge.ContentRequest) (string, error) {
				fetchedReq = req
				return "remote code", nil
			},
		}
		var judgedCode string
		judge := &mock.Judge{
			EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
				judgedCode = code
				return `{"score":4}`, nil
			},
		}
		app, layout, out := newTestApp(t, judge, fetcher)

		err := app.Run(context.Background(), "https://github.com/user/repo/blob/main/file.py")

		require.NoError(t, err)
		assert.Equal(t, "user", fetchedReq.Owner)
		assert.Equal(t, "repo", fetchedReq.Repo)
		assert.Equal(t, "main", fetchedReq.Branch)
		assert.Equal(t, "file.py", fetchedReq.Path)
		assert.Equal(t, "remote code", judgedCode)
		assert.Contains(t, out.String(), "mode: github audit")

		report, err := jsondata.NewReportStore().Load(layout.ReportPath())
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, codejudge.RemoteCaseID, report[0].InputID())
	})

	t.Run("invalid URL aborts with no report write", func(t *testing.T) {
		t.Parallel()

		app, layout, _ := newTestApp(t, &mock.Judge{}, &mock.ContentFetcher{})

		err := app.Run(context.Background(), "https://github.com/user/repo/tree/main/file.py")

		require.Error(t, err)
		_, statErr := os.Stat(layout.ReportPath())
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})

	t.Run("fetch failure aborts with no report write", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.ContentFetcher{
			FetchFn: func(ctx context.Context, req codejudge.ContentRequest) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		app, layout, _ := newTestApp(t, &mock.Judge{}, fetcher)

		err := app.Run(context.Background(), "https://github.com/user/repo/blob/main/file.py")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch")
		_, statErr := os.Stat(layout.ReportPath())
		assert.ErrorIs(t, statErr, os.ErrNotExist)
	})
}

func TestApp_Run_MissingRubric(t *testing.T) {
	t.Parallel()

	app, layout, _ := newTestApp(t, &mock.Judge{}, nil)
	require.NoError(t, os.Remove(layout.RubricPath()))
	writeSamples(t, layout, `[{"id":"a","code":"x=1"}]`)

	var judged bool
	app.Judge = &mock.Judge{
		EvaluateFn: func(ctx context.Context, rubric, code string) (string, error) {
			judged = true
			return "{}", nil
		},
	}

	err := app.Run(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rubric")
	assert.False(t, judged, "rubric absence must be fatal before any model call")
	_, statErr := os.Stat(layout.ReportPath())
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}
