package codejudge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// RemoteCaseID is the synthetic id assigned to a case fetched from a URL.
const RemoteCaseID = "github_audit"

// Runner drives the per-case evaluation loop: invoke the judge, normalize
// the response, parse it, and collect verdicts into an ordered report.
// Cases whose responses fail to parse are written to debug artifacts and
// skipped; judge errors abort the run.
type Runner struct {
	Rubric string
	Judge  Judge
	Debug  DebugStore
	// DebugDir is where artifacts for unparseable responses land.
	DebugDir string
	// Out receives per-case status messages. If nil, messages are discarded.
	Out io.Writer
	// Workers sets the number of parallel workers. If <= 1, cases run
	// strictly sequentially. Report ordering always matches input ordering.
	Workers int
}

// Run evaluates all cases in order and returns one Result per successfully
// parsed response. The returned slice preserves input case order.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	if r.Workers > 1 {
		return r.runParallel(ctx, cases)
	}
	return r.runSequential(ctx, cases)
}

func (r *Runner) runSequential(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		fmt.Fprintf(r.out(), "judging: %s\n", c.ID)

		raw, err := r.Judge.Evaluate(ctx, r.Rubric, c.Code)
		if err != nil {
			return nil, fmt.Errorf("judging %s: %w", c.ID, err)
		}

		result, debugText := r.parse(raw)
		if result == nil {
			if err := r.saveDebug(c.ID, debugText); err != nil {
				return nil, err
			}
			continue
		}

		result[InputIDKey] = c.ID
		results = append(results, result)
	}

	return results, nil
}

// caseOutcome holds the outcome of judging a single case. Exactly one of
// result and debugText is set.
type caseOutcome struct {
	result    Result
	debugText string
}

func (r *Runner) runParallel(ctx context.Context, cases []Case) ([]Result, error) {
	// Collect outcomes indexed by original position so the report order is
	// the input order, not completion order.
	outcomes := make([]caseOutcome, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Workers)

	for i, c := range cases {
		g.Go(func() error {
			raw, err := r.Judge.Evaluate(ctx, r.Rubric, c.Code)
			if err != nil {
				return fmt.Errorf("judging %s: %w", c.ID, err)
			}

			result, debugText := r.parse(raw)
			outcomes[i] = caseOutcome{result: result, debugText: debugText}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drain outcomes in input order: debug artifacts and status messages
	// stay deterministic regardless of completion order.
	results := make([]Result, 0, len(cases))
	for i, o := range outcomes {
		fmt.Fprintf(r.out(), "judging: %s\n", cases[i].ID)
		if o.result == nil {
			if err := r.saveDebug(cases[i].ID, o.debugText); err != nil {
				return nil, err
			}
			continue
		}
		o.result[InputIDKey] = cases[i].ID
		results = append(results, o.result)
	}

	return results, nil
}

// parse normalizes a raw model response and attempts a strict JSON parse.
// On failure it returns a nil Result and the cleaned text for debugging.
func (r *Runner) parse(raw string) (Result, string) {
	cleaned := Normalize(raw)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil || result == nil {
		// Non-object JSON ("null" unmarshals to a nil map) cannot carry the
		// input_id tag, so it is a parse failure too.
		return nil, cleaned
	}
	return result, ""
}

func (r *Runner) saveDebug(id, text string) error {
	path, err := r.Debug.Save(r.DebugDir, id, text)
	if err != nil {
		return fmt.Errorf("saving debug artifact for %s: %w", id, err)
	}
	fmt.Fprintf(r.out(), "json parse failed for %s, saved to %s\n", id, path)
	return nil
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return io.Discard
	}
	return r.Out
}
