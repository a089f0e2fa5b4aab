// Package mock provides function-field mock implementations for testing.
package mock

import (
	"context"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var (
	_ codejudge.Judge          = (*Judge)(nil)
	_ codejudge.ContentFetcher = (*ContentFetcher)(nil)
)

// Judge is a mock implementation of codejudge.Judge.
type Judge struct {
	EvaluateFn func(ctx context.Context, rubric, code string) (string, error)
}

func (j *Judge) Evaluate(ctx context.Context, rubric, code string) (string, error) {
	return j.EvaluateFn(ctx, rubric, code)
}

// ContentFetcher is a mock implementation of codejudge.ContentFetcher.
type ContentFetcher struct {
	FetchFn func(ctx context.Context, req codejudge.ContentRequest) (string, error)
}

func (f *ContentFetcher) Fetch(ctx context.Context, req codejudge.ContentRequest) (string, error) {
	return f.FetchFn(ctx, req)
}
