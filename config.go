package codejudge

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultProject is the project label used when EVAL_PROJECT is unset.
const DefaultProject = "codejudge"

// ErrMissingAPIKey is returned when the model provider credential is absent.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// Config captures process-wide configuration once at startup so components
// receive it explicitly instead of reading the environment ad hoc.
type Config struct {
	// APIKey authenticates model calls. Required.
	APIKey string
	// Project is an optional grouping label for observability. It has no
	// effect on evaluation logic.
	Project string
	// GitHubToken optionally authenticates raw-content fetches. When empty,
	// fetches are unauthenticated and subject to public rate limits.
	GitHubToken string
	// Workers bounds parallel case processing. 1 means strictly sequential.
	Workers int
}

// FromEnv builds a Config from the given environment lookup, typically
// os.Getenv. A missing credential is fatal before any other work.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:      getenv("GEMINI_API_KEY"),
		Project:     getenv("EVAL_PROJECT"),
		GitHubToken: getenv("GITHUB_TOKEN"),
		Workers:     1,
	}

	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.Project == "" {
		cfg.Project = DefaultProject
	}

	if raw := getenv("EVAL_WORKERS"); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil || workers < 1 {
			return Config{}, fmt.Errorf("invalid EVAL_WORKERS value %q", raw)
		}
		cfg.Workers = workers
	}

	return cfg, nil
}
