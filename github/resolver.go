// Package github resolves GitHub blob URLs and fetches raw file contents
// through the contents API.
package github

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shirinlakhani/codejudge"
)

// ErrInvalidURL is returned for anything that is not a GitHub blob URL.
var ErrInvalidURL = errors.New("github: not a blob URL")

const (
	hostMarker  = "github.com"
	blobMarker  = "/blob/"
	hostPrefix  = "https://github.com/"
	defaultBase = "https://api.github.com"
)

// Resolve parses a blob URL of the form
// https://github.com/<owner>/<repo>/blob/<branch>/<path...> into a
// ContentRequest. Branch names containing slashes are not distinguishable
// from the leading path segment, so the first segment after /blob/ is taken
// as the branch and the rest as the path.
func Resolve(rawURL string) (*codejudge.ContentRequest, error) {
	if !strings.Contains(rawURL, hostMarker) || !strings.Contains(rawURL, blobMarker) {
		return nil, ErrInvalidURL
	}

	base, tail, _ := strings.Cut(rawURL, blobMarker)

	// Only the first two path components count as owner and repo; extra
	// slashes in the base are ignored.
	repoParts := strings.Split(strings.TrimPrefix(base, hostPrefix), "/")
	if len(repoParts) < 2 {
		return nil, ErrInvalidURL
	}
	owner, repo := repoParts[0], repoParts[1]

	branch, path, _ := strings.Cut(tail, "/")
	if owner == "" || repo == "" || branch == "" {
		return nil, ErrInvalidURL
	}

	return &codejudge.ContentRequest{
		Owner:  owner,
		Repo:   repo,
		Branch: branch,
		Path:   path,
	}, nil
}

// RequestURL renders the contents-API endpoint for a ContentRequest against
// the given API base URL.
func RequestURL(base string, req codejudge.ContentRequest) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		base, req.Owner, req.Repo, req.Path, url.QueryEscape(req.Branch))
}
