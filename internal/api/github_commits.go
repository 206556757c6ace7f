package api

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"

	"github.com/libredomains/checker/internal/pp"
)

// commitsQuery is for assembling the query of the commits endpoint.
type commitsQuery struct {
	Path    string `url:"path"`
	PerPage int    `url:"per_page,omitempty"`
}

// ListCommits fetches the history of a path, newest first.
func (h GitHubHandle) ListCommits(ctx context.Context, ppfmt pp.PP, path string, perPage int) ([]Commit, bool) {
	v, err := query.Values(commitsQuery{Path: path, PerPage: perPage})
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to encode the query for the history of %s: %v", path, err)
		return nil, false
	}

	var commits []Commit
	if !h.get(ctx, ppfmt, fmt.Sprintf("fetch the history of %s", path), "/commits", v, &commits) {
		return nil, false
	}
	return commits, true
}
