package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/libredomains/checker/internal/pp"
)

const (
	acceptHeader  = "application/vnd.github.v3+json"
	maxReadLength = 4 << 20
)

// A GitHubHandle implements the [Handle] interface with the GitHub REST API.
type GitHubHandle struct {
	baseURL   *url.URL
	owner     string
	repo      string
	userAgent string
	timeout   time.Duration
	limiter   *rate.Limiter
	client    *retryablehttp.Client
}

func (h GitHubHandle) endpoint(suffix string, query url.Values) string {
	u := *h.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/repos/" + h.owner + "/" + h.repo + suffix
	u.RawPath = ""
	u.RawQuery = query.Encode()
	return u.String()
}

func hintRateLimit(ppfmt pp.PP, resp *http.Response) {
	if resp.StatusCode != http.StatusForbidden && resp.StatusCode != http.StatusTooManyRequests {
		return
	}
	if resp.Header.Get("X-RateLimit-Remaining") != "0" {
		return
	}
	ppfmt.Hintf(pp.HintRateLimited,
		"GitHub limits unauthenticated clients to a few requests per hour; "+
			"registered subdomains will be reloaded on the next scheduled refresh")
}

// get sends a GET request and decodes the JSON response into v.
// The parameter what completes the sentence "Failed to ..." in messages.
func (h GitHubHandle) get(ctx context.Context, ppfmt pp.PP, what, suffix string, query url.Values, v any) bool {
	if err := h.limiter.Wait(ctx); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to %s: %v", what, err)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, h.endpoint(suffix, query), nil)
	if err != nil {
		ppfmt.Noticef(pp.EmojiImpossible, "Failed to prepare the request to %s: %v", what, err)
		return false
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Cache-Control", "no-cache")
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		ppfmt.Noticef(pp.EmojiError, "Failed to %s: %v", what, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ppfmt.Noticef(pp.EmojiError, "Failed to %s: GitHub responded with %s", what, resp.Status)
		hintRateLimit(ppfmt, resp)
		return false
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, maxReadLength)).Decode(v); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to parse the response to %s: %v", what, err)
		return false
	}

	return true
}

// ListDirectory lists a directory through the contents API.
// A response that is not an array (for example, a single file) is a failure.
func (h GitHubHandle) ListDirectory(ctx context.Context, ppfmt pp.PP, path string) ([]Entry, bool) {
	what := fmt.Sprintf("list %s", path)

	var entries []Entry
	if !h.get(ctx, ppfmt, what, "/contents/"+path, nil, &entries) {
		return nil, false
	}
	// A JSON null decodes without error into a nil slice.
	if entries == nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to parse the response to %s: %s", what, "not an array")
		return nil, false
	}
	return entries, true
}

// GetFile fetches a file through the contents API.
func (h GitHubHandle) GetFile(ctx context.Context, ppfmt pp.PP, path string) (File, bool) {
	var file File
	if !h.get(ctx, ppfmt, fmt.Sprintf("fetch %s", path), "/contents/"+path, nil, &file) {
		return File{}, false //nolint:exhaustruct
	}
	return file, true
}
