package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/libredomains/checker/internal/pp"
)

const (
	// DefaultBaseURL is the public REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultOwner owns the registration repository.
	DefaultOwner = "bestzwei"
	// DefaultRepo is the name of the registration repository.
	DefaultRepo = "LibreDomains"
	// DefaultUserAgent identifies this client.
	DefaultUserAgent = "LibreDomains-Checker/1.0"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 10 * time.Second
	// DefaultRateLimit is the number of requests allowed per minute.
	DefaultRateLimit = 60
)

// GitHubAuth holds everything needed to create a [GitHubHandle].
// Requests are never authenticated.
type GitHubAuth struct {
	BaseURL   string
	Owner     string
	Repo      string
	UserAgent string
	Timeout   time.Duration
	RateLimit int // requests per minute; zero means unlimited
}

// Describe gives the "owner/repo" form of the repository.
func (a GitHubAuth) Describe() string {
	return a.Owner + "/" + a.Repo
}

func newLimiter(perMinute int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), max(1, perMinute/6))
}

// neverRetry hands every response, including 5xx ones, back to the caller.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	return false, ctx.Err()
}

// New creates a [GitHubHandle].
func (a GitHubAuth) New(ppfmt pp.PP) (Handle, bool) {
	u, err := url.Parse(a.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The GitHub API URL %q does not look like a valid URL", a.BaseURL)
		return nil, false
	}

	if a.Owner == "" || a.Repo == "" {
		ppfmt.Noticef(pp.EmojiUserError, "The repository owner and name must not be empty")
		return nil, false
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	// The periodic refresh is the only retry.
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return GitHubHandle{
		baseURL:   u,
		owner:     a.Owner,
		repo:      a.Repo,
		userAgent: a.UserAgent,
		timeout:   timeout,
		limiter:   newLimiter(a.RateLimit),
		client:    client,
	}, true
}
