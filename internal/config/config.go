// Package config reads and parses configurations.
package config

import (
	"time"

	"github.com/libredomains/checker/internal/api"
	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/cron"
	"github.com/libredomains/checker/internal/detail"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/zone"
)

// Config holds the configuration of the checker.
type Config struct {
	Auth           api.GitHubAuth
	Zones          []zone.Zone
	DefaultZone    string
	RefreshCron    cron.Schedule
	HistorySize    int
	SettleDelay    time.Duration
	ShowAllRecords bool
	Emoji          bool

	// Filled in by [Config.Normalize].
	ZoneSet *zone.Set
	Initial zone.Zone
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Auth: api.GitHubAuth{
			BaseURL:   api.DefaultBaseURL,
			Owner:     api.DefaultOwner,
			Repo:      api.DefaultRepo,
			UserAgent: api.DefaultUserAgent,
			Timeout:   api.DefaultTimeout,
			RateLimit: api.DefaultRateLimit,
		},
		Zones: []zone.Zone{
			{Name: "ciao.su", Enabled: true, Path: "ciao.su"},
			{Name: "ciallo.de", Enabled: false, Path: "ciallo.de"},
		},
		DefaultZone:    "",
		RefreshCron:    cron.MustNew("@every 10m"),
		HistorySize:    detail.DefaultHistorySize,
		SettleDelay:    checker.DefaultSettleDelay,
		ShowAllRecords: false,
		Emoji:          true,
		ZoneSet:        nil,
		Initial:        zone.Zone{}, //nolint:exhaustruct
	}
}

// ReadEnv reads an environment variable and update the Config.
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadString(ppfmt, "GITHUB_API_URL", &c.Auth.BaseURL) ||
		!ReadString(ppfmt, "GITHUB_OWNER", &c.Auth.Owner) ||
		!ReadString(ppfmt, "GITHUB_REPO", &c.Auth.Repo) ||
		!ReadString(ppfmt, "USER_AGENT", &c.Auth.UserAgent) ||
		!ReadNonnegDuration(ppfmt, "REQUEST_TIMEOUT", &c.Auth.Timeout) ||
		!ReadNonnegInt(ppfmt, "RATE_LIMIT", &c.Auth.RateLimit) ||
		!ReadZones(ppfmt, "ZONES", "PAUSED_ZONES", "ZONES_FILE", &c.Zones) ||
		!ReadString(ppfmt, "DEFAULT_ZONE", &c.DefaultZone) ||
		!ReadCron(ppfmt, "REFRESH_CRON", &c.RefreshCron) ||
		!ReadPositiveInt(ppfmt, "HISTORY_PAGE_SIZE", &c.HistorySize) ||
		!ReadNonnegDuration(ppfmt, "SETTLE_DELAY", &c.SettleDelay) ||
		!ReadBool(ppfmt, "SHOW_ALL_RECORDS", &c.ShowAllRecords) ||
		!ReadBool(ppfmt, "EMOJI", &c.Emoji) {
		return false
	}

	return true
}

// Normalize checks the zones and selects the initial one.
func (c *Config) Normalize(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Checking settings . . .")
		ppfmt = ppfmt.Indent()
	}

	set, err := zone.NewSet(c.Zones...)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Invalid zones: %v", err)
		return false
	}

	first, ok := set.First()
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "No zones are configured")
		return false
	}

	initial := first
	if c.DefaultZone != "" {
		initial, ok = set.Get(c.DefaultZone)
		if !ok {
			ppfmt.Noticef(pp.EmojiUserError, "DEFAULT_ZONE (%q) is not one of the zones (%s)",
				c.DefaultZone, pp.EnglishJoin(set.Names()))
			return false
		}
	}

	if !initial.Enabled {
		ppfmt.Noticef(pp.EmojiUserWarning, "The initial zone %s is not open for registration", initial.Describe())
	}

	if c.RefreshCron == nil {
		ppfmt.Infof(pp.EmojiDisabled, "The registry will not be refreshed after start-up")
	}

	c.ZoneSet = set
	c.Initial = initial
	return true
}
