package config

import (
	"fmt"
	"time"

	"github.com/libredomains/checker/internal/cron"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/zone"
)

const itemTitleWidth = 24

func describeZoneList(zones []zone.Zone, enabled bool) string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		if z.Enabled == enabled {
			names = append(names, z.Describe())
		}
	}
	return pp.Join(names)
}

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, "%s", title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Repository:")
	item("API:", "%s", c.Auth.BaseURL)
	item("Repository:", "%s", c.Auth.Describe())
	item("User agent:", "%s", c.Auth.UserAgent)

	section("Zones:")
	item("Open zones:", "%s", describeZoneList(c.Zones, true))
	item("Paused zones:", "%s", describeZoneList(c.Zones, false))
	if c.Initial.Name != "" {
		item("Initial zone:", "%s", c.Initial.Describe())
	}

	section("Scheduling:")
	item("Timezone:", "%s", cron.DescribeLocation(time.Local))
	item("Refresh frequency:", "%s", cron.DescribeSchedule(c.RefreshCron))
	item("Settle delay:", "%v", c.SettleDelay)

	section("Requests:")
	item("Timeout:", "%v", c.Auth.Timeout)
	if c.Auth.RateLimit == 0 {
		item("Rate limit:", "unlimited")
	} else {
		item("Rate limit:", "%d per minute", c.Auth.RateLimit)
	}
	item("History size:", "%d commits", c.HistorySize)

	section("Output:")
	item("Show all records?", "%t", c.ShowAllRecords)
}
