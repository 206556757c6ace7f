package cron_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/libredomains/checker/internal/cron"
)

func TestMustNewSuccessful(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]string{
		"*/4 * * * *",
		"@every 10m",
		"@every 5h0s",
		"@yearly",
	} {
		t.Run(tc, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc, cron.MustNew(tc).Describe())
			require.Equal(t, tc, cron.DescribeSchedule(cron.MustNew(tc)))
		})
	}
}

func TestMustNewPanicking(t *testing.T) {
	t.Parallel()
	for _, tc := range [...]string{
		"*/4 * * * * *",
		"@every 5ss",
		"@cool",
	} {
		t.Run(tc, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { cron.MustNew(tc) })
		})
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range [...]struct {
		spec     string
		interval time.Duration
	}{
		{"@every 10m", 10 * time.Minute},
		{"@every 4h", time.Hour * 4},
	} {
		t.Run(tc.spec, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, now.Add(tc.interval), cron.Next(cron.MustNew(tc.spec), now))
		})
	}
}

func TestNil(t *testing.T) {
	t.Parallel()

	require.True(t, cron.Next(nil, time.Now()).IsZero())
	require.Equal(t, "@once", cron.DescribeSchedule(nil))
}
