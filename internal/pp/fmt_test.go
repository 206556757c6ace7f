package pp_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libredomains/checker/internal/pp"
)

func TestIsShowing(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		set      pp.Verbosity
		test     pp.Verbosity
		expected bool
	}{
		"info-notice": {pp.Info, pp.Notice, true},
		"notice-info": {pp.Notice, pp.Info, false},
		"quiet":       {pp.Quiet, pp.Notice, true},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			ppfmt := pp.New(&buf).SetVerbosity(tc.set)

			require.Equal(t, tc.expected, ppfmt.IsShowing(tc.test))
		})
	}
}

func TestIndent(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	outer := pp.New(&buf)

	outer.Noticef(pp.EmojiStar, "message1")
	middle := outer.Indent()
	middle.Noticef(pp.EmojiStar, "message2")
	inner := middle.Indent()
	outer.Noticef(pp.EmojiStar, "message3")
	inner.Noticef(pp.EmojiStar, "message4")
	middle.Noticef(pp.EmojiStar, "message5")

	require.Equal(t,
		`🌟 message1
   🌟 message2
🌟 message3
      🌟 message4
   🌟 message5
`,
		buf.String())
}

func TestPrint(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		emoji     bool
		verbosity pp.Verbosity
		expected  string
	}{
		"info":             {true, pp.Info, "🌟 info\n🌟 notice\n"},
		"notice":           {true, pp.Notice, "🌟 notice\n"},
		"info/no-emoji":    {false, pp.Info, "info\nnotice\n"},
		"notice/no-emoji":  {false, pp.Notice, "notice\n"},
		"verbose/no-emoji": {false, pp.Verbose, "info\nnotice\n"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			ppfmt := pp.New(&buf).SetEmoji(tc.emoji).SetVerbosity(tc.verbosity)

			ppfmt.Infof(pp.EmojiStar, "info")
			ppfmt.Noticef(pp.EmojiStar, "notice")

			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestTrailingNewline(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	pp.New(&buf).Noticef(pp.EmojiBullet, "line\n")

	require.Equal(t, "🔸 line\n", buf.String())
}

func TestSuppressHint(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ppfmt := pp.New(&buf).SetEmoji(true).SetVerbosity(pp.Info)

	ppfmt.SuppressHint(pp.Hint(0))
	ppfmt.Hintf(pp.Hint(0), "hello %s", "world")
	ppfmt.Hintf(pp.Hint(1), "hello %s", "galaxy")
	ppfmt.Hintf(pp.Hint(1), "hello %s", "universe")

	require.Equal(t, "💡 hello galaxy\n", buf.String())
}

func TestHintfConcurrent(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ppfmt := pp.New(&buf).SetEmoji(false)

	const workers = 16
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(p pp.PP) {
			defer wg.Done()
			p.Hintf(pp.HintRateLimited, "slow down")
			p.Noticef(pp.EmojiBullet, "worker %d", i)
		}(ppfmt.Indent())
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, workers+1)
	require.Equal(t, 1, strings.Count(buf.String(), "slow down"))
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "   "), line)
	}
}
