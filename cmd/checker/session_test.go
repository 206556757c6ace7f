package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/mocks"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/registry"
	"github.com/libredomains/checker/internal/render"
	"github.com/libredomains/checker/internal/zone"
)

//nolint:gochecknoglobals
var (
	su    = zone.Zone{Name: "ciao.su", Enabled: true, Path: "ciao.su"}
	de    = zone.Zone{Name: "ciallo.de", Enabled: false, Path: "ciallo.de"}
	zones = zone.MustNewSet(su, de)
)

func settleNow(_ time.Duration, f func()) { f() }

func newSession(t *testing.T, out io.Writer) (*checker.Controller, *mocks.MockRegistry, *mocks.MockFetcher) {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	reg := mocks.NewMockRegistry(mockCtrl)
	fetcher := mocks.NewMockFetcher(mockCtrl)
	view := render.NewTerminal(out, render.Options{
		Owner:          "bestzwei",
		Repo:           "LibreDomains",
		ShowAllRecords: false,
		Emoji:          false,
		Now:            nil,
		Location:       nil,
	})
	ctrl := checker.New(zones, su, reg, fetcher, view, checker.Options{SettleDelay: 0, AfterFunc: settleNow})
	return ctrl, reg, fetcher
}

func TestFormatName(t *testing.T) {
	t.Parallel()
	require.Equal(t, "LibreDomains Checker", formatName())
}

func TestSplitQuery(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		query string
		zone  string
		name  string
	}{
		"bare":       {"blog", "", "blog"},
		"open":       {"blog.ciao.su", "ciao.su", "blog"},
		"paused":     {" Blog.Ciallo.DE ", "ciallo.de", "blog"},
		"zone-only":  {"ciao.su", "", "ciao.su"},
		"other-zone": {"blog.example.org", "", "blog.example.org"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			z, n := splitQuery(zones, tc.query)
			require.Equal(t, tc.zone, z)
			require.Equal(t, tc.name, n)
		})
	}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	ctrl, reg, _ := newSession(t, &out)
	ppfmt := pp.New(io.Discard)

	gomock.InOrder(
		reg.EXPECT().Contains("ciao.su", "te-st").Return(false),
		reg.EXPECT().Loaded("ciallo.de").Return(true),
		reg.EXPECT().Stats("ciallo.de").Return(registry.Stats{Zone: "ciallo.de"}), //nolint:exhaustruct
	)

	require.True(t, checkAll(context.Background(), ppfmt, zones, ctrl, []string{"te-st", "blog.ciallo.de"}))
	require.Equal(t, de, ctrl.Zone())
	require.Contains(t, out.String(), `"te-st.ciao.su" 可以申请`)
	require.Contains(t, out.String(), "ciallo.de 域名暂时不开放申请")

	require.False(t, checkAll(context.Background(), ppfmt, zones, ctrl, []string{"-bad"}))
}

func TestCheckAllCanceled(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newSession(t, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.False(t, checkAll(ctx, pp.New(io.Discard), zones, ctrl, []string{"blog"}))
}

func TestInteract(t *testing.T) {
	t.Parallel()

	var out, log strings.Builder
	ctrl, reg, _ := newSession(t, &out)
	ppfmt := pp.New(&log).SetEmoji(false)

	gomock.InOrder(
		reg.EXPECT().Loaded("ciallo.de").Return(true),
		reg.EXPECT().Stats("ciallo.de").Return(registry.Stats{Zone: "ciallo.de"}), //nolint:exhaustruct
		reg.EXPECT().Refresh(gomock.Any(), gomock.Any()).Return(true),
		reg.EXPECT().Stats("ciallo.de").Return(registry.Stats{Zone: "ciallo.de"}), //nolint:exhaustruct
		reg.EXPECT().Loaded("ciao.su").Return(true),
		reg.EXPECT().Stats("ciao.su").Return(registry.Stats{Zone: "ciao.su"}), //nolint:exhaustruct
		reg.EXPECT().Contains("ciao.su", "te-st").Return(false),
	)

	in := strings.NewReader(strings.Join([]string{
		":zone ciallo.de",
		"blog",
		"",
		":zone nowhere",
		":bogus",
		":refresh",
		"te-st.ciao.su",
		":quit",
		"never-read",
	}, "\n"))
	interact(context.Background(), ppfmt, zones, ctrl, in, &out)

	require.Equal(t, su, ctrl.Zone())
	require.Contains(t, out.String(), ":zone <域名>")
	require.Contains(t, out.String(), "ciallo.de 域名暂时不开放申请")
	require.Contains(t, out.String(), `"te-st.ciao.su" 可以申请`)
	require.NotContains(t, out.String(), "never-read")
	require.Contains(t, log.String(), `"nowhere" is not one of the zones (ciao.su and ciallo.de)`)
	require.Contains(t, log.String(), `Unknown command ":bogus"; try :help`)
}

func TestInteractEndOfInput(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	ctrl, _, _ := newSession(t, &out)

	interact(context.Background(), pp.New(io.Discard), zones, ctrl, strings.NewReader(""), &out)
	require.True(t, strings.HasSuffix(out.String(), prompt+"\n"))
}

func TestInteractCanceled(t *testing.T) {
	t.Parallel()

	ctrl, _, _ := newSession(t, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader, writer := io.Pipe()
	defer writer.Close()

	interact(ctx, pp.New(io.Discard), zones, ctrl, reader, io.Discard)
}
