// Package main is the entry point of the LibreDomains subdomain checker.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/config"
	"github.com/libredomains/checker/internal/detail"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/registry"
	"github.com/libredomains/checker/internal/render"
	"github.com/libredomains/checker/internal/signal"
)

// Version is the version of the checker that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "LibreDomains Checker"
	}
	return fmt.Sprintf("LibreDomains Checker (%s)", Version)
}

// sleepThenRun keeps a command-line session strictly sequential: the next
// query is read only after the previous result has settled.
func sleepThenRun(d time.Duration, f func()) {
	time.Sleep(d)
	f()
}

func initConfig(ppfmt pp.PP, out io.Writer) (*config.Config, *checker.Controller, bool) {
	c := config.Default()

	// Read the config
	if !c.ReadEnv(ppfmt) || !c.Normalize(ppfmt) {
		return c, nil, false
	}

	// Print the config
	c.Print(ppfmt)

	// Get the handle
	h, ok := c.Auth.New(ppfmt)
	if !ok {
		return c, nil, false
	}

	view := render.NewTerminal(out, render.Options{
		Owner:          c.Auth.Owner,
		Repo:           c.Auth.Repo,
		ShowAllRecords: c.ShowAllRecords,
		Emoji:          c.Emoji,
		Now:            nil,
		Location:       nil,
	})

	ctrl := checker.New(c.ZoneSet, c.Initial,
		registry.New(h, c.ZoneSet),
		detail.New(h, c.HistorySize),
		view,
		checker.Options{SettleDelay: c.SettleDelay, AfterFunc: sleepThenRun},
	)

	return c, ctrl, true
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt, ok := config.SetupPP(os.Stderr)
	if !ok {
		pp.New(os.Stderr).Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the checker
	ppfmt.Noticef(pp.EmojiStar, "%s", formatName())

	// Catch signals SIGINT and SIGTERM
	sig := signal.Setup()
	defer sig.TearDown()

	ctx, cancel := signal.NotifyContext(context.Background())
	defer cancel()

	// Read the config and build the controller
	c, ctrl, ok := initConfig(ppfmt, os.Stdout)
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	ctrl.Start(ctx, ppfmt)

	// One-shot mode: check the names given on the command line
	if args := os.Args[1:]; len(args) > 0 {
		allOk := checkAll(ctx, ppfmt, c.ZoneSet, ctrl, args)
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		if !allOk {
			return 1
		}
		return 0
	}

	// Interactive mode
	if c.RefreshCron != nil {
		go refreshLoop(ctx, ppfmt, sig, c.RefreshCron, ctrl, cancel)
	}
	interact(ctx, ppfmt, c.ZoneSet, ctrl, os.Stdin, os.Stdout)

	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return 0
}
