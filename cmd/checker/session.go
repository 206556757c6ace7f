package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/libredomains/checker/internal/checker"
	"github.com/libredomains/checker/internal/cron"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/signal"
	"github.com/libredomains/checker/internal/zone"
)

const prompt = "> "

// splitQuery separates a query into a zone and a subdomain. A query that does
// not end with any known zone is a bare subdomain of the selected zone.
func splitQuery(zones *zone.Set, query string) (string, string) {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, z := range zones.All() {
		if name, found := strings.CutSuffix(query, "."+z.Name); found && name != "" {
			return z.Name, name
		}
	}
	return "", query
}

// submit checks one query, switching zones first when the query names one.
func submit(ctx context.Context, ppfmt pp.PP, zones *zone.Set, ctrl *checker.Controller, query string) bool {
	zoneName, name := splitQuery(zones, query)
	if zoneName != "" && zoneName != ctrl.Zone().Name {
		if !ctrl.OnZoneChange(ctx, ppfmt, zoneName) {
			return false
		}
	}

	ctrl.OnInput(ppfmt, name)
	result, ok := ctrl.OnSubmit(ctx, ppfmt)
	return ok && result.Kind != checker.KindError
}

// checkAll checks every query in order and tells whether all of them got an answer.
func checkAll(ctx context.Context, ppfmt pp.PP, zones *zone.Set, ctrl *checker.Controller, queries []string) bool {
	allOk := true
	for _, query := range queries {
		if ctx.Err() != nil {
			return false
		}
		if !submit(ctx, ppfmt, zones, ctrl, query) {
			allOk = false
		}
	}
	return allOk
}

func printHelp(out io.Writer, zones *zone.Set) {
	fmt.Fprintf(out, "输入子域名进行检测 (例如 blog 或 blog.%s)\n", zones.Names()[0])
	fmt.Fprintf(out, "  :zone <域名>   切换域名 (%s)\n", strings.Join(zones.Names(), ", "))
	fmt.Fprintln(out, "  :refresh       重新加载已注册的子域名")
	fmt.Fprintln(out, "  :help          显示帮助")
	fmt.Fprintln(out, "  :quit          退出")
}

// readLines forwards lines from in until it is exhausted.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// interact reads queries and commands until the input ends, ":quit" is
// entered, or the context is done.
func interact(ctx context.Context, ppfmt pp.PP, zones *zone.Set, ctrl *checker.Controller, in io.Reader, out io.Writer) {
	printHelp(out, zones)
	lines := readLines(in)

	for {
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			line = strings.TrimSpace(l)
		}

		command, arg, _ := strings.Cut(line, " ")
		switch command {
		case "":
		case ":quit", ":q":
			return
		case ":help", ":h":
			printHelp(out, zones)
		case ":refresh":
			ctrl.Refresh(ctx, ppfmt)
		case ":zone":
			ctrl.OnZoneChange(ctx, ppfmt, strings.TrimSpace(arg))
		default:
			if strings.HasPrefix(command, ":") {
				ppfmt.Noticef(pp.EmojiUserError, "Unknown command %q; try :help", command)
				continue
			}
			submit(ctx, ppfmt, zones, ctrl, line)
		}
	}
}

// refreshLoop reloads the registry on schedule until it is interrupted.
// A caught signal stops the whole session.
func refreshLoop(ctx context.Context, ppfmt pp.PP, sig signal.Handle, sched cron.Schedule,
	ctrl *checker.Controller, stop context.CancelFunc,
) {
	for {
		now := time.Now()
		next := cron.Next(sched, now)
		if next.IsZero() {
			ppfmt.Noticef(pp.EmojiUserWarning, "No scheduled refreshes in near future")
			return
		}

		cron.PrintCountdown(ppfmt, "Refreshing the registered subdomains", now, next)
		if !sig.SleepUntil(ctx, ppfmt, next) {
			stop()
			return
		}

		ctrl.Refresh(ctx, ppfmt)
	}
}
