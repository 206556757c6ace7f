// Package signal handles SIGINT and SIGTERM for the command-line front end.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libredomains/checker/internal/pp"
)

// Handle encapsulates a channel for masked signals.
type Handle struct {
	channel chan os.Signal
}

// Signals contains the signals to mask and catch.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Setup masks signals in [Signals] and return the handle.
func Setup() Handle {
	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	return Handle{channel: chanSignal}
}

// NotifyContext gives a copy of the context that will be canceled by signals in [Signals].
func NotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, Signals...)
}

// TearDown undoes what Setup does.
func (h Handle) TearDown() {
	signal.Stop(h.channel)
}

// SleepUntil waits until the target time. It returns false if it is
// interrupted by signals in [Signals] or by the context.
func (h Handle) SleepUntil(ctx context.Context, ppfmt pp.PP, target time.Time) bool {
	timer := time.NewTimer(time.Until(target))
	defer timer.Stop()

	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
		return false
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// Wait blocks until a signal in [Signals] arrives or the context is done.
func (h Handle) Wait(ctx context.Context, ppfmt pp.PP) {
	select {
	case sig := <-h.channel:
		ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
	case <-ctx.Done():
	}
}
