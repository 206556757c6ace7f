package checker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/subdomain"
	"github.com/libredomains/checker/internal/zone"
)

// DefaultSettleDelay is how long a result stays before submission is restored.
const DefaultSettleDelay = 500 * time.Millisecond

// AfterFunc runs f once d has passed.
type AfterFunc func(d time.Duration, f func())

func timeAfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Options tunes a [Controller].
type Options struct {
	SettleDelay time.Duration
	AfterFunc   AfterFunc // nil means [time.AfterFunc]
}

// Controller is the state machine behind the checker form.
// The lock is never held across network access or view calls.
type Controller struct {
	zones    *zone.Set
	registry Registry
	fetcher  Fetcher
	view     View

	settleDelay time.Duration
	afterFunc   AfterFunc

	mu            sync.Mutex
	zone          zone.Zone
	input         string
	state         State
	submitEnabled bool
	busy          bool // from the start of a check until the settle delay passes
	result        *Result
}

// New creates a controller with the initial zone selected.
func New(zones *zone.Set, initial zone.Zone, reg Registry, fetcher Fetcher, view View, opts Options) *Controller {
	afterFunc := opts.AfterFunc
	if afterFunc == nil {
		afterFunc = timeAfterFunc
	}

	return &Controller{
		zones:         zones,
		registry:      reg,
		fetcher:       fetcher,
		view:          view,
		settleDelay:   opts.SettleDelay,
		afterFunc:     afterFunc,
		mu:            sync.Mutex{},
		zone:          initial,
		input:         "",
		state:         StateIdle,
		submitEnabled: initial.Enabled,
		busy:          false,
		result:        nil,
	}
}

// inputStatus decides whether the input can be submitted and which hint to show.
// Empty input hides the hint.
func inputStatus(z zone.Zone, input string) (bool, string) {
	switch {
	case input == "":
		return z.Enabled, ""
	case !z.Enabled:
		return false, HintZonePaused
	}
	if reason := subdomain.Explain(input); reason != subdomain.ReasonNone {
		return false, reason.Message()
	}
	return true, ""
}

// Start shows the initial zone and loads the whole registry.
func (c *Controller) Start(ctx context.Context, ppfmt pp.PP) {
	c.mu.Lock()
	z := c.zone
	enabled := c.submitEnabled
	c.mu.Unlock()

	ppfmt.Infof(pp.EmojiZone, "Checking subdomains of %s", z.Describe())
	c.view.SetSubmitEnabled(enabled)
	c.Refresh(ctx, ppfmt)
}

// Refresh reloads every zone and updates the counters.
func (c *Controller) Refresh(ctx context.Context, ppfmt pp.PP) {
	c.registry.Refresh(ctx, ppfmt)

	c.mu.Lock()
	z := c.zone
	c.mu.Unlock()

	c.view.ShowStats(c.registry.Stats(z.Name))
}

// OnInput handles an edit of the input field. While a check is running or
// settling, only the hint is updated.
func (c *Controller) OnInput(_ pp.PP, value string) {
	c.mu.Lock()
	c.input = strings.ToLower(value)
	enabled, hint := inputStatus(c.zone, c.input)
	busy := c.busy
	if !busy {
		switch {
		case hint != "":
			c.state = StateInvalid
		case c.input != "":
			c.state = StateValidating
		default:
			c.state = StateIdle
		}
		c.submitEnabled = enabled
	}
	c.mu.Unlock()

	c.view.ShowHint(hint)
	if !busy {
		c.view.SetSubmitEnabled(enabled)
	}
}

// OnSubmit checks the current input. It returns false when nothing was
// checked: the input is invalid or another check is still running.
func (c *Controller) OnSubmit(ctx context.Context, ppfmt pp.PP) (Result, bool) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		ppfmt.Infof(pp.EmojiUserWarning, "A check is already running")
		return Result{}, false //nolint:exhaustruct
	}

	name := strings.ToLower(strings.TrimSpace(c.input))
	c.input = name
	z := c.zone

	if reason := subdomain.Explain(name); reason != subdomain.ReasonNone {
		c.state = StateInvalid
		c.submitEnabled = false
		c.mu.Unlock()

		c.view.ShowHint(reason.Message())
		c.view.SetSubmitEnabled(false)
		return Result{}, false //nolint:exhaustruct
	}

	c.busy = true
	c.submitEnabled = false
	if z.Enabled {
		c.state = StateChecking
	}
	c.mu.Unlock()

	var result Result
	if !z.Enabled {
		result = newResult(KindZonePaused, z, name, nil)
	} else {
		c.view.SetSubmitEnabled(false)
		c.view.SetBusy(true)
		result = c.check(ctx, ppfmt, z, name)
		c.view.SetBusy(false)
	}

	c.mu.Lock()
	c.state = result.Kind.State()
	c.result = &result
	c.mu.Unlock()

	c.view.ShowResult(result)
	c.afterFunc(c.settleDelay, c.settle)
	return result, true
}

// check never panics; anything unexpected becomes [KindError].
func (c *Controller) check(ctx context.Context, ppfmt pp.PP, z zone.Zone, name string) (result Result) {
	fqdn := z.FQDN(name)

	defer func() {
		if p := recover(); p != nil {
			ppfmt.Noticef(pp.EmojiImpossible, "Unexpected failure while checking %s: %v", fqdn, p)
			result = newResult(KindError, z, name, nil)
		}
	}()

	ppfmt.Infof(pp.EmojiCheck, "Checking %s", fqdn)

	if err := ctx.Err(); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Stopped checking %s: %v", fqdn, err)
		return newResult(KindError, z, name, nil)
	}

	if subdomain.IsReserved(name) {
		return newResult(KindReserved, z, name, nil)
	}

	if !c.registry.Contains(z.Name, name) {
		return newResult(KindAvailable, z, name, nil)
	}

	detail := c.fetcher.Lookup(ctx, ppfmt, z, name)
	if err := ctx.Err(); err != nil {
		ppfmt.Noticef(pp.EmojiError, "Stopped checking %s: %v", fqdn, err)
		return newResult(KindError, z, name, nil)
	}
	return newResult(KindUnavailable, z, name, detail)
}

// settle restores submission according to the current input and zone.
func (c *Controller) settle() {
	c.mu.Lock()
	enabled, _ := inputStatus(c.zone, c.input)
	c.busy = false
	c.state = StateIdle
	c.submitEnabled = enabled
	c.mu.Unlock()

	c.view.SetSubmitEnabled(enabled)
}

// OnZoneChange selects another zone. It returns false for an unknown zone.
// The registry of a zone that was never loaded is loaded now.
func (c *Controller) OnZoneChange(ctx context.Context, ppfmt pp.PP, name string) bool {
	z, ok := c.zones.Get(name)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "%q is not one of the zones (%s)", name, pp.EnglishJoin(c.zones.Names()))
		return false
	}

	c.mu.Lock()
	c.zone = z
	c.result = nil
	enabled, hint := inputStatus(z, c.input)
	busy := c.busy
	if !busy {
		c.submitEnabled = enabled
	}
	c.mu.Unlock()

	ppfmt.Infof(pp.EmojiZone, "Switched to %s", z.Describe())
	c.view.ClearResult()
	c.view.ShowHint(hint)
	if !busy {
		c.view.SetSubmitEnabled(enabled)
	}

	if !c.registry.Loaded(z.Name) {
		c.registry.Refresh(ctx, ppfmt, z)
	}
	c.view.ShowStats(c.registry.Stats(z.Name))
	return true
}

// Zone is the selected zone.
func (c *Controller) Zone() zone.Zone {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zone
}

// Input is the current, lowercased input.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// State is the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SubmitEnabled tells whether submission is currently allowed.
func (c *Controller) SubmitEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitEnabled
}

// Result is the displayed result, if any.
func (c *Controller) Result() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return Result{}, false //nolint:exhaustruct
	}
	return *c.result, true
}
