// Package checker drives a subdomain availability check from input to result.
package checker

import (
	"context"

	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/registry"
	"github.com/libredomains/checker/internal/zone"
)

//go:generate mockgen -destination=../mocks/mock_checker.go -package=mocks . View,Registry,Fetcher

// A View shows the state of the checker to the user.
// Its methods are never called with the controller lock held.
type View interface {
	// SetSubmitEnabled turns the submit action on or off.
	SetSubmitEnabled(enabled bool)

	// SetBusy shows or hides the busy indicator.
	SetBusy(busy bool)

	// ShowHint shows an inline hint under the input; the empty string hides it.
	ShowHint(hint string)

	// ShowResult displays the outcome of a check.
	ShowResult(result Result)

	// ClearResult removes the displayed outcome.
	ClearResult()

	// ShowStats displays the registry counters of the selected zone.
	ShowStats(stats registry.Stats)
}

// A Registry knows which subdomains are taken.
type Registry interface {
	// Refresh reloads the given zones, or all zones when none is given.
	Refresh(ctx context.Context, ppfmt pp.PP, zones ...zone.Zone) bool

	// Loaded checks whether the zone has been loaded.
	Loaded(zoneName string) bool

	// Contains checks whether the subdomain is registered in the zone.
	Contains(zoneName, name string) bool

	// Stats summarizes the registry for the zone.
	Stats(zoneName string) registry.Stats
}

// A Fetcher looks up the details of a registered subdomain.
type Fetcher interface {
	// Lookup returns the registration file with its history, or nil.
	Lookup(ctx context.Context, ppfmt pp.PP, z zone.Zone, name string) *record.Record
}
