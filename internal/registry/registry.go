// Package registry keeps the sets of registered subdomains of every zone.
package registry

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jellydator/ttlcache/v3"

	"github.com/libredomains/checker/internal/api"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/subdomain"
	"github.com/libredomains/checker/internal/zone"
)

// ExampleFile is the template file every zone directory carries.
const ExampleFile = "example.json"

// names is the set of registered subdomains of one zone.
type names = map[string]struct{}

// Registry remembers which subdomains are registered, zone by zone.
// A zone that was never loaded has no set at all.
type Registry struct {
	handle api.Handle
	zones  *zone.Set
	sets   *ttlcache.Cache[string, names] // zone names to registered subdomains

	mu         sync.Mutex
	everLoaded bool
	degraded   bool
}

// New creates an empty registry for the configured zones.
func New(handle api.Handle, zones *zone.Set) *Registry {
	// Sets live until they are replaced by the next successful listing.
	sets := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, names](),
		ttlcache.WithTTL[string, names](ttlcache.NoTTL),
	)

	return &Registry{
		handle:     handle,
		zones:      zones,
		sets:       sets,
		mu:         sync.Mutex{},
		everLoaded: false,
		degraded:   false,
	}
}

// Zones returns the configured zones.
func (r *Registry) Zones() *zone.Set { return r.zones }

// stem returns the subdomain a directory entry registers, if any.
func stem(e api.Entry) (string, bool) {
	if e.Type != api.EntryFile || e.Name == ExampleFile {
		return "", false
	}
	name, ok := strings.CutSuffix(e.Name, ".json")
	if !ok || !subdomain.IsLabel(name) {
		return "", false
	}
	return name, true
}

func (r *Registry) load(ctx context.Context, ppfmt pp.PP, z zone.Zone) bool {
	entries, ok := r.handle.ListDirectory(ctx, ppfmt, z.Dir())
	if !ok {
		ppfmt.Noticef(pp.EmojiError, "Keeping the previous list of registered subdomains of %s", z.Describe())
		return false
	}

	set := names{}
	for _, e := range entries {
		if name, ok := stem(e); ok {
			set[name] = struct{}{}
		}
	}
	r.sets.Set(z.Name, set, ttlcache.DefaultTTL)
	ppfmt.Infof(pp.EmojiRegistry, "Loaded %d registered subdomains of %s", len(set), z.Describe())
	return true
}

// Refresh reloads the given zones, or all configured zones when none is given.
// A zone that fails to load keeps its previous set. When no zone has ever
// been loaded, the built-in fallback data is installed instead.
// It reports whether every zone was loaded.
func (r *Registry) Refresh(ctx context.Context, ppfmt pp.PP, zones ...zone.Zone) bool {
	if len(zones) == 0 {
		zones = r.zones.All()
	}

	allOK := true
	anyOK := false
	for _, z := range zones {
		if r.load(ctx, ppfmt, z) {
			anyOK = true
		} else {
			allOK = false
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if anyOK {
		r.everLoaded = true
		r.degraded = false
		return allOK
	}

	if !r.everLoaded {
		r.installFallback(ppfmt)
	}
	return allOK
}

// installFallback must be called with the lock held.
func (r *Registry) installFallback(ppfmt pp.PP) {
	installed := 0
	for _, z := range r.zones.All() {
		fallback, ok := fallbackData[z.Name]
		if !ok {
			continue
		}
		set := make(names, len(fallback))
		for _, name := range fallback {
			set[name] = struct{}{}
		}
		r.sets.Set(z.Name, set, ttlcache.DefaultTTL)
		installed += len(set)
	}

	if !r.degraded {
		ppfmt.Noticef(pp.EmojiFallback, "Using the built-in list of %d registered subdomains", installed)
		ppfmt.Hintf(pp.HintFallbackData,
			"The built-in list is tiny and likely outdated; most registered subdomains will look available")
	}
	r.degraded = true
}

// Contains checks whether the name is registered in the zone.
// A zone that was never loaded contains nothing.
func (r *Registry) Contains(zoneName, name string) bool {
	item := r.sets.Get(zoneName)
	if item == nil {
		return false
	}
	_, ok := item.Value()[name]
	return ok
}

// Loaded checks whether the zone has a set, either listed or from the fallback data.
func (r *Registry) Loaded(zoneName string) bool {
	return r.sets.Has(zoneName)
}

// Count is the number of registered subdomains of the zone.
func (r *Registry) Count(zoneName string) int {
	item := r.sets.Get(zoneName)
	if item == nil {
		return 0
	}
	return len(item.Value())
}

// CountAll is the number of registered subdomains across all loaded zones.
func (r *Registry) CountAll() int {
	total := 0
	r.sets.Range(func(item *ttlcache.Item[string, names]) bool {
		total += len(item.Value())
		return true
	})
	return total
}

// Recent returns the first n registered subdomains of the zone in sorted order.
func (r *Registry) Recent(zoneName string, n int) []string {
	item := r.sets.Get(zoneName)
	if item == nil || n <= 0 {
		return nil
	}

	sorted := make([]string, 0, len(item.Value()))
	for name := range item.Value() {
		sorted = append(sorted, name)
	}
	slices.Sort(sorted)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Degraded tells whether the registry is running on the fallback data.
func (r *Registry) Degraded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.degraded
}
