package registry

// RecentSize is how many names [Registry.Stats] lists.
const RecentSize = 12

// Stats summarizes the registry from the point of view of one zone.
type Stats struct {
	Zone      string
	ZoneCount int
	Total     int
	Recent    []string
	Degraded  bool
}

// Stats collects the counters shown next to the checker.
func (r *Registry) Stats(zoneName string) Stats {
	return Stats{
		Zone:      zoneName,
		ZoneCount: r.Count(zoneName),
		Total:     r.CountAll(),
		Recent:    r.Recent(zoneName, RecentSize),
		Degraded:  r.Degraded(),
	}
}
