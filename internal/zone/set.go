package zone

import (
	"fmt"
)

// Set is an ordered collection of zones, looked up by name.
type Set struct {
	zones []Zone
	index map[string]int
}

// NewSet keeps the zones in the given order. Names must be unique.
func NewSet(zones ...Zone) (*Set, error) {
	s := &Set{zones: make([]Zone, 0, len(zones)), index: make(map[string]int, len(zones))}
	for _, z := range zones {
		if _, dup := s.index[z.Name]; dup {
			return nil, fmt.Errorf("zone %q is listed more than once", z.Describe())
		}
		s.index[z.Name] = len(s.zones)
		s.zones = append(s.zones, z)
	}
	return s, nil
}

// MustNewSet is [NewSet] for zones known to be unique.
func MustNewSet(zones ...Zone) *Set {
	s, err := NewSet(zones...)
	if err != nil {
		panic(err)
	}
	return s
}

// Get finds a zone by name. The name is normalized first.
func (s *Set) Get(name string) (Zone, bool) {
	normalized, err := Normalize(name)
	if err != nil {
		return Zone{}, false //nolint:exhaustruct
	}
	i, ok := s.index[normalized]
	if !ok {
		return Zone{}, false //nolint:exhaustruct
	}
	return s.zones[i], true
}

// All returns the zones in configuration order.
func (s *Set) All() []Zone {
	return append([]Zone(nil), s.zones...)
}

// Names returns the zone names in configuration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.zones))
	for i, z := range s.zones {
		names[i] = z.Name
	}
	return names
}

// Len is the number of zones.
func (s *Set) Len() int { return len(s.zones) }

// First is the first zone, if any.
func (s *Set) First() (Zone, bool) {
	if len(s.zones) == 0 {
		return Zone{}, false //nolint:exhaustruct
	}
	return s.zones[0], true
}
