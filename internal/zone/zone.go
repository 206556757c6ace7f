// Package zone describes the parent domains under which subdomains are handed out.
package zone

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

//nolint:gochecknoglobals
var (
	profileDroppingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(true),
	)
	profileKeepingLeadingDots = idna.New(
		idna.MapForLookup(),
		idna.BidiRule(),
		idna.Transitional(false),
		idna.RemoveLeadingDots(false),
	)
)

// safelyToUnicode takes an ASCII form and returns the Unicode form
// when the round trip gives the same ASCII form back without errors.
// Otherwise, the input ASCII form is returned.
func safelyToUnicode(ascii string) string {
	unicode, errToU := profileKeepingLeadingDots.ToUnicode(ascii)
	roundTrip, errToA := profileKeepingLeadingDots.ToASCII(unicode)
	if errToU != nil || errToA != nil || roundTrip != ascii {
		return ascii
	}

	return unicode
}

// ErrNotFQDN means a zone name is not fully qualified.
var ErrNotFQDN = errors.New("not fully qualified")

// Normalize converts a zone name to its ASCII form without the final dot.
func Normalize(name string) (string, error) {
	normalized, err := profileDroppingLeadingDots.ToASCII(strings.TrimSpace(name))

	// Remove the final dot for consistency
	normalized = strings.TrimRight(normalized, ".")

	if err != nil {
		return normalized, err
	}
	if strings.IndexByte(normalized, '.') == -1 {
		return normalized, ErrNotFQDN
	}
	return normalized, nil
}

// Zone is a parent domain together with its registration status.
type Zone struct {
	Name    string // ASCII form, no final dot
	Enabled bool   // whether new registrations are accepted
	Path    string // directory under "domains/" holding the registration files
}

// New normalizes the name and fills in the default path.
func New(name string, enabled bool, path string) (Zone, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return Zone{}, fmt.Errorf("%q: %w", name, err) //nolint:exhaustruct
	}

	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		path = normalized
	}

	return Zone{Name: normalized, Enabled: enabled, Path: path}, nil
}

// Describe gives the most readable form of the zone name.
func (z Zone) Describe() string { return safelyToUnicode(z.Name) }

// Dir is the repository directory holding the registration files of the zone.
func (z Zone) Dir() string { return "domains/" + z.Path }

// FilePath is the repository path of the registration file of a subdomain.
func (z Zone) FilePath(name string) string { return z.Dir() + "/" + name + ".json" }

// FQDN joins a subdomain with the zone.
func (z Zone) FQDN(name string) string { return name + "." + z.Name }
