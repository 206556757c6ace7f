// Package record decodes the registration file of a subdomain.
package record

import (
	"time"
)

// Type is a DNS record type.
type Type string

// Record types accepted by the registration repository.
// Unknown types found in a file are kept verbatim.
const (
	TypeA     Type = "A"
	TypeAAAA  Type = "AAAA"
	TypeCNAME Type = "CNAME"
	TypeTXT   Type = "TXT"
	TypeMX    Type = "MX"
	TypeNS    Type = "NS"
	TypeSRV   Type = "SRV"
	TypeCAA   Type = "CAA"
)

// IsKnown checks whether t is one of the types the repository accepts.
func (t Type) IsKnown() bool {
	switch t {
	case TypeA, TypeAAAA, TypeCNAME, TypeTXT, TypeMX, TypeNS, TypeSRV, TypeCAA:
		return true
	default:
		return false
	}
}

const (
	// Apex is the record name used when a file omits it.
	Apex = "@"
	// DefaultTTL is the TTL used when a file omits it.
	DefaultTTL = 3600
)

// Owner is whoever registered the subdomain. Every field is optional.
type Owner struct {
	Name   string
	Email  string
	GitHub string
}

// Entry is one DNS record of a registration.
type Entry struct {
	Type    Type
	Name    string
	Content string
	TTL     int
	Proxied bool
}

// Creator is the author of the first revision of a registration file.
type Creator struct {
	Name   string
	Date   time.Time
	GitHub string
}

// History is what the revision history tells about a registration file.
type History struct {
	LastModified     time.Time
	RegistrationDate time.Time
	Creator          Creator
}

// Record is a decoded registration file together with the derived fields.
// Absent fields stay at their zero values; Owner is nil when the file has none.
type Record struct {
	Owner       *Owner
	Description string
	Entries     []Entry // nil when the file has no "records" array

	RecordCount int // every item of "records", including the ones that are not records
	RecordTypes []Type

	LastModified     time.Time
	RegistrationDate time.Time
	Creator          *Creator
}

// HasEntries tells whether the file listed DNS records at all.
func (r *Record) HasEntries() bool {
	return r.Entries != nil
}

// ApplyHistory copies the revision history into the record.
func (r *Record) ApplyHistory(h History) {
	r.LastModified = h.LastModified
	r.RegistrationDate = h.RegistrationDate
	creator := h.Creator
	r.Creator = &creator
}
