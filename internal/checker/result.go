package checker

import (
	"fmt"

	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/zone"
)

// Kind is the outcome of a check.
type Kind int

// The possible outcomes.
const (
	KindAvailable Kind = iota
	KindUnavailable
	KindReserved
	KindZonePaused
	KindError
)

// String gives the name of the outcome.
func (k Kind) String() string {
	switch k {
	case KindAvailable:
		return "available"
	case KindUnavailable:
		return "unavailable"
	case KindReserved:
		return "reserved"
	case KindZonePaused:
		return "paused"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the terminal state reached with this outcome.
func (k Kind) State() State {
	switch k {
	case KindAvailable:
		return StateAvailable
	case KindUnavailable:
		return StateUnavailable
	case KindReserved:
		return StateReserved
	case KindZonePaused:
		return StatePaused
	default:
		return StateError
	}
}

// Messages shown to the user.
const (
	HintZonePaused = "所选域名暂停开放申请"
	MessageError   = "检测过程中出现错误，但域名可能仍然可用"
)

// Result is the outcome of one check. Detail is only set for
// [KindUnavailable], and even then may be nil.
type Result struct {
	Kind    Kind
	Zone    zone.Zone
	Name    string
	Title   string
	Message string
	Detail  *record.Record
}

// FQDN is the full domain that was checked.
func (r Result) FQDN() string { return r.Zone.FQDN(r.Name) }

func newResult(kind Kind, z zone.Zone, name string, detail *record.Record) Result {
	r := Result{Kind: kind, Zone: z, Name: name, Title: "", Message: "", Detail: nil}
	switch kind {
	case KindAvailable:
		r.Title = "域名可用！"
		r.Message = fmt.Sprintf("%q 可以申请", r.FQDN())
	case KindUnavailable:
		r.Title = "域名不可用"
		r.Message = fmt.Sprintf("%q 已被其他用户注册", r.FQDN())
		r.Detail = detail
	case KindReserved:
		r.Title = "域名不可用"
		r.Message = fmt.Sprintf("%q 是系统保留域名，无法申请", name)
	case KindZonePaused:
		r.Title = "域名暂停开放"
		r.Message = z.Describe() + " 域名暂时不开放申请"
	case KindError:
		r.Title = "检测失败"
		r.Message = MessageError
	}
	return r
}
