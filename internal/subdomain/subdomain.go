// Package subdomain checks the syntax of requested subdomain labels
// and knows which labels can never be registered.
package subdomain

const (
	// MinLength is the minimum length of a subdomain label in bytes.
	MinLength = 3
	// MaxLength is the maximum length of a subdomain label in bytes.
	MaxLength = 63
)

// Reason tells which rule a subdomain label violates.
type Reason int

// The rules, in the order they are checked.
const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonTooShort
	ReasonTooLong
	ReasonHyphenEdge
	ReasonInvalidChar
)

// Message returns the hint shown next to the input box.
func (r Reason) Message() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonEmpty:
		return "子域名不能为空"
	case ReasonTooShort:
		return "子域名长度至少3个字符"
	case ReasonTooLong:
		return "子域名长度不能超过63个字符"
	case ReasonHyphenEdge:
		return "子域名不能以连字符开头或结尾"
	case ReasonInvalidChar:
		return "只能包含小写字母、数字和连字符"
	default:
		return "无效的子域名格式"
	}
}

// String describes the reason for logging.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "valid"
	case ReasonEmpty:
		return "empty"
	case ReasonTooShort:
		return "too short"
	case ReasonTooLong:
		return "too long"
	case ReasonHyphenEdge:
		return "leading or trailing hyphen"
	case ReasonInvalidChar:
		return "invalid character"
	default:
		return "unknown"
	}
}

// IsLabelChar checks whether b may appear in a subdomain label.
func IsLabelChar(b byte) bool {
	return ('a' <= b && b <= 'z') || ('0' <= b && b <= '9') || b == '-'
}

// IsLabel checks whether s is non-empty and consists only of label characters.
// Registration file names in the repository are filtered with this.
func IsLabel(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsLabelChar(s[i]) {
			return false
		}
	}
	return true
}

// Explain returns the first rule the candidate violates, or [ReasonNone].
func Explain(candidate string) Reason {
	switch {
	case candidate == "":
		return ReasonEmpty
	case len(candidate) < MinLength:
		return ReasonTooShort
	case len(candidate) > MaxLength:
		return ReasonTooLong
	case candidate[0] == '-' || candidate[len(candidate)-1] == '-':
		return ReasonHyphenEdge
	case !IsLabel(candidate):
		return ReasonInvalidChar
	default:
		return ReasonNone
	}
}

// Validate checks whether the candidate can be requested at all.
func Validate(candidate string) bool {
	return Explain(candidate) == ReasonNone
}
