package subdomain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libredomains/checker/internal/subdomain"
)

func TestExplain(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input  string
		reason subdomain.Reason
	}{
		"empty":          {"", subdomain.ReasonEmpty},
		"one":            {"a", subdomain.ReasonTooShort},
		"two":            {"ab", subdomain.ReasonTooShort},
		"two-hyphen":     {"-a", subdomain.ReasonTooShort},
		"three":          {"abc", subdomain.ReasonNone},
		"dash-inside":    {"te-st", subdomain.ReasonNone},
		"digits":         {"123", subdomain.ReasonNone},
		"max":            {strings.Repeat("a", 63), subdomain.ReasonNone},
		"too-long":       {strings.Repeat("a", 64), subdomain.ReasonTooLong},
		"too-long-upper": {strings.Repeat("A", 64), subdomain.ReasonTooLong},
		"leading":        {"-abc", subdomain.ReasonHyphenEdge},
		"trailing":       {"abc-", subdomain.ReasonHyphenEdge},
		"leading-upper":  {"-ABC", subdomain.ReasonHyphenEdge},
		"upper":          {"ABC", subdomain.ReasonInvalidChar},
		"underscore":     {"a_b", subdomain.ReasonInvalidChar},
		"dot":            {"a.b", subdomain.ReasonInvalidChar},
		"space":          {"a b", subdomain.ReasonInvalidChar},
		"unicode":        {"中文域", subdomain.ReasonInvalidChar},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.reason, subdomain.Explain(tc.input))
			require.Equal(t, tc.reason == subdomain.ReasonNone, subdomain.Validate(tc.input))
		})
	}
}

func TestReasonMessage(t *testing.T) {
	t.Parallel()

	for reason, msg := range map[subdomain.Reason]string{
		subdomain.ReasonNone:        "",
		subdomain.ReasonEmpty:       "子域名不能为空",
		subdomain.ReasonTooShort:    "子域名长度至少3个字符",
		subdomain.ReasonTooLong:     "子域名长度不能超过63个字符",
		subdomain.ReasonHyphenEdge:  "子域名不能以连字符开头或结尾",
		subdomain.ReasonInvalidChar: "只能包含小写字母、数字和连字符",
		subdomain.Reason(42):        "无效的子域名格式",
	} {
		require.Equal(t, msg, reason.Message())
	}
}

func TestValidateAllLabelChars(t *testing.T) {
	t.Parallel()

	for b := 0; b < 256; b++ {
		s := "a" + string([]byte{byte(b)}) + "a"
		require.Equal(t, subdomain.IsLabelChar(byte(b)), subdomain.Validate(s), "byte %d", b)
	}
}

func TestIsLabel(t *testing.T) {
	t.Parallel()

	require.False(t, subdomain.IsLabel(""))
	require.True(t, subdomain.IsLabel("-"))
	require.True(t, subdomain.IsLabel("foo-bar9"))
	require.False(t, subdomain.IsLabel("Foo"))
	require.False(t, subdomain.IsLabel("foo.json"))
}

func TestIsReserved(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"www", "api", "admin", "mail", "@", "assets"} {
		require.True(t, subdomain.IsReserved(name), name)
	}
	for _, name := range []string{"myuniquename123", "WWW", "te-st", ""} {
		require.False(t, subdomain.IsReserved(name), name)
	}
	require.Len(t, subdomain.Reserved(), 28)
}
