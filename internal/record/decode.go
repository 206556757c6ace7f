package record

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrDecode means the transport encoding of a file could not be undone.
var ErrDecode = errors.New("cannot decode the file content")

// A decoder turns the base64 payload of the contents API into text.
type decoder struct {
	name   string
	decode func(payload string) (string, error)
}

// decoders are tried in order; the first success wins.
// The last one never rejects valid base64 but may garble non-ASCII text.
//
//nolint:gochecknoglobals
var decoders = []decoder{
	{"utf-8", decodeUTF8},
	{"percent", decodePercent},
	{"raw", decodeRaw},
}

// stripSpace removes the line breaks the contents API inserts every 60 characters.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		default:
			return r
		}
	}, s)
}

func decodeBase64(payload string) ([]byte, error) {
	payload = stripSpace(payload)
	if b, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

func decodeUTF8(payload string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(stripSpace(payload))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not valid UTF-8")
	}
	return string(b), nil
}

// decodePercent reads every byte as a percent escape and unescapes the whole,
// which accepts unpadded payloads as well.
func decodePercent(payload string) (string, error) {
	b, err := decodeBase64(payload)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(3 * len(b))
	for _, c := range b {
		fmt.Fprintf(&sb, "%%%02X", c)
	}

	s, err := url.PathUnescape(sb.String())
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(s) {
		return "", errors.New("not valid UTF-8 after unescaping")
	}
	return s, nil
}

// decodeRaw maps each byte to the code point of the same value.
func decodeRaw(payload string) (string, error) {
	b, err := decodeBase64(payload)
	if err != nil {
		return "", err
	}

	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes), nil
}

// DecodeContent undoes the transport encoding of a file.
// It also reports which strategy succeeded.
func DecodeContent(encoding, content string) (string, string, error) {
	switch strings.ToLower(encoding) {
	case "", "base64":
	case "none", "utf-8":
		return content, "none", nil
	default:
		return "", "", fmt.Errorf("%w: unknown encoding %q", ErrDecode, encoding)
	}

	var lastErr error
	for _, d := range decoders {
		text, err := d.decode(content)
		if err == nil {
			return text, d.name, nil
		}
		lastErr = err
	}
	return "", "", fmt.Errorf("%w: %w", ErrDecode, lastErr)
}
