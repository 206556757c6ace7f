package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotObject means the file is valid JSON but not an object.
var ErrNotObject = errors.New("the registration file is not a JSON object")

// object is a JSON object whose fields are looked up one by one;
// files are edited by hand and any field may be missing or of the wrong kind.
type object map[string]json.RawMessage

func kindOf(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func parseObject(raw json.RawMessage) (object, bool) {
	if kindOf(raw) != '{' {
		return nil, false
	}
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, false
	}
	return o, true
}

func (o object) getString(key string) (string, bool) {
	raw, ok := o[key]
	if !ok || kindOf(raw) != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// getInt accepts both numbers and numeric strings.
func (o object) getInt(key string) (int, bool) {
	raw, ok := o[key]
	if !ok {
		return 0, false
	}
	if s, ok := o.getString(key); ok {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		return i, err == nil
	}
	var i int
	if err := json.Unmarshal(raw, &i); err != nil {
		return 0, false
	}
	return i, true
}

func (o object) getBool(key string) (bool, bool) {
	raw, ok := o[key]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// NormalizeGitHub strips the leading "@" people like to put before handles.
func NormalizeGitHub(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// parseOwner accepts both a bare name and a full owner object.
func parseOwner(raw json.RawMessage) *Owner {
	if kindOf(raw) == '"' {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil
		}
		return &Owner{Name: name, Email: "", GitHub: ""}
	}

	o, ok := parseObject(raw)
	if !ok {
		return nil
	}
	name, _ := o.getString("name")
	email, _ := o.getString("email")
	github, _ := o.getString("github")
	return &Owner{Name: name, Email: email, GitHub: NormalizeGitHub(github)}
}

func parseEntry(raw json.RawMessage) (Entry, bool) {
	o, ok := parseObject(raw)
	if !ok {
		return Entry{}, false //nolint:exhaustruct
	}

	typ, _ := o.getString("type")
	content, _ := o.getString("content")
	proxied, _ := o.getBool("proxied")

	name, ok := o.getString("name")
	if !ok || name == "" {
		name = Apex
	}
	ttl, ok := o.getInt("ttl")
	if !ok {
		ttl = DefaultTTL
	}

	return Entry{
		Type:    Type(strings.ToUpper(strings.TrimSpace(typ))),
		Name:    name,
		Content: content,
		TTL:     ttl,
		Proxied: proxied,
	}, true
}

// parseEntries also gives the number of items in the array, including the
// ones that are not records.
func parseEntries(raw json.RawMessage) ([]Entry, int) {
	if kindOf(raw) != '[' {
		return nil, 0
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, 0
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		if e, ok := parseEntry(item); ok {
			entries = append(entries, e)
		}
	}
	return entries, len(items)
}

// DistinctTypes lists the record types in order of first appearance.
func DistinctTypes(entries []Entry) []Type {
	seen := make(map[Type]bool, len(entries))
	types := make([]Type, 0, len(entries))
	for _, e := range entries {
		if !seen[e.Type] {
			seen[e.Type] = true
			types = append(types, e.Type)
		}
	}
	return types
}

// Parse reads a registration file and fills in the derived fields.
func Parse(text string) (*Record, error) {
	raw := json.RawMessage(strings.TrimPrefix(text, "\ufeff"))
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}

	o, ok := parseObject(raw)
	if !ok {
		return nil, ErrNotObject
	}

	description, _ := o.getString("description")
	entries, count := parseEntries(o["records"])
	r := &Record{ //nolint:exhaustruct
		Owner:       parseOwner(o["owner"]),
		Description: description,
		Entries:     entries,
	}
	if entries != nil {
		r.RecordCount = count
		r.RecordTypes = DistinctTypes(entries)
	}
	return r, nil
}
