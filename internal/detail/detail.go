// Package detail fetches what the repository knows about a registered subdomain.
package detail

import (
	"context"
	"errors"

	"github.com/libredomains/checker/internal/api"
	"github.com/libredomains/checker/internal/pp"
	"github.com/libredomains/checker/internal/record"
	"github.com/libredomains/checker/internal/zone"
)

// DefaultHistorySize is how many commits are requested for the history.
const DefaultHistorySize = 100

// Fetcher reads registration files and their revision history.
// Nothing is cached.
type Fetcher struct {
	handle      api.Handle
	historySize int
}

// New creates a fetcher. A non-positive history size means [DefaultHistorySize].
func New(handle api.Handle, historySize int) *Fetcher {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Fetcher{handle: handle, historySize: historySize}
}

// FetchRecord downloads and decodes the registration file of name.
// It returns nil if anything goes wrong.
func (f *Fetcher) FetchRecord(ctx context.Context, ppfmt pp.PP, z zone.Zone, name string) *record.Record {
	path := z.FilePath(name)

	file, ok := f.handle.GetFile(ctx, ppfmt, path)
	if !ok {
		return nil
	}

	text, strategy, err := record.DecodeContent(file.Encoding, file.Content)
	if err != nil {
		ppfmt.Noticef(pp.EmojiError, "Failed to decode %s: %v", path, err)
		return nil
	}
	switch strategy {
	case "utf-8", "none":
	default:
		ppfmt.Infof(pp.EmojiRecord, "Decoded %s using the %s strategy", path, strategy)
		ppfmt.Hintf(pp.HintDecodeFallback,
			"Some registration files are not plain UTF-8; non-ASCII text in them may look garbled")
	}

	r, err := record.Parse(text)
	switch {
	case errors.Is(err, record.ErrNotObject):
		ppfmt.Noticef(pp.EmojiError, "The content of %s is not a JSON object", path)
		return nil
	case err != nil:
		ppfmt.Noticef(pp.EmojiError, "Failed to parse %s: %v", path, err)
		return nil
	}

	ppfmt.Infof(pp.EmojiRecord, "Fetched %s with %d DNS records", path, r.RecordCount)
	return r
}

// FetchHistory reads the commits touching the registration file of name.
// The newest commit dates the last modification; the oldest one dates the
// registration and names its creator.
func (f *Fetcher) FetchHistory(ctx context.Context, ppfmt pp.PP, z zone.Zone, name string) (record.History, bool) {
	path := z.FilePath(name)

	commits, ok := f.handle.ListCommits(ctx, ppfmt, path, f.historySize)
	if !ok {
		return record.History{}, false //nolint:exhaustruct
	}
	if len(commits) == 0 {
		ppfmt.Infof(pp.EmojiHistory, "No history was found for %s", path)
		return record.History{}, false //nolint:exhaustruct
	}

	newest, oldest := commits[0], commits[len(commits)-1]

	creator := record.Creator{
		Name:   oldest.Commit.Author.Name,
		Date:   oldest.Commit.Author.Date,
		GitHub: "",
	}
	if oldest.Author != nil {
		creator.GitHub = oldest.Author.Login
	}

	return record.History{
		LastModified:     newest.Commit.Author.Date,
		RegistrationDate: oldest.Commit.Author.Date,
		Creator:          creator,
	}, true
}

// Lookup fetches the registration file and, if that worked, its history.
func (f *Fetcher) Lookup(ctx context.Context, ppfmt pp.PP, z zone.Zone, name string) *record.Record {
	r := f.FetchRecord(ctx, ppfmt, z, name)
	if r == nil {
		return nil
	}

	if h, ok := f.FetchHistory(ctx, ppfmt, z, name); ok {
		r.ApplyHistory(h)
	}
	return r
}
