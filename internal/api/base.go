// Package api talks to the code-hosting service holding the registration files.
package api

import (
	"context"
	"time"

	"github.com/libredomains/checker/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks . Handle

// EntryType is the kind of an item in a directory listing.
type EntryType string

// Kinds of directory entries reported by the contents API.
const (
	EntryFile      EntryType = "file"
	EntryDir       EntryType = "dir"
	EntrySymlink   EntryType = "symlink"
	EntrySubmodule EntryType = "submodule"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	SHA  string    `json:"sha"`
	Size int64     `json:"size"`
	Type EntryType `json:"type"`
}

// File is a single file returned by the contents API.
// Content is still in its transport encoding (see Encoding).
type File struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	SHA      string    `json:"sha"`
	Size     int64     `json:"size"`
	Type     EntryType `json:"type"`
	Encoding string    `json:"encoding"`
	Content  string    `json:"content"`
	HTMLURL  string    `json:"html_url"`
}

// Signature is the author or committer recorded in a commit.
type Signature struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// CommitDetail is the git-level part of a commit.
type CommitDetail struct {
	Author  Signature `json:"author"`
	Message string    `json:"message"`
}

// Account is the hosting-service account linked to a commit, if any.
type Account struct {
	Login string `json:"login"`
}

// Commit is one entry of a revision history, newest first.
type Commit struct {
	SHA    string       `json:"sha"`
	Commit CommitDetail `json:"commit"`
	Author *Account     `json:"author"`
}

// A Handle reads the repository. All methods report their problems
// through the pretty printer and return false on failure.
type Handle interface {
	// ListDirectory lists the entries of a directory.
	ListDirectory(ctx context.Context, ppfmt pp.PP, path string) ([]Entry, bool)

	// GetFile fetches a single file.
	GetFile(ctx context.Context, ppfmt pp.PP, path string) (File, bool)

	// ListCommits fetches up to perPage commits touching the path, newest first.
	ListCommits(ctx context.Context, ppfmt pp.PP, path string, perPage int) ([]Commit, bool)
}
