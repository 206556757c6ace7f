// Package file reads configuration files through a replaceable filesystem.
package file

import (
	"bytes"

	"github.com/spf13/afero"

	"github.com/libredomains/checker/internal/pp"
)

// FS is the filesystem files are read from.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// ReadString reads the whole file at path with surrounding spaces trimmed.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	body, err := afero.ReadFile(FS, path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	return string(bytes.TrimSpace(body)), true
}
