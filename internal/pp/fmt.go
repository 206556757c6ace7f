package pp

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// shared is the part of a printer kept by all the printers derived from it
// by [PP.SetEmoji], [PP.SetVerbosity] and [PP.Indent]. They may be used from
// different goroutines.
type shared struct {
	mu        sync.Mutex
	hintShown map[Hint]bool
}

type formatter struct {
	writer    io.Writer
	emoji     bool
	indent    int
	shared    *shared
	verbosity Verbosity
}

// New creates a new pretty printer.
func New(writer io.Writer) PP {
	return formatter{
		writer:    writer,
		emoji:     true,
		indent:    0,
		shared:    &shared{mu: sync.Mutex{}, hintShown: map[Hint]bool{}},
		verbosity: DefaultVerbosity,
	}
}

// SetEmoji sets whether emojis should be printed.
func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

// SetVerbosity sets messages of what verbosity levels should be printed.
func (f formatter) SetVerbosity(v Verbosity) PP {
	f.verbosity = v
	return f
}

// IsShowing checks whether a message of verbosity level v will be printed.
func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

// Indent returns a new printer that indents the messages more than the input printer.
func (f formatter) Indent() PP {
	f.indent++
	return f
}

func (f formatter) output(v Verbosity, emoji Emoji, msg string) {
	if v < f.verbosity {
		return
	}

	var line string
	if f.emoji {
		line = fmt.Sprintf("%s%s %s",
			strings.Repeat(indentPrefix, f.indent),
			string(emoji),
			msg)
	} else {
		line = fmt.Sprintf("%s%s",
			strings.Repeat(indentPrefix, f.indent),
			msg)
	}
	line = strings.TrimSuffix(line, "\n")

	f.shared.mu.Lock()
	defer f.shared.mu.Unlock()
	fmt.Fprintln(f.writer, line)
}

func (f formatter) printf(v Verbosity, emoji Emoji, format string, args ...any) {
	f.output(v, emoji, fmt.Sprintf(format, args...))
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.printf(Info, emoji, format, args...)
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.printf(Notice, emoji, format, args...)
}

// SuppressHint sets the hint in the internal map to be "shown".
func (f formatter) SuppressHint(hint Hint) {
	f.shared.mu.Lock()
	defer f.shared.mu.Unlock()
	f.shared.hintShown[hint] = true
}

// claimHint marks the hint as shown and tells whether it was not shown before.
func (f formatter) claimHint(hint Hint) bool {
	f.shared.mu.Lock()
	defer f.shared.mu.Unlock()
	if f.shared.hintShown[hint] {
		return false
	}
	f.shared.hintShown[hint] = true
	return true
}

// Hintf called [Infof] with the emoji [EmojiHint].
func (f formatter) Hintf(hint Hint, format string, args ...any) {
	if f.claimHint(hint) {
		f.Infof(EmojiHint, format, args...)
	}
}
