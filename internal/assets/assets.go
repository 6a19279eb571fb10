// Package assets holds the cat art shown for each game state.
// Art is loaded eagerly, once, from the embedded set or from an override
// directory; a piece that fails to load is replaced by a placeholder and is
// not retried.
package assets

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

//go:embed art/*.txt
var embedded embed.FS

// Art keys, one per game state.
const (
	KeyIdle       = "idle"
	KeyScratching = "scratching"
	KeyWarning    = "warning"
	KeyAttack     = "attack"
	KeyGameOver   = "gameover"
)

// sources maps each key to its file. Game over reuses the scratching art.
var sources = map[string]string{
	KeyIdle:       "idle.txt",
	KeyScratching: "scratching.txt",
	KeyWarning:    "warning.txt",
	KeyAttack:     "attack.txt",
	KeyGameOver:   "scratching.txt",
}

// Keys returns every art key in display order.
func Keys() []string {
	return []string{KeyIdle, KeyScratching, KeyWarning, KeyAttack, KeyGameOver}
}

// Art is a block of text art.
type Art struct {
	Lines  []string
	Width  int // Widest line, in runes
	Height int
	Broken bool // True for the placeholder drawn after a failed load
}

// NewArt builds an Art from raw text, dropping trailing blank lines.
func NewArt(text string) Art {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	a := Art{Lines: lines, Height: len(lines)}
	for _, l := range lines {
		a.Width = max(a.Width, utf8.RuneCountInString(l))
	}
	return a
}

// Placeholder returns the stand-in art for a key that failed to load.
func Placeholder(key string) Art {
	label := fmt.Sprintf(" %s? ", key)
	bar := strings.Repeat("-", utf8.RuneCountInString(label))
	a := NewArt("+" + bar + "+\n|" + label + "|\n+" + bar + "+")
	a.Broken = true
	return a
}

// Catalog is the preloaded set of art.
type Catalog struct {
	art map[string]Art
}

// Load reads every piece of art once. An empty dir selects the embedded art.
// Failures are logged and replaced by placeholders; Load itself never fails.
func Load(dir string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(embedded, "art")
		if err != nil {
			logger.Error("embedded art unavailable", "error", err)
		}
		fsys = sub
	}

	c := &Catalog{art: make(map[string]Art, len(sources))}
	for _, key := range Keys() {
		c.art[key] = loadOne(fsys, key, logger)
	}
	return c
}

func loadOne(fsys fs.FS, key string, logger *log.Logger) Art {
	if fsys == nil {
		return Placeholder(key)
	}
	data, err := fs.ReadFile(fsys, sources[key])
	if err != nil {
		logger.Warn("could not load art", "key", key, "file", sources[key], "error", err)
		return Placeholder(key)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		logger.Warn("art file is empty", "key", key, "file", sources[key])
		return Placeholder(key)
	}
	return NewArt(string(data))
}

// Art returns the art for a key, or a placeholder for unknown keys.
func (c *Catalog) Art(key string) Art {
	if a, ok := c.art[key]; ok {
		return a
	}
	return Placeholder(key)
}

// MaxSize returns the largest width and height across all art, used to keep
// the layout steady while the state changes.
func (c *Catalog) MaxSize() (w, h int) {
	for _, a := range c.art {
		w = max(w, a.Width)
		h = max(h, a.Height)
	}
	return w, h
}
