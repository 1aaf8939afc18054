// Package locator resolves user-supplied creature names and variant
// options to sprite frame keys within the archive.
package locator

import (
	"fmt"
	"strings"

	"badc0de.net/pkg/pokeprint/dex"

	"github.com/golang/glog"
)

// SpriteKey uniquely resolves one sprite frame within the archive. It
// is the slash-separated path of the frame and is opaque to callers.
type SpriteKey string

// Options select a sprite variant.
type Options struct {
	Shiny  bool
	Female bool
	Form   string
}

// NotFoundError reports an identifier with no matching archive entry.
// Name carries the normalized form that was looked up.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no sprite found for %q", e.Name)
}

// aliases substitutes spellings that normalization alone cannot map to
// a filename stem.
var aliases = map[string]string{
	"nidoran-female": "nidoran-f",
	"nidoran-male":   "nidoran-m",
	"mr-mime-jr":     "mime-jr",
}

// Normalize canonicalizes a creature name: trims space, folds case,
// turns spaces and underscores into hyphens, strips punctuation that
// filename stems never carry, and applies known aliases. The result is
// a fixed point: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_':
			return '-'
		case '.', '\'', '"', ':':
			return -1
		}
		return r
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if a, ok := aliases[s]; ok {
		s = a
	}
	return s
}

// Resolve maps a creature name and variant options to the key of its
// sprite frame. Identical logical input always yields the identical
// key. When the normalized name is not an indexed stem, a variant with
// the interior hyphens dropped is tried before giving up, so that
// spellings like "Pika-Chu" still resolve.
func Resolve(x *dex.Index, name string, opts Options) (SpriteKey, error) {
	stem := Normalize(name)
	if !x.HasFile(stem) {
		alt := strings.ReplaceAll(stem, "-", "")
		if !x.HasFile(alt) {
			return "", NotFoundError{Name: stem}
		}
		stem = alt
	}
	if opts.Form != "" {
		stem = stem + "-" + opts.Form
	}
	dir := "regular"
	if opts.Shiny {
		dir = "shiny"
	}
	sub := ""
	if opts.Female {
		sub = "female/"
	}
	key := SpriteKey(fmt.Sprintf("%s/%s%s.png", dir, sub, stem))
	glog.V(1).Infof("locator.Resolve(%q)=%s", name, key)
	return key, nil
}
