// Package ident normalizes arbitrary display labels into identifier-safe
// strings so that option-tree paths and compositor patterns can match
// user-facing names such as "Macaw Image" or "Déclassé".
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/viz/internal/cache"
)

// stripMarks decomposes the input (NFKD) and removes the combining marks
// left behind, so accented letters reduce to their base form where one
// exists, then recomposes the remainder.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// memo caches sanitization results. Tree matching sanitizes the same
// handful of type, group and label strings over and over.
var memo = cache.New[string, string](cache.DefaultCapacity, cache.StringHash)

// Sanitize converts a label into an identifier. Accents are stripped, every
// run of characters that is not a letter, digit or underscore collapses into
// a single underscore, and a leading digit gains an underscore prefix. The
// empty string sanitizes to itself.
func Sanitize(label string) string {
	if label == "" {
		return ""
	}
	return memo.GetOrCreate(label, func() string { return sanitize(label) })
}

func sanitize(label string) string {
	stripped, _, err := transform.String(stripMarks, label)
	if err != nil {
		stripped = label
	}
	var b strings.Builder
	b.Grow(len(stripped) + 1)
	underscore := false
	for i, r := range stripped {
		ok := r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		if ok && i == 0 && unicode.IsDigit(r) {
			b.WriteByte('_')
		}
		if ok {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore {
			b.WriteByte('_')
		}
		underscore = true
	}
	return b.String()
}

// Valid reports whether s is already in sanitized form.
func Valid(s string) bool {
	return s == Sanitize(s)
}
