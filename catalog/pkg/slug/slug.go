// Package slug converts entry titles to URL path segments and resolves them back.
package slug

import (
	"moviecatalog/catalog/pkg/model"
	"strings"
	"unicode"
)

// Encode lowercases title, drops every rune that is not a word character,
// whitespace or hyphen, and joins the remaining words with single hyphens.
//
// Encode is deterministic and idempotent but not injective: "Movie: Part 2" and
// "Movie Part 2" both encode to "movie-part-2".
func Encode(title string) string {
	var b strings.Builder
	separator := false
	for _, r := range strings.ToLower(title) {
		switch {
		case isWord(r):
			if separator && b.Len() > 0 {
				b.WriteByte('-')
			}
			separator = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			separator = true
		}
	}
	return b.String()
}

// Decode turns a slug into a lowercase search key. It is not an inverse of Encode.
func Decode(slug string) string {
	return strings.ToLower(strings.ReplaceAll(slug, "-", " "))
}

// Resolve returns the index of the first entry whose title encodes to slug or
// whose lowercased title equals Decode(slug). On collisions only the first
// entry in list order is reachable.
func Resolve(entries []model.Entry, slug string) (int, bool) {
	key := Decode(slug)
	for i := range entries {
		if Encode(entries[i].Title) == slug || strings.ToLower(entries[i].Title) == key {
			return i, true
		}
	}
	return -1, false
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
