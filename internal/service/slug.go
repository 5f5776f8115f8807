package service

import "strings"

// Slugify derives the URL slug for an article title: lowercase, with runs
// of whitespace collapsed to single hyphens. "Formal Greetings" becomes
// "formal-greetings".
//
// The mapping is lossy: punctuation is not escaped and multiple titles can
// collapse to the same slug. That fragility is inherited from the lookup
// contract (see TitleFromSlug) and is deliberately not repaired here.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// TitleFromSlug inverts Slugify as far as the mapping allows: hyphens
// become single spaces, producing a title guess for a case-insensitive
// exact match. Titles containing punctuation or multi-space runs do not
// round-trip and such lookups are expected to miss.
func TitleFromSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
