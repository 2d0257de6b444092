// Package code contains the pure business logic for catalog code assignment.
// This is part of the Functional Core - no I/O, only pure functions.
package code

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxSlugLength is the longest slug Normalize returns.
	MaxSlugLength = 15

	// FallbackSlug is returned when nothing usable survives normalization.
	FallbackSlug = "NA"
)

// separatorRun matches every maximal run of characters outside the slug alphabet.
var separatorRun = regexp.MustCompile(`[^A-Z0-9]+`)

// asciiFold decomposes to NFKD, then drops combining marks and anything left
// outside ASCII (e.g. "División" -> "Division", "日本" -> "").
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Normalize converts arbitrary text into an uppercase slug drawn from [A-Z0-9.].
//
// Runs of other characters collapse to a single '.', leading and trailing dots
// are trimmed and the result is capped at MaxSlugLength. Empty results become
// FallbackSlug, so the function is total over any input.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = ""
	}

	slug := separatorRun.ReplaceAllString(strings.ToUpper(folded), ".")
	slug = truncate(strings.Trim(slug, "."), MaxSlugLength)
	if slug == "" {
		return FallbackSlug
	}
	return slug
}

// truncate cuts an ASCII slug to max characters, re-trimming a dangling separator.
func truncate(slug string, max int) string {
	if len(slug) > max {
		slug = slug[:max]
	}
	return strings.TrimRight(slug, ".")
}
