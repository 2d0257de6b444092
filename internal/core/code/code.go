package code

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type codes for the fixed indicator type enumeration.
const (
	TypeCodeSeries    = "SER"
	TypeCodeSimple    = "IND"
	TypeCodeComposite = "COM"
	TypeCodeModeled   = "MOD"
	TypeCodeOther     = "OTR"
)

// CategorySegmentLength is the longest category segment inside a code.
const CategorySegmentLength = 6

// typeCodes maps lowercased type labels to their short code.
// Both the Spanish form labels and their English names are accepted.
var typeCodes = map[string]string{
	"serie":               TypeCodeSeries,
	"series":              TypeCodeSeries,
	"indicador simple":    TypeCodeSimple,
	"simple indicator":    TypeCodeSimple,
	"indicador compuesto": TypeCodeComposite,
	"composite indicator": TypeCodeComposite,
	"modelado":            TypeCodeModeled,
	"modeled":             TypeCodeModeled,
	"otro":                TypeCodeOther,
	"other":               TypeCodeOther,
}

// TypeCode returns the short code for an indicator type.
// Unknown or empty types map to TypeCodeOther.
func TypeCode(indicatorType string) string {
	if c, ok := typeCodes[strings.ToLower(strings.TrimSpace(indicatorType))]; ok {
		return c
	}
	return TypeCodeOther
}

// CategorySegment returns the normalized, length-capped category part of a code.
func CategorySegment(category string) string {
	return truncate(Normalize(category), CategorySegmentLength)
}

// Prefix returns the "<TYPE>.<CATEGORY>" scope shared by a code sequence.
func Prefix(indicatorType, category string) string {
	return TypeCode(indicatorType) + "." + CategorySegment(category)
}

// FormatCode renders a code from its prefix and sequence number.
// Sequences below 1000 are zero-padded to three digits; larger ones widen.
func FormatCode(prefix string, seq int) string {
	return fmt.Sprintf("%s.%03d", prefix, seq)
}

// ParseSequence extracts the sequence number of code within prefix.
// Returns -1 if code does not belong to prefix or has no numeric suffix of at
// least three digits.
func ParseSequence(prefix, code string) int {
	rest, ok := strings.CutPrefix(code, prefix+".")
	if !ok || len(rest) < 3 {
		return -1
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return -1
	}
	return n
}

// MaxSequence returns the highest sequence used by codes within prefix, or 0.
func MaxSequence(prefix string, codes []string) int {
	highest := 0
	for _, c := range codes {
		if n := ParseSequence(prefix, strings.TrimSpace(c)); n > highest {
			highest = n
		}
	}
	return highest
}

// NextCode returns the next code for the type and category given the codes
// already in use. It is a pure function of its inputs: two callers holding the
// same snapshot get the same answer.
func NextCode(indicatorType, category string, existing []string) string {
	prefix := Prefix(indicatorType, category)
	return FormatCode(prefix, MaxSequence(prefix, existing)+1)
}

// codePattern matches a well-formed catalog code.
var codePattern = regexp.MustCompile(`^(SER|IND|COM|MOD|OTR)\.[A-Z0-9.]{1,6}\.[0-9]{3,}$`)

// IsValid reports whether s looks like a code produced by this package.
func IsValid(s string) bool {
	return codePattern.MatchString(s)
}
