// Package parsing provides text normalization for applicant identity fields
// and resume-derived lists. All normalizers are pure and total: they never
// fail, and empty input normalizes to the empty string.
package parsing

import (
	"strings"
	"unicode"
)

// NormalizeName canonicalizes a person name for comparison: lowercase,
// trimmed, with internal whitespace collapsed to single spaces. Punctuation
// such as apostrophes and hyphens is kept; near-miss spellings are handled
// by the similarity metric instead.
func NormalizeName(name string) string {
	return collapseWhitespace(strings.ToLower(strings.TrimSpace(name)))
}

// NormalizeEmail canonicalizes an email address: lowercase, with any "+tag"
// suffix stripped from the local part, so "John.Doe+jobs@Gmail.com"
// normalizes to "john.doe@gmail.com". The last "@" separates local part and
// domain; stray "@" characters in the local part are dropped, so the output
// contains exactly one "@". Input without an "@" is lowercased and trimmed
// only.
func NormalizeEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(normalized, "@")
	if at < 0 {
		return normalized
	}
	local, domain := normalized[:at], normalized[at:]
	if plus := strings.Index(local, "+"); plus >= 0 {
		local = local[:plus]
	}
	local = strings.ReplaceAll(local, "@", "")
	return local + domain
}

// NormalizePhone strips every non-digit character from a phone number, so
// "(555) 123-4567" normalizes to "5551234567". Fully non-numeric input
// normalizes to the empty string.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeLocation canonicalizes a city/location string: lowercase, commas
// removed, whitespace collapsed. "New York, NY" normalizes to "new york ny".
func NormalizeLocation(location string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(location)), ",", " ")
	return collapseWhitespace(normalized)
}

// SplitList splits a comma-separated field (key skills, certifications)
// into trimmed, non-empty items. Empty input yields a nil slice.
func SplitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

// Tokenize lowercases free text and splits it into word tokens, dropping
// punctuation. Used for keyword matching against resume text.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// collapseWhitespace replaces runs of whitespace with a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
