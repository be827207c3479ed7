// Package duplicate detects near-duplicate applications submitted against
// the same job posting by fuzzily comparing identity fields.
package duplicate

import (
	"strings"

	"github.com/jonathan/applicant-screening/internal/parsing"
	"github.com/jonathan/applicant-screening/internal/similarity"
	"github.com/jonathan/applicant-screening/internal/types"
)

// Confidence weights per matched field. Name dominates so a name-only match
// already clears the duplicate threshold, and name+email clears the
// exact-duplicate bound (0.90 > 0.85).
const (
	nameWeight     = 0.65
	emailWeight    = 0.25
	phoneWeight    = 0.15
	locationWeight = 0.15

	// multiFieldBonus is added when three or more fields match.
	multiFieldBonus = 0.10

	// duplicateThreshold is the confidence above which a submission is
	// flagged as a duplicate outright.
	duplicateThreshold = 0.6

	// nameSimilarityThreshold is the minimum name similarity that counts
	// as a name match.
	nameSimilarityThreshold = 0.8

	// locationSimilarityThreshold is the minimum location similarity that
	// counts as a location match when neither exact nor alias matching hit.
	locationSimilarityThreshold = 0.7
)

// locationAliases maps common short forms to the canonical city string they
// stand for, post-normalization.
var locationAliases = map[string]string{
	"nyc":    "new york",
	"ny":     "new york",
	"sf":     "san francisco",
	"la":     "los angeles",
	"philly": "philadelphia",
	"dc":     "washington",
}

// fieldMatches records which identity fields agreed between two applications.
type fieldMatches struct {
	name     bool
	email    bool
	phone    bool
	location bool
}

func (m fieldMatches) count() int {
	total := 0
	for _, matched := range []bool{m.name, m.email, m.phone, m.location} {
		if matched {
			total++
		}
	}
	return total
}

func (m fieldMatches) fields() []string {
	fields := make([]string, 0, 4)
	if m.name {
		fields = append(fields, types.FieldName)
	}
	if m.email {
		fields = append(fields, types.FieldEmail)
	}
	if m.phone {
		fields = append(fields, types.FieldPhone)
	}
	if m.location {
		fields = append(fields, types.FieldLocation)
	}
	return fields
}

// Check compares a new submission against the existing submissions for a
// posting and reports whether it is a likely duplicate, with a 0-1
// confidence and the matched fields of the best-matching existing
// application. An empty history yields a well-formed "not a duplicate"
// verdict. Check never fails: malformed phone numbers, empty fields, and
// unicode names all degrade to best-effort normalized comparison.
func Check(newApp types.ApplicantRecord, existing []types.ApplicantRecord) types.DuplicateCheckResult {
	best := types.DuplicateCheckResult{MatchedFields: []string{}}

	for _, candidate := range existing {
		matches := compareRecords(newApp, candidate)
		confidence := scoreMatches(matches)
		isDuplicate := confidence > duplicateThreshold ||
			(matches.name && matches.count() >= 2)

		if confidence > best.Confidence {
			best = types.DuplicateCheckResult{
				IsDuplicate:   isDuplicate,
				Confidence:    confidence,
				MatchedFields: matches.fields(),
			}
		}
	}

	return best
}

// compareRecords computes the per-field match signals between two records.
// Empty fields on either side never match.
func compareRecords(a, b types.ApplicantRecord) fieldMatches {
	return fieldMatches{
		name:     namesMatch(a.Name, b.Name),
		email:    emailsMatch(a.Email, b.Email),
		phone:    phonesMatch(a.Phone, b.Phone),
		location: locationsMatch(a.City, b.City),
	}
}

// scoreMatches converts field matches into a confidence value: the sum of
// the matched fields' weights, plus a bonus when three or more fields
// matched, capped at 1.0.
func scoreMatches(matches fieldMatches) float64 {
	confidence := 0.0
	if matches.name {
		confidence += nameWeight
	}
	if matches.email {
		confidence += emailWeight
	}
	if matches.phone {
		confidence += phoneWeight
	}
	if matches.location {
		confidence += locationWeight
	}
	if matches.count() >= 3 {
		confidence += multiFieldBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func namesMatch(a, b string) bool {
	normA, normB := parsing.NormalizeName(a), parsing.NormalizeName(b)
	if normA == "" || normB == "" {
		return false
	}
	return similarity.Score(normA, normB) >= nameSimilarityThreshold
}

// emailsMatch matches on exact normalized equality, or on equal domains with
// local parts that agree once "." separators are removed (so
// "jane.doe@gmail.com" matches "janedoe@gmail.com").
func emailsMatch(a, b string) bool {
	normA, normB := parsing.NormalizeEmail(a), parsing.NormalizeEmail(b)
	if normA == "" || normB == "" {
		return false
	}
	if normA == normB {
		return true
	}

	localA, domainA, okA := strings.Cut(normA, "@")
	localB, domainB, okB := strings.Cut(normB, "@")
	if !okA || !okB || domainA != domainB {
		return false
	}
	return strings.ReplaceAll(localA, ".", "") == strings.ReplaceAll(localB, ".", "")
}

func phonesMatch(a, b string) bool {
	normA, normB := parsing.NormalizePhone(a), parsing.NormalizePhone(b)
	if normA == "" || normB == "" {
		return false
	}
	return normA == normB
}

// locationsMatch matches on exact normalized equality, alias-resolved
// equality, substring containment either way, or near-match similarity.
func locationsMatch(a, b string) bool {
	normA, normB := resolveLocationAlias(parsing.NormalizeLocation(a)), resolveLocationAlias(parsing.NormalizeLocation(b))
	if normA == "" || normB == "" {
		return false
	}
	if normA == normB {
		return true
	}
	if strings.Contains(normA, normB) || strings.Contains(normB, normA) {
		return true
	}
	return similarity.Score(normA, normB) >= locationSimilarityThreshold
}

// resolveLocationAlias rewrites known short forms to their canonical city
// string. The whole normalized value must be an alias, or an alias followed
// only by a postal code ("nyc" and "nyc 10001" both resolve to "new york").
// A leading token that happens to be an alias never rewrites an otherwise
// distinct city name ("la paz" is not Los Angeles).
func resolveLocationAlias(location string) string {
	if canonical, ok := locationAliases[location]; ok {
		return canonical
	}
	if head, rest, ok := strings.Cut(location, " "); ok {
		if canonical, found := locationAliases[head]; found && isPostalCode(rest) {
			return canonical + " " + rest
		}
	}
	return location
}

// isPostalCode reports whether s consists only of digits and spaces.
func isPostalCode(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != ' ' {
			return false
		}
	}
	return true
}
