package types

// Field names reported in DuplicateCheckResult.MatchedFields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLocation = "location"
)

// DuplicateCheckResult is the verdict of comparing a new submission against
// the existing submissions for a posting. Confidence is a 0-1 estimate that
// the two applications belong to the same person; MatchedFields lists which
// of name/email/phone/location agreed for the best-matching existing
// application. Created fresh per check.
type DuplicateCheckResult struct {
	IsDuplicate   bool     `json:"is_duplicate"`
	Confidence    float64  `json:"confidence"`
	MatchedFields []string `json:"matched_fields"`
}
