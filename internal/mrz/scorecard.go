package mrz

import "errors"

// Confidence deltas applied per check.
const (
	baseConfidence = 100.0
	hintBonus      = 10.0
	minorPenalty   = 10.0
	majorPenalty   = 30.0
)

// scorecard accumulates one line's confidence and soft errors.
type scorecard struct {
	confidence float64
	errors     []*FieldError
}

func newScorecard() scorecard {
	return scorecard{confidence: baseConfidence}
}

func (s *scorecard) bonus(delta float64) {
	s.confidence += delta
}

func (s *scorecard) penalize(delta float64, err *FieldError) {
	s.confidence -= delta
	s.errors = append(s.errors, err)
}

// record keeps err without touching confidence.
func (s *scorecard) record(err *FieldError) {
	s.errors = append(s.errors, err)
}

// asFieldError attributes err to field. Errors that are not a *FieldError
// are wrapped as kind.
func asFieldError(err error, field string, kind ErrorKind) *FieldError {
	var fe *FieldError
	if errors.As(err, &fe) {
		attributed := *fe
		attributed.Field = field
		return &attributed
	}
	return newFieldError(kind, field, "%v", err)
}
