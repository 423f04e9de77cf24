package domain

import "time"

// ReviewResult records the outcome of the most recent grading event.
type ReviewResult string

// Possible review result values
const (
	ResultNone  ReviewResult = ""
	ResultRight ReviewResult = "right"
	ResultWrong ReviewResult = "wrong"
)

// ParseReviewResult maps a stored value to a ReviewResult. Unknown values
// become ResultNone.
func ParseReviewResult(s string) ReviewResult {
	switch ReviewResult(s) {
	case ResultRight:
		return ResultRight
	case ResultWrong:
		return ResultWrong
	default:
		return ResultNone
	}
}

// SchedulingRecord is the spaced repetition state of one pair in one direction.
type SchedulingRecord struct {
	Ease         float64      `json:"ease"`         // 1.3 to 3.0
	Repetitions  int          `json:"repetitions"`  // consecutive correct reviews
	IntervalDays float64      `json:"intervalDays"` // current spacing in days
	Due          time.Time    `json:"due"`
	WrongCount   int          `json:"wrongCount"` // cumulative, never reset
	LastResult   ReviewResult `json:"lastResult"`
	LastReviewed *time.Time   `json:"lastReviewed"`
}

// IsDue reports whether the record is eligible for review at now.
func (r SchedulingRecord) IsDue(now time.Time) bool {
	return !r.Due.After(now)
}

// Reviewed reports whether the record has been graded at least once.
func (r SchedulingRecord) Reviewed() bool {
	return r.LastReviewed != nil
}

// DirectionalSchedule holds exactly one record per direction.
type DirectionalSchedule struct {
	Forward SchedulingRecord `json:"forward"`
	Reverse SchedulingRecord `json:"reverse"`
}

// Get returns the record for d. The boolean is false for an unknown direction.
func (s DirectionalSchedule) Get(d Direction) (SchedulingRecord, bool) {
	switch d {
	case DirectionForward:
		return s.Forward, true
	case DirectionReverse:
		return s.Reverse, true
	default:
		return SchedulingRecord{}, false
	}
}

// Set replaces the record for d.
func (s *DirectionalSchedule) Set(d Direction, rec SchedulingRecord) error {
	switch d {
	case DirectionForward:
		s.Forward = rec
	case DirectionReverse:
		s.Reverse = rec
	default:
		return ErrInvalidDirection
	}
	return nil
}
