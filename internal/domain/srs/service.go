// Package srs implements the dual-direction spaced repetition engine: fresh
// scheduling records and the SM-2 derived update applied on every grading.
package srs

import (
	"errors"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Common errors
var (
	ErrInvalidDays = errors.New("postpone days must be at least 1")
)

// Service defines the interface for SRS algorithm operations
type Service interface {
	// Initialize returns a fresh record that is immediately due.
	Initialize(now time.Time) domain.SchedulingRecord

	// Review computes the record that results from a correct or wrong answer.
	Review(rec domain.SchedulingRecord, correct bool, now time.Time) domain.SchedulingRecord

	// Postpone pushes the due time forward by a number of days
	Postpone(rec domain.SchedulingRecord, days int) (domain.SchedulingRecord, error)

	// Params exposes the parameters in use.
	Params() Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new SRS service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new SRS service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

var defaultEngine = NewDefaultService()

// Initialize returns a fresh record using the default parameters.
func Initialize(now time.Time) domain.SchedulingRecord {
	return defaultEngine.Initialize(now)
}

// Review grades rec using the default parameters.
func Review(rec domain.SchedulingRecord, correct bool, now time.Time) domain.SchedulingRecord {
	return defaultEngine.Review(rec, correct, now)
}

// Initialize implements the Service interface
func (s *defaultService) Initialize(now time.Time) domain.SchedulingRecord {
	return domain.SchedulingRecord{
		Ease:         s.params.InitialEase,
		Repetitions:  0,
		IntervalDays: 0,
		Due:          now, // immediately due
		WrongCount:   0,
		LastResult:   domain.ResultNone,
		LastReviewed: nil,
	}
}

// Review implements the Service interface
func (s *defaultService) Review(
	rec domain.SchedulingRecord,
	correct bool,
	now time.Time,
) domain.SchedulingRecord {
	return calculateNextRecord(rec, correct, now, s.params)
}

// Postpone implements the Service interface
func (s *defaultService) Postpone(
	rec domain.SchedulingRecord,
	days int,
) (domain.SchedulingRecord, error) {
	if days < 1 {
		return rec, ErrInvalidDays
	}

	next := rec
	next.Due = rec.Due.AddDate(0, 0, days)
	return next, nil
}

// Params implements the Service interface
func (s *defaultService) Params() Params {
	return *s.params
}
