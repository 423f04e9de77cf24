package schema

import (
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/srs"
)

var engine = srs.NewDefaultService()

// Schedule builds the canonical dual-direction schedule for a pair shape.
//
// Canonical containers keep both directions, creating any missing one fresh.
// Legacy flat fields only ever tracked the reverse direction, so they become
// the reverse record and forward starts fresh. Empty shapes get two fresh
// records.
func Schedule(shape PairShape, now time.Time) domain.DirectionalSchedule {
	now = domain.Timestamp(now)
	switch s := shape.(type) {
	case CanonicalPair:
		return domain.DirectionalSchedule{
			Forward: completeRecord(s.Forward, now),
			Reverse: completeRecord(s.Reverse, now),
		}
	case LegacyFlatPair:
		fields := s.Fields
		return domain.DirectionalSchedule{
			Forward: engine.Initialize(now),
			Reverse: completeRecord(&fields, now),
		}
	default:
		return domain.DirectionalSchedule{
			Forward: engine.Initialize(now),
			Reverse: engine.Initialize(now),
		}
	}
}

// MigratePair converts a raw pair into a canonical one. Text and identifiers
// are copied as found; Normalize applies the document-level repairs.
func MigratePair(raw RawPair, now time.Time) domain.LearningPair {
	now = domain.Timestamp(now)
	shape := raw.Shape
	if shape == nil {
		shape = EmptyPair{}
	}
	pair := domain.LearningPair{
		ID:        deref(raw.ID),
		ListID:    deref(raw.ListID),
		Front:     deref(raw.Front),
		Back:      deref(raw.Back),
		CreatedAt: now,
		Schedule:  Schedule(shape, now),
	}
	if raw.CreatedAt != nil {
		pair.CreatedAt = *raw.CreatedAt
	}
	return pair
}

// EnsureSchedule repairs both records of an in-memory pair: a zero ease or due
// counts as missing, values are clamped to their valid ranges.
func EnsureSchedule(p *domain.LearningPair, now time.Time) {
	now = domain.Timestamp(now)
	for _, d := range domain.Directions() {
		rec, _ := p.Schedule.Get(d)
		fields := fieldsOf(rec)
		_ = p.Schedule.Set(d, completeRecord(&fields, now))
	}
}

// completeRecord fills every missing field of f with its initial value and
// clamps the rest. A nil f yields a fresh record.
func completeRecord(f *RecordFields, now time.Time) domain.SchedulingRecord {
	rec := engine.Initialize(now)
	if f == nil {
		return rec
	}
	params := engine.Params()

	if f.Ease != nil {
		rec.Ease = params.ClampEase(*f.Ease)
	}
	if f.Repetitions != nil && *f.Repetitions > 0 {
		rec.Repetitions = *f.Repetitions
	}
	if f.IntervalDays != nil {
		rec.IntervalDays = params.ClampInterval(*f.IntervalDays)
	}
	if f.Due != nil {
		rec.Due = *f.Due
	}
	if f.WrongCount != nil && *f.WrongCount > 0 {
		rec.WrongCount = *f.WrongCount
	}
	if f.LastResult != nil {
		rec.LastResult = *f.LastResult
	}
	if f.LastReviewed != nil {
		t := *f.LastReviewed
		rec.LastReviewed = &t
	}
	return rec
}

// fieldsOf lifts a canonical record back into raw fields. Zero ease and zero
// due are reported as absent.
func fieldsOf(rec domain.SchedulingRecord) RecordFields {
	f := RecordFields{
		Repetitions:  ptr(rec.Repetitions),
		IntervalDays: ptr(rec.IntervalDays),
		WrongCount:   ptr(rec.WrongCount),
	}
	if rec.Ease != 0 {
		f.Ease = ptr(rec.Ease)
	}
	if !rec.Due.IsZero() {
		f.Due = ptr(rec.Due)
	}
	if rec.LastResult != domain.ResultNone {
		f.LastResult = ptr(rec.LastResult)
	}
	if rec.LastReviewed != nil {
		f.LastReviewed = ptr(*rec.LastReviewed)
	}
	return f
}

func ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
