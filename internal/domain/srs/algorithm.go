package srs

import (
	"math"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

const day = 24 * time.Hour

// calculateNewEase determines the new ease after a review.
//
// Correct reviews raise the ease by params.CorrectEaseBonus, wrong reviews
// lower it by params.WrongEasePenalty. The result is clamped to
// [params.MinEase, params.MaxEase] on every review, whichever way it moved.
func calculateNewEase(currentEase float64, correct bool, params *Params) float64 {
	if correct {
		return params.ClampEase(currentEase + params.CorrectEaseBonus)
	}
	return params.ClampEase(currentEase - params.WrongEasePenalty)
}

// calculateNewInterval determines the new interval in days.
//
// Parameters:
//   - currentInterval: the interval before this review
//   - repetitions: the consecutive correct count after this review
//   - ease: the ease after this review
//   - correct: the grading outcome
//
// Algorithm behavior:
//   - Wrong: params.RelearnInterval, not rounded
//   - First consecutive correct: params.FirstInterval
//   - Second consecutive correct: params.SecondInterval
//   - Later: round(currentInterval * ease), compounding on the previous interval
//
// The result never exceeds params.MaxInterval.
func calculateNewInterval(
	currentInterval float64,
	repetitions int,
	ease float64,
	correct bool,
	params *Params,
) float64 {
	var interval float64
	switch {
	case !correct:
		interval = params.RelearnInterval
	case repetitions == 1:
		interval = params.FirstInterval
	case repetitions == 2:
		interval = params.SecondInterval
	default:
		interval = math.Round(currentInterval * ease)
	}
	return params.ClampInterval(interval)
}

// calculateDue converts an interval in days into the next due time. Whole
// days go through AddDate so long intervals cannot overflow a Duration.
func calculateDue(intervalDays float64, now time.Time) time.Time {
	whole, frac := math.Modf(intervalDays)
	return now.AddDate(0, 0, int(whole)).Add(time.Duration(math.Round(frac * float64(day))))
}

// calculateNextRecord returns the record that results from grading rec at now.
// The input record is not modified.
func calculateNextRecord(
	rec domain.SchedulingRecord,
	correct bool,
	now time.Time,
	params *Params,
) domain.SchedulingRecord {
	next := rec

	reviewedAt := now
	next.LastReviewed = &reviewedAt

	next.Ease = calculateNewEase(rec.Ease, correct, params)

	if correct {
		next.Repetitions = rec.Repetitions + 1
		next.LastResult = domain.ResultRight
	} else {
		next.Repetitions = 0
		next.WrongCount = rec.WrongCount + 1
		next.LastResult = domain.ResultWrong
	}

	next.IntervalDays = calculateNewInterval(
		rec.IntervalDays,
		next.Repetitions,
		next.Ease,
		correct,
		params,
	)

	next.Due = calculateDue(next.IntervalDays, now)

	return next
}
