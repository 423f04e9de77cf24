package training

import (
	"fmt"
	"slices"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/schema"
)

// Mode decides which pairs of a list are eligible for a session.
type Mode string

// Selection modes
const (
	// ModeAll includes every pair regardless of due status.
	ModeAll Mode = "all"
	// ModeDue includes pairs whose record is due.
	ModeDue Mode = "due"
	// ModeDueAndRecentWrong adds the most recently missed pairs to the due set.
	ModeDueAndRecentWrong Mode = "dueAndRecentWrong"
)

// DefaultRecentWrongLimit is how many recently missed pairs ModeDueAndRecentWrong adds.
const DefaultRecentWrongLimit = 20

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	switch m {
	case ModeAll, ModeDue, ModeDueAndRecentWrong:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Selector builds candidate pools.
type Selector struct {
	recentWrongLimit int
}

// NewSelector returns a Selector adding at most recentWrongLimit missed pairs
// in ModeDueAndRecentWrong. A negative limit is treated as zero.
func NewSelector(recentWrongLimit int) *Selector {
	return &Selector{recentWrongLimit: max(recentWrongLimit, 0)}
}

var defaultSelector = NewSelector(DefaultRecentWrongLimit)

// SelectPool builds a pool with the default recent-wrong limit.
func SelectPool(
	pairs []domain.LearningPair,
	dir domain.Direction,
	mode Mode,
	now time.Time,
) ([]domain.LearningPair, error) {
	return defaultSelector.Select(pairs, dir, mode, now)
}

// Select returns the pairs eligible for dir under mode. Each pair's schedule
// is completed before filtering, so pairs missing a record count as fresh and
// due. An unknown direction yields an empty pool. The result holds copies and
// contains each pair at most once.
func (s *Selector) Select(
	pairs []domain.LearningPair,
	dir domain.Direction,
	mode Mode,
	now time.Time,
) ([]domain.LearningPair, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	pool := make([]domain.LearningPair, 0)
	if !dir.IsValid() {
		return pool, nil
	}

	complete := make([]domain.LearningPair, len(pairs))
	for i, p := range pairs {
		schema.EnsureSchedule(&p, now)
		complete[i] = p
	}

	if mode == ModeAll {
		return append(pool, complete...), nil
	}

	seen := make(map[string]bool)
	for _, p := range complete {
		rec, _ := p.Record(dir)
		if rec.IsDue(now) && !seen[p.ID] {
			seen[p.ID] = true
			pool = append(pool, p)
		}
	}

	if mode == ModeDueAndRecentWrong {
		for _, p := range recentWrong(complete, dir, s.recentWrongLimit) {
			if !seen[p.ID] {
				seen[p.ID] = true
				pool = append(pool, p)
			}
		}
	}

	return pool, nil
}

// recentWrong returns up to limit pairs last graded wrong in dir, most
// recently reviewed first.
func recentWrong(pairs []domain.LearningPair, dir domain.Direction, limit int) []domain.LearningPair {
	wrong := make([]domain.LearningPair, 0)
	for _, p := range pairs {
		rec, _ := p.Record(dir)
		if rec.LastResult == domain.ResultWrong {
			wrong = append(wrong, p)
		}
	}

	slices.SortStableFunc(wrong, func(a, b domain.LearningPair) int {
		return lastReviewed(b, dir).Compare(lastReviewed(a, dir))
	})

	if len(wrong) > limit {
		wrong = wrong[:limit]
	}
	return wrong
}

func lastReviewed(p domain.LearningPair, dir domain.Direction) time.Time {
	rec, _ := p.Record(dir)
	if rec.LastReviewed == nil {
		return time.Time{}
	}
	return *rec.LastReviewed
}
