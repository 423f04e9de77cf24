package training

import (
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Stats summarizes a list in one direction.
type Stats struct {
	Total     int `json:"total"`
	Due       int `json:"due"`
	WrongLast int `json:"wrongLast"`
}

// ComputeStats counts the pairs, the pairs due at now, and the pairs whose
// last review was wrong. An unknown direction contributes nothing to the due
// and wrong counts.
func ComputeStats(pairs []domain.LearningPair, dir domain.Direction, now time.Time) Stats {
	stats := Stats{Total: len(pairs)}
	if !dir.IsValid() {
		return stats
	}
	for _, p := range pairs {
		rec, _ := p.Record(dir)
		if rec.IsDue(now) {
			stats.Due++
		}
		if rec.LastResult == domain.ResultWrong {
			stats.WrongLast++
		}
	}
	return stats
}
