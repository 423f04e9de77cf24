package training

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// DefaultPickWindow is how many of the most overdue pairs a pick chooses from.
const DefaultPickWindow = 15

// Picker chooses the next card from a pool. It is safe for concurrent use.
type Picker struct {
	mu     sync.Mutex
	rng    *rand.Rand
	window int
}

// NewPicker returns a Picker drawing from rng. A nil rng is seeded from the
// clock; a window below one falls back to DefaultPickWindow.
func NewPicker(rng *rand.Rand, window int) *Picker {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if window < 1 {
		window = DefaultPickWindow
	}
	return &Picker{rng: rng, window: window}
}

// Window returns the number of most overdue pairs a pick chooses from.
func (p *Picker) Window() int {
	return p.window
}

// Pick sorts pool by due time in dir, most overdue first, and returns a
// uniformly random pair among the first Window of them. An empty pool
// returns ErrNoCard. The pool is not modified.
func (p *Picker) Pick(pool []domain.LearningPair, dir domain.Direction) (domain.LearningPair, error) {
	if len(pool) == 0 {
		return domain.LearningPair{}, ErrNoCard
	}
	if !dir.IsValid() {
		return domain.LearningPair{}, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, dir)
	}

	sorted := slices.Clone(pool)
	slices.SortStableFunc(sorted, func(a, b domain.LearningPair) int {
		ra, _ := a.Record(dir)
		rb, _ := b.Record(dir)
		return ra.Due.Compare(rb.Due)
	})

	n := min(p.window, len(sorted))

	p.mu.Lock()
	idx := p.rng.IntN(n)
	p.mu.Unlock()

	return sorted[idx], nil
}
