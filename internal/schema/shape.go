package schema

import (
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// RecordFields is a scheduling record as found in input data. Nil fields were
// absent, null, or of an unusable type.
type RecordFields struct {
	Ease         *float64
	Repetitions  *int
	IntervalDays *float64
	Due          *time.Time
	WrongCount   *int
	LastResult   *domain.ReviewResult
	LastReviewed *time.Time
}

// Empty reports whether no field carries a value.
func (f RecordFields) Empty() bool {
	return f.Ease == nil && f.Repetitions == nil && f.IntervalDays == nil &&
		f.Due == nil && f.WrongCount == nil && f.LastResult == nil && f.LastReviewed == nil
}

// PairShape is the schedule data of a pair, decoded into exactly one of
// CanonicalPair, LegacyFlatPair, or EmptyPair.
type PairShape interface {
	isPairShape()
}

// CanonicalPair carries a per-direction schedule container with at least one
// direction present. A nil direction is created fresh during migration.
type CanonicalPair struct {
	Forward *RecordFields
	Reverse *RecordFields
}

// LegacyFlatPair carries schedule fields stored directly on the pair, from the
// format that only tracked the reverse direction.
type LegacyFlatPair struct {
	Fields RecordFields
}

// EmptyPair carries no schedule data at all.
type EmptyPair struct{}

func (CanonicalPair) isPairShape()  {}
func (LegacyFlatPair) isPairShape() {}
func (EmptyPair) isPairShape()      {}

// RawList is a word list as found in input data.
type RawList struct {
	ID        *string
	Name      *string
	CreatedAt *time.Time
}

// RawPair is a learning pair as found in input data.
type RawPair struct {
	ID        *string
	ListID    *string
	Front     *string
	Back      *string
	CreatedAt *time.Time
	Shape     PairShape
}

// RawDocument is a parsed but not yet normalized document.
type RawDocument struct {
	Lists   []RawList
	Pairs   []RawPair
	Version *int
}
