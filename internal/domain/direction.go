package domain

import "fmt"

// Direction is one of the two fixed translation orientations of a pair.
type Direction string

// Possible direction values
const (
	// DirectionForward prompts with the front and expects the back.
	DirectionForward Direction = "forward"
	// DirectionReverse prompts with the back and expects the front.
	DirectionReverse Direction = "reverse"
)

// Directions returns both directions in a stable order.
func Directions() []Direction {
	return []Direction{DirectionForward, DirectionReverse}
}

// IsValid reports whether d is a known direction.
func (d Direction) IsValid() bool {
	return d == DirectionForward || d == DirectionReverse
}

// ParseDirection converts a string into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

// Prompt returns the side of the pair shown to the learner in this direction.
func (d Direction) Prompt(p LearningPair) string {
	if d == DirectionReverse {
		return p.Back
	}
	return p.Front
}

// Answer returns the side of the pair the learner has to recall.
func (d Direction) Answer(p LearningPair) string {
	if d == DirectionReverse {
		return p.Front
	}
	return p.Back
}
