package training

import (
	"fmt"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// State is a step of the drill cycle.
type State string

// Session states
const (
	StateIdle           State = "idle"
	StateCardShown      State = "cardShown"
	StateAnswerRevealed State = "answerRevealed"
	StateGraded         State = "graded"
	StateNoCard         State = "noCard"
)

// Selection identifies what a session drills.
type Selection struct {
	ListID    string           `json:"listId"`
	Mode      Mode             `json:"mode"`
	Direction domain.Direction `json:"direction"`
}

// Session tracks the show/reveal/grade cycle of a single learner. Only one
// card is active at a time. Session is not safe for concurrent use; the
// owner serializes access.
type Session struct {
	state     State
	selection Selection
	cardID    string
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{state: StateIdle}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Selection returns the selection of the most recent pick.
func (s *Session) Selection() Selection {
	return s.selection
}

// CardID returns the active card, if any.
func (s *Session) CardID() (string, bool) {
	return s.cardID, s.cardID != ""
}

// Show records a pick. A pick is allowed from every state, since changing
// the selection always forces a new one.
func (s *Session) Show(sel Selection, cardID string) {
	s.state = StateCardShown
	s.selection = sel
	s.cardID = cardID
}

// Empty records a pick that found no card.
func (s *Session) Empty(sel Selection) {
	s.state = StateNoCard
	s.selection = sel
	s.cardID = ""
}

// Reveal moves a shown card to the revealed state.
func (s *Session) Reveal() error {
	if s.state != StateCardShown {
		return fmt.Errorf("%w: reveal from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateAnswerRevealed
	return nil
}

// Grade moves a revealed card to the graded state and returns its ID. The
// owner follows up with Show or Empty.
func (s *Session) Grade() (string, error) {
	if s.state != StateAnswerRevealed {
		return "", fmt.Errorf("%w: grade from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateGraded
	return s.cardID, nil
}

// Reset returns the session to idle.
func (s *Session) Reset() {
	*s = Session{state: StateIdle}
}
