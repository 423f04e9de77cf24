package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// Card is the learner's view of the active card. Answer is empty until the
// answer has been revealed.
type Card struct {
	PairID    string                  `json:"pairId"`
	ListID    string                  `json:"listId"`
	ListName  string                  `json:"listName"`
	Direction domain.Direction        `json:"direction"`
	Prompt    string                  `json:"prompt"`
	Answer    string                  `json:"answer,omitempty"`
	Record    domain.SchedulingRecord `json:"record"`
	State     training.State          `json:"state"`
}

// GradeResult is the outcome of grading the active card.
type GradeResult struct {
	// Graded is the pair's updated record in the drilled direction.
	Graded domain.SchedulingRecord `json:"graded"`
	// Next is the following card, or nil when the pool is empty.
	Next *Card `json:"next,omitempty"`
}

// Stats counts the pairs of a list, how many are due in dir, and how many
// were last answered wrong in dir.
func (t *Trainer) Stats(ctx context.Context, listID string, dir domain.Direction) (training.Stats, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.doc.List(listID); err != nil {
		return training.Stats{}, err
	}
	return training.ComputeStats(t.doc.PairsInList(listID), dir, t.now()), nil
}

// Next picks a card for the selection. It is allowed in every session state
// and always re-picks. training.ErrNoCard means the pool is empty and the
// session is in the no-card state.
func (t *Trainer) Next(ctx context.Context, sel training.Selection) (*Card, error) {
	if _, err := training.ParseMode(string(sel.Mode)); err != nil {
		return nil, err
	}
	if !sel.Direction.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, sel.Direction)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.doc.List(sel.ListID); err != nil {
		return nil, err
	}
	return t.pick(ctx, sel)
}

// pick runs pool selection and the picker, and moves the session to
// CardShown or NoCard. Callers hold t.mu.
func (t *Trainer) pick(ctx context.Context, sel training.Selection) (*Card, error) {
	pool, err := t.selector.Select(t.doc.PairsInList(sel.ListID), sel.Direction, sel.Mode, t.now())
	if err != nil {
		return nil, err
	}

	pair, err := t.picker.Pick(pool, sel.Direction)
	if errors.Is(err, training.ErrNoCard) {
		t.session.Empty(sel)
		t.log(ctx).Debug("no card available",
			slog.String("list_id", sel.ListID),
			slog.String("mode", string(sel.Mode)),
			slog.String("direction", string(sel.Direction)))
		return nil, training.ErrNoCard
	}
	if err != nil {
		return nil, err
	}

	t.session.Show(sel, pair.ID)
	return t.card(pair, sel.Direction, false), nil
}

func (t *Trainer) card(pair domain.LearningPair, dir domain.Direction, revealed bool) *Card {
	rec, _ := pair.Record(dir)
	c := &Card{
		PairID:    pair.ID,
		ListID:    pair.ListID,
		Direction: dir,
		Prompt:    dir.Prompt(pair),
		Record:    rec,
		State:     t.session.State(),
	}
	if list, err := t.doc.List(pair.ListID); err == nil {
		c.ListName = list.Name
	}
	if revealed {
		c.Answer = dir.Answer(pair)
	}
	return c
}

// activePair returns the pair behind the session's card. A card whose pair
// has disappeared resets the session.
func (t *Trainer) activePair() (domain.LearningPair, error) {
	id, ok := t.session.CardID()
	if !ok {
		return domain.LearningPair{}, fmt.Errorf("%w: no active card", training.ErrInvalidTransition)
	}
	pair, err := t.doc.Pair(id)
	if err != nil {
		t.session.Reset()
		return domain.LearningPair{}, err
	}
	return *pair, nil
}

// Current returns the active card, with the answer once it has been
// revealed. training.ErrNoCard means there is no active card.
func (t *Trainer) Current(ctx context.Context) (*Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.session.CardID(); !ok {
		return nil, training.ErrNoCard
	}
	pair, err := t.activePair()
	if err != nil {
		return nil, err
	}
	revealed := t.session.State() == training.StateAnswerRevealed
	return t.card(pair, t.session.Selection().Direction, revealed), nil
}

// Reveal shows the answer of the active card.
func (t *Trainer) Reveal(ctx context.Context) (*Card, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.session.Reveal(); err != nil {
		return nil, err
	}
	pair, err := t.activePair()
	if err != nil {
		return nil, err
	}
	return t.card(pair, t.session.Selection().Direction, true), nil
}

// Grade applies a review to the revealed card, saves, and picks the next
// card with the same selection. GradeResult.Next is nil when the pool has
// run dry.
func (t *Trainer) Grade(ctx context.Context, correct bool) (*GradeResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sel := t.session.Selection()
	if t.session.State() != training.StateAnswerRevealed {
		return nil, fmt.Errorf("%w: grade from %s", training.ErrInvalidTransition, t.session.State())
	}
	pair, err := t.activePair()
	if err != nil {
		return nil, err
	}

	rec, _ := pair.Record(sel.Direction)
	graded := t.engine.Review(rec, correct, t.now())

	next := t.doc.Clone()
	target, err := next.Pair(pair.ID)
	if err != nil {
		return nil, err
	}
	if err := target.Schedule.Set(sel.Direction, graded); err != nil {
		return nil, err
	}
	if err := t.commit(ctx, "grade", next); err != nil {
		// The session stays revealed so the grade can be retried.
		return nil, err
	}
	if _, err := t.session.Grade(); err != nil {
		return nil, err
	}

	t.log(ctx).Debug("card graded",
		slog.String("pair_id", pair.ID),
		slog.String("direction", string(sel.Direction)),
		slog.Bool("correct", correct),
		slog.Float64("interval_days", graded.IntervalDays))
	t.emit(ctx, events.TypePairGraded, events.PairGraded{
		PairID:       pair.ID,
		ListID:       pair.ListID,
		Direction:    string(sel.Direction),
		Correct:      correct,
		Ease:         graded.Ease,
		IntervalDays: graded.IntervalDays,
		Due:          graded.Due,
	})

	result := &GradeResult{Graded: graded}
	card, err := t.pick(ctx, sel)
	switch {
	case errors.Is(err, training.ErrNoCard):
	case err != nil:
		return nil, err
	default:
		result.Next = card
	}
	return result, nil
}

// Session returns the current session state and selection.
func (t *Trainer) Session(ctx context.Context) (training.State, training.Selection) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.State(), t.session.Selection()
}
