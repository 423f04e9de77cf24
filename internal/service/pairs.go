package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/spreadsheet"
)

// SortOrder orders browse results.
type SortOrder string

// Browse sort orders
const (
	SortFront   SortOrder = "front"
	SortBack    SortOrder = "back"
	SortCreated SortOrder = "created"
)

// ParseSortOrder converts a string into a SortOrder. Empty means SortFront.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case "":
		return SortFront, nil
	case SortFront, SortBack, SortCreated:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// UploadResult reports the outcome of a bulk upload.
type UploadResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// AddPair creates a pair in a list with fresh schedules in both directions.
func (t *Trainer) AddPair(ctx context.Context, listID, front, back string) (*domain.LearningPair, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.doc.List(listID); err != nil {
		return nil, err
	}

	now := t.now()
	pair, err := domain.NewLearningPair(listID, front, back, now)
	if err != nil {
		return nil, err
	}
	pair.Schedule = t.freshSchedule(now)

	next := t.doc.Clone()
	next.Pairs = append(next.Pairs, *pair)
	if err := t.commit(ctx, "add_pair", next); err != nil {
		return nil, err
	}

	t.log(ctx).Debug("pair added",
		slog.String("pair_id", pair.ID),
		slog.String("list_id", listID))
	return pair, nil
}

// EditPair replaces a pair's text. Its schedule is kept.
func (t *Trainer) EditPair(ctx context.Context, id, front, back string) (*domain.LearningPair, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.doc.Clone()
	pair, err := next.Pair(id)
	if err != nil {
		return nil, err
	}
	if err := pair.UpdateText(front, back); err != nil {
		return nil, err
	}
	edited := *pair

	if err := t.commit(ctx, "edit_pair", next); err != nil {
		return nil, err
	}
	return &edited, nil
}

// DeletePair removes a pair. If it was the active card the session returns
// to idle.
func (t *Trainer) DeletePair(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.doc.Clone()
	if err := next.RemovePair(id); err != nil {
		return err
	}
	if err := t.commit(ctx, "delete_pair", next); err != nil {
		return err
	}

	if active, ok := t.session.CardID(); ok && active == id {
		t.session.Reset()
	}
	return nil
}

// Browse returns the pairs of a list whose front or back contains query,
// case-insensitively, in the given order.
func (t *Trainer) Browse(
	ctx context.Context,
	listID, query string,
	order SortOrder,
) ([]domain.LearningPair, error) {
	if order == "" {
		order = SortFront
	}
	if _, err := ParseSortOrder(string(order)); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.doc.List(listID); err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.LearningPair, 0)
	for _, p := range t.doc.PairsInList(listID) {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Front), q) ||
			strings.Contains(strings.ToLower(p.Back), q) {
			out = append(out, p)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.LearningPair) int {
		switch order {
		case SortBack:
			return strings.Compare(strings.ToLower(a.Back), strings.ToLower(b.Back))
		case SortCreated:
			return a.CreatedAt.Compare(b.CreatedAt)
		default:
			return cmp.Or(
				strings.Compare(strings.ToLower(a.Front), strings.ToLower(b.Front)),
				strings.Compare(strings.ToLower(a.Back), strings.ToLower(b.Back)),
			)
		}
	})
	return out, nil
}

// UploadPairs adds one pair per row to a list. Rows missing a front or a
// back are skipped. All added pairs are saved together.
func (t *Trainer) UploadPairs(ctx context.Context, listID string, rows []spreadsheet.Row) (*UploadResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.doc.List(listID); err != nil {
		return nil, err
	}

	now := t.now()
	result := &UploadResult{}
	next := t.doc.Clone()
	for _, row := range rows {
		if row.Blank() {
			result.Skipped++
			continue
		}
		pair, err := domain.NewLearningPair(listID, row.Front, row.Back, now)
		if err != nil {
			result.Skipped++
			continue
		}
		pair.Schedule = t.freshSchedule(now)
		next.Pairs = append(next.Pairs, *pair)
		result.Added++
	}

	if result.Added > 0 {
		if err := t.commit(ctx, "upload_pairs", next); err != nil {
			return nil, err
		}
	}

	t.log(ctx).Info("pairs uploaded",
		slog.String("list_id", listID),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

// Postpone pushes the due time of one direction of a pair back by days.
func (t *Trainer) Postpone(
	ctx context.Context,
	pairID string,
	dir domain.Direction,
	days int,
) (*domain.LearningPair, error) {
	if !dir.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, dir)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.doc.Clone()
	pair, err := next.Pair(pairID)
	if err != nil {
		return nil, err
	}

	rec, _ := pair.Record(dir)
	postponed, err := t.engine.Postpone(rec, days)
	if err != nil {
		return nil, err
	}
	_ = pair.Schedule.Set(dir, postponed)
	updated := *pair

	if err := t.commit(ctx, "postpone", next); err != nil {
		return nil, err
	}
	return &updated, nil
}
