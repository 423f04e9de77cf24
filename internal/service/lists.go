package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// ListSummary is a list with the number of pairs it holds.
type ListSummary struct {
	domain.WordList
	PairCount int `json:"pairCount"`
}

// Lists returns all lists sorted by name, case-insensitively.
func (t *Trainer) Lists(ctx context.Context) []ListSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[string]int, len(t.doc.Lists))
	for _, p := range t.doc.Pairs {
		counts[p.ListID]++
	}

	out := make([]ListSummary, 0, len(t.doc.Lists))
	for _, l := range t.doc.Lists {
		out = append(out, ListSummary{WordList: l, PairCount: counts[l.ID]})
	}
	slices.SortStableFunc(out, func(a, b ListSummary) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return out
}

// CreateList adds a list with the given name.
func (t *Trainer) CreateList(ctx context.Context, name string) (*domain.WordList, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	list, err := domain.NewWordList(name, t.now())
	if err != nil {
		return nil, err
	}

	next := t.doc.Clone()
	next.Lists = append(next.Lists, *list)
	if err := t.commit(ctx, "create_list", next); err != nil {
		return nil, err
	}

	t.log(ctx).Info("list created", slog.String("list_id", list.ID))
	return list, nil
}

// RenameList changes a list's name.
func (t *Trainer) RenameList(ctx context.Context, id, name string) (*domain.WordList, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.doc.Clone()
	list, err := next.List(id)
	if err != nil {
		return nil, err
	}
	if err := list.Rename(name); err != nil {
		return nil, err
	}
	renamed := *list

	if err := t.commit(ctx, "rename_list", next); err != nil {
		return nil, err
	}
	return &renamed, nil
}

// DeleteList removes a list and all of its pairs. Deleting the last list
// leaves a fresh default list in its place.
func (t *Trainer) DeleteList(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.doc.Clone()
	if err := next.RemoveList(id); err != nil {
		return err
	}
	if len(next.Lists) == 0 {
		list, _ := domain.NewWordList(domain.DefaultListName, t.now())
		next.Lists = append(next.Lists, *list)
	}

	if err := t.commit(ctx, "delete_list", next); err != nil {
		return err
	}

	if t.session.Selection().ListID == id {
		t.session.Reset()
	}
	t.log(ctx).Info("list deleted", slog.String("list_id", id))
	return nil
}
