package domain

import "time"

// CurrentVersion is the version stamped on every canonical document.
const CurrentVersion = 2

// Document is the whole persisted state: lists, pairs, and a format version.
type Document struct {
	Lists   []WordList     `json:"lists"`
	Pairs   []LearningPair `json:"pairs"`
	Version int            `json:"version"`
}

// NewDocument returns an empty document with a single default list.
func NewDocument(now time.Time) *Document {
	list, _ := NewWordList(DefaultListName, now)
	return &Document{
		Lists:   []WordList{*list},
		Pairs:   []LearningPair{},
		Version: CurrentVersion,
	}
}

// Timestamp normalizes t to UTC at millisecond precision, the resolution of
// the persisted format.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Lists:   append([]WordList(nil), d.Lists...),
		Pairs:   make([]LearningPair, len(d.Pairs)),
		Version: d.Version,
	}
	if out.Lists == nil {
		out.Lists = []WordList{}
	}
	copy(out.Pairs, d.Pairs)
	return out
}

// List returns the list with the given ID.
func (d *Document) List(id string) (*WordList, error) {
	for i := range d.Lists {
		if d.Lists[i].ID == id {
			return &d.Lists[i], nil
		}
	}
	return nil, ErrListNotFound
}

// Pair returns the pair with the given ID.
func (d *Document) Pair(id string) (*LearningPair, error) {
	for i := range d.Pairs {
		if d.Pairs[i].ID == id {
			return &d.Pairs[i], nil
		}
	}
	return nil, ErrPairNotFound
}

// PairsInList returns copies of the pairs belonging to listID, in document order.
func (d *Document) PairsInList(listID string) []LearningPair {
	out := make([]LearningPair, 0)
	for _, p := range d.Pairs {
		if p.ListID == listID {
			out = append(out, p)
		}
	}
	return out
}

// RemoveList deletes a list and every pair that belongs to it.
func (d *Document) RemoveList(id string) error {
	idx := -1
	for i := range d.Lists {
		if d.Lists[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrListNotFound
	}

	d.Lists = append(d.Lists[:idx], d.Lists[idx+1:]...)
	kept := d.Pairs[:0]
	for _, p := range d.Pairs {
		if p.ListID != id {
			kept = append(kept, p)
		}
	}
	d.Pairs = kept
	return nil
}

// RemovePair deletes a single pair.
func (d *Document) RemovePair(id string) error {
	for i := range d.Pairs {
		if d.Pairs[i].ID == id {
			d.Pairs = append(d.Pairs[:i], d.Pairs[i+1:]...)
			return nil
		}
	}
	return ErrPairNotFound
}
