package schema

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Decode parses and normalizes a persisted or imported document.
func Decode(data []byte, now time.Time) (*domain.Document, error) {
	raw, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Normalize(raw, now), nil
}

// Encode renders a document in the canonical wire format: epoch millisecond
// timestamps, canonical keys, two-space indentation.
func Encode(doc *domain.Document) ([]byte, error) {
	w := wireDocument{
		Lists:   make([]wireList, 0, len(doc.Lists)),
		Pairs:   make([]wirePair, 0, len(doc.Pairs)),
		Version: doc.Version,
	}
	for _, l := range doc.Lists {
		w.Lists = append(w.Lists, wireList{
			ID:        l.ID,
			Name:      l.Name,
			CreatedAt: l.CreatedAt.UnixMilli(),
		})
	}
	for _, p := range doc.Pairs {
		w.Pairs = append(w.Pairs, wirePair{
			ID:        p.ID,
			ListID:    p.ListID,
			Front:     p.Front,
			Back:      p.Back,
			CreatedAt: p.CreatedAt.UnixMilli(),
			Schedule: wireSchedule{
				Forward: toWireRecord(p.Schedule.Forward),
				Reverse: toWireRecord(p.Schedule.Reverse),
			},
		})
	}

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return data, nil
}

type wireDocument struct {
	Lists   []wireList `json:"lists"`
	Pairs   []wirePair `json:"pairs"`
	Version int        `json:"version"`
}

type wireList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type wirePair struct {
	ID        string       `json:"id"`
	ListID    string       `json:"listId"`
	Front     string       `json:"front"`
	Back      string       `json:"back"`
	CreatedAt int64        `json:"createdAt"`
	Schedule  wireSchedule `json:"schedule"`
}

type wireSchedule struct {
	Forward wireRecord `json:"forward"`
	Reverse wireRecord `json:"reverse"`
}

type wireRecord struct {
	Ease         float64 `json:"ease"`
	Repetitions  int     `json:"repetitions"`
	IntervalDays float64 `json:"intervalDays"`
	Due          int64   `json:"due"`
	WrongCount   int     `json:"wrongCount"`
	LastResult   *string `json:"lastResult"`
	LastReviewed *int64  `json:"lastReviewed"`
}

func toWireRecord(rec domain.SchedulingRecord) wireRecord {
	w := wireRecord{
		Ease:         rec.Ease,
		Repetitions:  rec.Repetitions,
		IntervalDays: rec.IntervalDays,
		Due:          rec.Due.UnixMilli(),
		WrongCount:   rec.WrongCount,
	}
	if rec.LastResult != domain.ResultNone {
		w.LastResult = ptr(string(rec.LastResult))
	}
	if rec.LastReviewed != nil {
		w.LastReviewed = ptr(rec.LastReviewed.UnixMilli())
	}
	return w
}
