package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// untitledListName names lists whose stored name is missing or blank.
const untitledListName = "Untitled list"

// Normalize produces a valid canonical document from any raw document. It
// never fails and Normalize(Lift(Normalize(x))) equals Normalize(x).
//
// Repairs applied:
//   - missing list and pair IDs are generated; duplicate pair IDs are replaced
//   - duplicate list IDs keep the first list
//   - text fields are trimmed
//   - a document without lists gets one default list
//   - pairs referring to an unknown list move to the first list
//   - every pair gets a complete dual-direction schedule
//   - the version is set to the current one
func Normalize(raw RawDocument, now time.Time) *domain.Document {
	now = domain.Timestamp(now)
	doc := &domain.Document{
		Lists:   make([]domain.WordList, 0, len(raw.Lists)),
		Pairs:   make([]domain.LearningPair, 0, len(raw.Pairs)),
		Version: domain.CurrentVersion,
	}

	listIDs := make(map[string]bool, len(raw.Lists))
	for _, rl := range raw.Lists {
		list := domain.WordList{
			ID:        strings.TrimSpace(deref(rl.ID)),
			Name:      strings.TrimSpace(deref(rl.Name)),
			CreatedAt: now,
		}
		if list.ID == "" {
			list.ID = uuid.NewString()
		}
		if listIDs[list.ID] {
			continue
		}
		if list.Name == "" {
			list.Name = untitledListName
		}
		if rl.CreatedAt != nil {
			list.CreatedAt = *rl.CreatedAt
		}
		listIDs[list.ID] = true
		doc.Lists = append(doc.Lists, list)
	}

	if len(doc.Lists) == 0 {
		list, _ := domain.NewWordList(domain.DefaultListName, now)
		listIDs[list.ID] = true
		doc.Lists = append(doc.Lists, *list)
	}
	fallbackList := doc.Lists[0].ID

	pairIDs := make(map[string]bool, len(raw.Pairs))
	for _, rp := range raw.Pairs {
		pair := MigratePair(rp, now)
		pair.ID = strings.TrimSpace(pair.ID)
		if pair.ID == "" || pairIDs[pair.ID] {
			pair.ID = uuid.NewString()
		}
		pairIDs[pair.ID] = true

		pair.ListID = strings.TrimSpace(pair.ListID)
		if !listIDs[pair.ListID] {
			pair.ListID = fallbackList
		}
		pair.Front = strings.TrimSpace(pair.Front)
		pair.Back = strings.TrimSpace(pair.Back)
		doc.Pairs = append(doc.Pairs, pair)
	}

	return doc
}

// Lift converts a canonical document back into raw form.
func Lift(doc *domain.Document) RawDocument {
	raw := RawDocument{
		Lists:   make([]RawList, 0, len(doc.Lists)),
		Pairs:   make([]RawPair, 0, len(doc.Pairs)),
		Version: ptr(doc.Version),
	}
	for _, l := range doc.Lists {
		raw.Lists = append(raw.Lists, RawList{
			ID:        ptr(l.ID),
			Name:      ptr(l.Name),
			CreatedAt: ptr(l.CreatedAt),
		})
	}
	for _, p := range doc.Pairs {
		fwd := fieldsOf(p.Schedule.Forward)
		rev := fieldsOf(p.Schedule.Reverse)
		raw.Pairs = append(raw.Pairs, RawPair{
			ID:        ptr(p.ID),
			ListID:    ptr(p.ListID),
			Front:     ptr(p.Front),
			Back:      ptr(p.Back),
			CreatedAt: ptr(p.CreatedAt),
			Shape:     CanonicalPair{Forward: &fwd, Reverse: &rev},
		})
	}
	return raw
}
