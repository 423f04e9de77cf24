package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultListName is used for the list created when a document has none.
const DefaultListName = "New list"

// WordList groups learning pairs.
type WordList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWordList creates a list with a fresh ID and trimmed name.
func NewWordList(name string, now time.Time) (*WordList, error) {
	list := &WordList{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: Timestamp(now),
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the WordList has valid data.
func (l *WordList) Validate() error {
	if l.ID == "" {
		return ErrInvalidID
	}

	if l.Name == "" {
		return ErrEmptyListName
	}

	return nil
}

// Rename changes the list name. The list is left unchanged on error.
func (l *WordList) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyListName
	}
	l.Name = name
	return nil
}
