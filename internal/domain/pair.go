package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LearningPair is a translation pair owned by a word list.
type LearningPair struct {
	ID        string              `json:"id"`
	ListID    string              `json:"listId"`
	Front     string              `json:"front"`
	Back      string              `json:"back"`
	CreatedAt time.Time           `json:"createdAt"`
	Schedule  DirectionalSchedule `json:"schedule"`
}

// NewLearningPair creates a pair in the given list. Front and back are
// trimmed; the schedule is left for the caller to initialize.
// Returns an error if validation fails.
func NewLearningPair(listID, front, back string, now time.Time) (*LearningPair, error) {
	pair := &LearningPair{
		ID:        uuid.NewString(),
		ListID:    listID,
		Front:     strings.TrimSpace(front),
		Back:      strings.TrimSpace(back),
		CreatedAt: Timestamp(now),
	}

	if err := pair.Validate(); err != nil {
		return nil, err
	}

	return pair, nil
}

// Validate checks if the LearningPair has valid data.
func (p *LearningPair) Validate() error {
	if p.ID == "" || p.ListID == "" {
		return ErrInvalidID
	}

	if p.Front == "" || p.Back == "" {
		return ErrEmptyText
	}

	return nil
}

// UpdateText replaces front and back, keeping the schedule.
// The pair is left unchanged if the new text is invalid.
func (p *LearningPair) UpdateText(front, back string) error {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return ErrEmptyText
	}

	p.Front = front
	p.Back = back
	return nil
}

// Record returns the scheduling record for d.
func (p *LearningPair) Record(d Direction) (SchedulingRecord, bool) {
	return p.Schedule.Get(d)
}
