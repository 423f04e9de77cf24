package api

import (
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/service"
)

// ListRequest is the payload for creating or renaming a list.
type ListRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// PairRequest is the payload for adding or editing a pair.
type PairRequest struct {
	Front string `json:"front" validate:"required,max=1000"`
	Back  string `json:"back"  validate:"required,max=1000"`
}

// PostponeRequest is the payload for postponing one direction of a pair.
type PostponeRequest struct {
	Direction string `json:"direction" validate:"required,oneof=forward reverse"`
	Days      int    `json:"days"      validate:"required,min=1,max=36500"`
}

// NextRequest selects the list, mode and direction to drill.
type NextRequest struct {
	ListID    string `json:"listId"    validate:"required"`
	Mode      string `json:"mode"      validate:"required,oneof=all due dueAndRecentWrong"`
	Direction string `json:"direction" validate:"required,oneof=forward reverse"`
}

// GradeRequest carries the learner's self-assessment.
type GradeRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

// ListResponse is a list with its pair count.
type ListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	PairCount int       `json:"pairCount"`
}

// ImportResponse summarizes an imported document.
type ImportResponse struct {
	Lists int `json:"lists"`
	Pairs int `json:"pairs"`
}

func listToResponse(l service.ListSummary) ListResponse {
	return ListResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		PairCount: l.PairCount,
	}
}

func wordListToResponse(l *domain.WordList) ListResponse {
	return ListResponse{ID: l.ID, Name: l.Name, CreatedAt: l.CreatedAt}
}
