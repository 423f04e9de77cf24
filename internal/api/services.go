package api

import (
	"context"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/spreadsheet"
	"github.com/phrazzld/vocab-drill/internal/training"
)

// ListService is the part of the trainer serving list and pair management.
type ListService interface {
	Lists(ctx context.Context) []service.ListSummary
	CreateList(ctx context.Context, name string) (*domain.WordList, error)
	RenameList(ctx context.Context, id, name string) (*domain.WordList, error)
	DeleteList(ctx context.Context, id string) error

	Browse(ctx context.Context, listID, query string, order service.SortOrder) ([]domain.LearningPair, error)
	AddPair(ctx context.Context, listID, front, back string) (*domain.LearningPair, error)
	UploadPairs(ctx context.Context, listID string, rows []spreadsheet.Row) (*service.UploadResult, error)
	EditPair(ctx context.Context, id, front, back string) (*domain.LearningPair, error)
	DeletePair(ctx context.Context, id string) error
	Postpone(ctx context.Context, pairID string, dir domain.Direction, days int) (*domain.LearningPair, error)
}

// TrainingService is the part of the trainer serving the drill session.
type TrainingService interface {
	Stats(ctx context.Context, listID string, dir domain.Direction) (training.Stats, error)
	Next(ctx context.Context, sel training.Selection) (*service.Card, error)
	Current(ctx context.Context) (*service.Card, error)
	Reveal(ctx context.Context) (*service.Card, error)
	Grade(ctx context.Context, correct bool) (*service.GradeResult, error)
}

// TransferService is the part of the trainer serving export, import and reset.
type TransferService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (*domain.Document, error)
	Reset(ctx context.Context) error
}

// Trainer is everything the router needs. *service.Trainer implements it.
type Trainer interface {
	ListService
	TrainingService
	TransferService
}

var _ Trainer = (*service.Trainer)(nil)
