package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pautahq/pauta/internal/db"
	"github.com/pautahq/pauta/internal/domain"
	"github.com/pautahq/pauta/internal/repository"
)

// defaultColumns is the board seeded for a fresh database, mirroring the
// production workflow stages.
var defaultColumns = []struct {
	Title string
	Type  domain.ColumnType
	Color string
}{
	{"Ideas", domain.ColumnIdea, "#d3869b"},
	{"Drafting", domain.ColumnDraft, "#83a598"},
	{"In Review", domain.ColumnReview, "#fabd2f"},
	{"Approved", domain.ColumnApproved, "#8ec07c"},
	{"Scheduled", domain.ColumnScheduled, "#fe8019"},
	{"Published", domain.ColumnPublished, "#b8bb26"},
}

type columnService struct {
	columns repository.ColumnRepo
	uow     db.UnitOfWork
}

func NewColumnService(columns repository.ColumnRepo, uow db.UnitOfWork) ColumnService {
	return &columnService{columns: columns, uow: uow}
}

func (s *columnService) Create(ctx context.Context, col *domain.KanbanColumn) error {
	if col.Title == "" {
		return fmt.Errorf("column title is required")
	}
	if col.ID == "" {
		col.ID = uuid.New().String()
	}
	if col.Type == "" {
		col.Type = domain.ColumnCustom
	}
	if !domain.ValidColumnTypes[string(col.Type)] {
		return fmt.Errorf("unknown column type %q", col.Type)
	}
	now := time.Now().UTC()
	col.CreatedAt = now
	col.UpdatedAt = now

	// New columns append to the end of the board.
	n, err := s.columns.Count(ctx)
	if err != nil {
		return err
	}
	col.Position = n
	return s.columns.Create(ctx, col)
}

func (s *columnService) GetByID(ctx context.Context, id string) (*domain.KanbanColumn, error) {
	return s.columns.GetByID(ctx, id)
}

func (s *columnService) List(ctx context.Context) ([]*domain.KanbanColumn, error) {
	return s.columns.List(ctx)
}

func (s *columnService) Update(ctx context.Context, col *domain.KanbanColumn) error {
	if col.Title == "" {
		return fmt.Errorf("column title is required")
	}
	col.UpdatedAt = time.Now().UTC()
	return s.columns.Update(ctx, col)
}

func (s *columnService) Delete(ctx context.Context, id string) error {
	return s.columns.Delete(ctx, id)
}

// Reorder rewrites column positions to match the given ID order. Every board
// column must appear exactly once.
func (s *columnService) Reorder(ctx context.Context, orderedIDs []string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txColumns := repository.NewSQLiteColumnRepo(tx)

		cols, err := txColumns.List(ctx)
		if err != nil {
			return err
		}
		if len(orderedIDs) != len(cols) {
			return fmt.Errorf("reorder lists %d columns, board has %d", len(orderedIDs), len(cols))
		}
		byID := make(map[string]*domain.KanbanColumn, len(cols))
		for _, col := range cols {
			byID[col.ID] = col
		}

		now := time.Now().UTC()
		for i, id := range orderedIDs {
			col, ok := byID[id]
			if !ok {
				return fmt.Errorf("unknown column %q in reorder", id)
			}
			delete(byID, id)
			if col.Position == i {
				continue
			}
			col.Position = i
			col.UpdatedAt = now
			if err := txColumns.Update(ctx, col); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *columnService) EnsureDefaults(ctx context.Context) ([]*domain.KanbanColumn, error) {
	n, err := s.columns.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		now := time.Now().UTC()
		for i, d := range defaultColumns {
			col := &domain.KanbanColumn{
				ID:        uuid.New().String(),
				Title:     d.Title,
				Type:      d.Type,
				Position:  i,
				Color:     d.Color,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.columns.Create(ctx, col); err != nil {
				return nil, fmt.Errorf("seeding column %q: %w", d.Title, err)
			}
		}
	}
	return s.columns.List(ctx)
}
