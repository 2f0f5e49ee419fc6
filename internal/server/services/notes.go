package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/forgeapi/notes/internal/common"
	"github.com/forgeapi/notes/internal/server/config"
	"github.com/forgeapi/notes/internal/server/models"
	"github.com/forgeapi/notes/internal/server/repositories/repomanager"
)

// NoteService implements CRUD over the notes resource.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	result, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	note, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return note, nil
}

func (s *NoteService) Create(ctx context.Context, text string) (*models.Note, error) {
	if text == "" {
		return nil, common.ErrorInvalidInput
	}
	repo := s.repomanager.Notes(s.db)
	note, err := repo.Create(ctx, text)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, id string, text string) (*models.Note, error) {
	if text == "" {
		return nil, common.ErrorInvalidInput
	}
	repo := s.repomanager.Notes(s.db)
	note, err := repo.Update(ctx, id, text)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Notes(s.db)
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
