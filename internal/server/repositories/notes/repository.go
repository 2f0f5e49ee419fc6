package notes

import (
	"context"

	"github.com/forgeapi/notes/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id string) (*models.Note, error)
	Create(ctx context.Context, text string) (*models.Note, error)
	Update(ctx context.Context, id string, text string) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}
