package users

import (
	"context"

	"github.com/forgeapi/notes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
}
