// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login, issuing short-lived JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/forgeapi/notes/internal/common"
	"github.com/forgeapi/notes/internal/dbx"
	"github.com/forgeapi/notes/internal/server/auth"
	"github.com/forgeapi/notes/internal/server/config"
	"github.com/forgeapi/notes/internal/server/models"
	"github.com/forgeapi/notes/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: hash the password and create the user
// - Login: verify credentials and mint a token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register hashes the password and creates a new user. Empty name or password
// yields ErrorInvalidInput; a name collision yields ErrorConflict. The
// returned user carries the hash internally but callers must only expose the
// public fields.
func (s *UserService) Register(ctx context.Context, name, password string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, common.ErrorInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		created, err := repo.Create(ctx, &models.User{Name: name, PasswordHash: hash})
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed token.
// Unknown user and wrong password both yield ErrorUnauthorized so callers
// cannot enumerate user names.
func (s *UserService) Login(ctx context.Context, name, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Name, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
