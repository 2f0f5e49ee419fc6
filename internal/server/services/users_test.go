package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/forgeapi/notes/internal/common"
	"github.com/forgeapi/notes/internal/dbx"
	"github.com/forgeapi/notes/internal/server/auth"
	"github.com/forgeapi/notes/internal/server/config"
	"github.com/forgeapi/notes/internal/server/models"
	notesrepo "github.com/forgeapi/notes/internal/server/repositories/notes"
	usersrepo "github.com/forgeapi/notes/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	getOut *models.User
	getErr error

	lastCreated *models.User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastCreated = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "u-1"
	return u, nil
}

func (f *fakeUsersRepo) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRepoManager struct {
	users usersrepo.Repository
	notes notesrepo.Repository
}

func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository             { return f.users }
func (f *fakeRepoManager) Notes(db dbx.DBTX) notesrepo.Repository             { return f.notes }

func newUserService(t *testing.T, repo usersrepo.Repository) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(db, &fakeRepoManager{users: repo}, cfg), mock
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s, mock := newUserService(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	user, err := s.Register(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.Name != "alice" || user.ID == "" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if repo.lastCreated.PasswordHash == "" || repo.lastCreated.PasswordHash == "s3cret" {
		t.Fatalf("password must be stored as a hash, got %q", repo.lastCreated.PasswordHash)
	}
	if !auth.VerifyPassword("s3cret", repo.lastCreated.PasswordHash) {
		t.Fatalf("stored hash must verify against the original password")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("registration must run in a transaction: %v", err)
	}
}

func TestRegister_EmptyInput(t *testing.T) {
	s, mock := newUserService(t, &fakeUsersRepo{})

	for _, tc := range []struct{ name, password string }{
		{"", "s3cret"},
		{"alice", ""},
		{"", ""},
	} {
		_, err := s.Register(context.Background(), tc.name, tc.password)
		if !errors.Is(err, common.ErrorInvalidInput) {
			t.Fatalf("Register(%q, %q): expected ErrorInvalidInput, got %v", tc.name, tc.password, err)
		}
	}

	// Validation failures never touch the database.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db activity: %v", err)
	}
}

func TestRegister_ConflictPassesThrough(t *testing.T) {
	s, mock := newUserService(t, &fakeUsersRepo{createErr: common.ErrorConflict})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Register(context.Background(), "alice", "s3cret")
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected common.ErrorConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("failed registration must roll back: %v", err)
	}
}

func TestRegister_DBErrorYieldsInternal(t *testing.T) {
	s, mock := newUserService(t, &fakeUsersRepo{createErr: errors.New("db down")})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := s.Register(context.Background(), "alice", "s3cret")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}

// --- Login ---

func storedUser(t *testing.T, name, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{ID: "u-1", Name: name, PasswordHash: hash}
}

func TestLogin_Success(t *testing.T) {
	s, _ := newUserService(t, &fakeUsersRepo{getOut: storedUser(t, "alice", "s3cret")})

	token, err := s.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	subject, err := auth.GetSubjectFromToken(token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token must decode: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("token subject mismatch: got %q", subject)
	}
}

func TestLogin_UnknownUserYieldsUnauthorized(t *testing.T) {
	s, _ := newUserService(t, &fakeUsersRepo{getErr: common.ErrorNotFound})

	_, err := s.Login(context.Background(), "nobody", "whatever")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_WrongPasswordYieldsUnauthorized(t *testing.T) {
	s, _ := newUserService(t, &fakeUsersRepo{getOut: storedUser(t, "alice", "s3cret")})

	_, err := s.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_DBErrorYieldsInternal(t *testing.T) {
	s, _ := newUserService(t, &fakeUsersRepo{getErr: errors.New("db down")})

	_, err := s.Login(context.Background(), "alice", "s3cret")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected common.ErrorInternal, got %v", err)
	}
}
