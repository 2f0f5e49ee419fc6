package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/forgeapi/notes/internal/common"
	"github.com/forgeapi/notes/internal/dbx"
	"github.com/forgeapi/notes/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Note, error) {
	query := `SELECT id, text FROM notes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Text); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	query :=
		`SELECT id, text FROM notes
		 WHERE id = $1
		 `

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.Text)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Create(ctx context.Context, text string) (*models.Note, error) {
	query :=
		`INSERT INTO notes (id, text)
         VALUES ($1, $2)
		 RETURNING id
		 `

	note := &models.Note{ID: uuid.NewString(), Text: text}

	if err := r.db.QueryRowContext(ctx, query, note.ID, note.Text).Scan(&note.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, text string) (*models.Note, error) {
	query :=
		`UPDATE notes SET text = $1
		 WHERE id = $2
		 RETURNING id
		 `

	note := &models.Note{Text: text}
	err := r.db.QueryRowContext(ctx, query, text, id).Scan(&note.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1
		 RETURNING id
		 `

	var deleted string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
