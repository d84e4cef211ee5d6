package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aldenmarsh/fitcoach/internal/db"
	"github.com/aldenmarsh/fitcoach/internal/domain"
	"github.com/aldenmarsh/fitcoach/internal/vector"
)

// noteTimeLayout is a fixed-width RFC3339 variant so that string ordering
// in SQLite matches chronological ordering at sub-second precision.
const noteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(conn db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: conn}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	query := `INSERT INTO notes (id, user_id, text, ingested_at, embedding)
		VALUES (?, ?, ?, ?, ?)`
	var blob interface{}
	if n.Embedding != nil {
		blob = vector.Encode(n.Embedding)
	}
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		n.UserID,
		n.Text,
		n.IngestedAt.UTC().Format(noteTimeLayout),
		blob,
	)
	if err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT id, user_id, text, ingested_at, embedding FROM notes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	n, err := scanNote(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}
	return n, nil
}

func (r *SQLiteNoteRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Note, error) {
	query := `SELECT id, user_id, text, ingested_at, embedding FROM notes
		WHERE user_id = ? ORDER BY ingested_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		n, err := scanNote(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return requireRow(res)
}

func (r *SQLiteNoteRepo) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting notes for user: %w", err)
	}
	return nil
}

func scanNote(scan func(dest ...any) error) (*domain.Note, error) {
	var (
		n          domain.Note
		ingestedAt string
		blob       []byte
	)
	if err := scan(&n.ID, &n.UserID, &n.Text, &ingestedAt, &blob); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, ingestedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing ingestion timestamp: %w", err)
	}
	n.IngestedAt = t
	if len(blob) > 0 {
		n.Embedding = vector.Decode(blob)
	}
	return &n, nil
}
