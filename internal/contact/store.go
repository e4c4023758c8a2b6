package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jinchengKuang/jay-kuang/internal/db"
)

// Store persists contact messages so submissions survive even when the
// relay endpoint is down or unconfigured.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new message. If m.ID is empty a UUID is generated.
// The generated ID is written back to m.
func (s *Store) Create(ctx context.Context, m *Message) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	relayed := 0
	if m.Relayed {
		relayed = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, subject, body, relayed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Subject, m.Body, relayed,
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

// MarkRelayed records that a message was successfully forwarded.
func (s *Store) MarkRelayed(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET relayed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking message relayed: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}

// List returns messages, newest first, up to limit (0 means no limit).
func (s *Store) List(ctx context.Context, limit int) ([]Message, error) {
	query := `
		SELECT id, name, email, subject, body, relayed, created_at
		FROM contact_messages ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			m       Message
			relayed int
			created string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &relayed, &created); err != nil {
			return nil, fmt.Errorf("scanning message: %w", err)
		}
		m.Relayed = relayed != 0
		if t, err := time.Parse("2006-01-02 15:04:05", created); err == nil {
			m.CreatedAt = t
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
