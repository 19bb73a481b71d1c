package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/mood"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) UpsertLog(ctx context.Context, l *mood.Log) error {
	query := `
		INSERT INTO mood_logs (user_id, day, mood, note, spending_amount)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		ON CONFLICT (user_id, day) DO UPDATE SET
			mood = EXCLUDED.mood,
			note = EXCLUDED.note,
			spending_amount = EXCLUDED.spending_amount
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		l.UserID, l.Day, l.Mood, l.Note, l.SpendingAmount,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("upserting mood log: %w", err)
	}

	return nil
}

func (s *Store) ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*mood.Log, error) {
	query := `
		SELECT id, user_id, day, mood, note, spending_amount
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY day DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing mood logs: %w", err)
	}
	defer rows.Close()

	var logs []*mood.Log

	for rows.Next() {
		var l mood.Log

		var moodStr string

		var note sql.NullString

		if err := rows.Scan(&l.ID, &l.UserID, &l.Day, &moodStr, &note, &l.SpendingAmount); err != nil {
			return nil, fmt.Errorf("scanning mood log: %w", err)
		}

		l.Mood = mood.Kind(moodStr)
		l.Note = note.String

		logs = append(logs, &l)
	}

	return logs, rows.Err()
}
