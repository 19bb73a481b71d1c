package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/receipt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateReceipt(ctx context.Context, r *receipt.Receipt) error {
	query := `
		INSERT INTO receipts (user_id, file_name, content_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		r.UserID, r.FileName, r.ContentType, r.SizeBytes,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating receipt: %w", err)
	}

	return nil
}

func (s *Store) GetReceipt(ctx context.Context, id uuid.UUID) (*receipt.Receipt, error) {
	query := `
		SELECT id, user_id, file_name, content_type, size_bytes, created_at
		FROM receipts
		WHERE id = $1
	`

	var r receipt.Receipt

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.UserID, &r.FileName, &r.ContentType, &r.SizeBytes, &r.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, receipt.ErrNotFound
		}

		return nil, fmt.Errorf("getting receipt: %w", err)
	}

	return &r, nil
}

func (s *Store) SetReceiptSize(ctx context.Context, id uuid.UUID, size int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE receipts SET size_bytes = $1 WHERE id = $2`, size, id); err != nil {
		return fmt.Errorf("setting receipt size: %w", err)
	}

	return nil
}

func (s *Store) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting receipt: %w", err)
	}

	return nil
}
