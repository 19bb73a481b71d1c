package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/bank"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectConnectionColumns = `
	id, user_id, bank_name, account_number, provider, status, last_synced_at, created_at
`

func scanConnection(s scanner) (*bank.Connection, error) {
	var c bank.Connection

	var statusStr string

	var lastSyncedAt sql.NullTime

	if err := s.Scan(
		&c.ID, &c.UserID, &c.BankName, &c.AccountNumber, &c.Provider,
		&statusStr, &lastSyncedAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = bank.Status(statusStr)

	if lastSyncedAt.Valid {
		c.LastSyncedAt = &lastSyncedAt.Time
	}

	return &c, nil
}

func (s *Store) CreateConnection(ctx context.Context, c *bank.Connection) error {
	query := `
		INSERT INTO bank_connections (user_id, bank_name, account_number, provider, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID, c.BankName, c.AccountNumber, c.Provider, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bank connection: %w", err)
	}

	return nil
}

func (s *Store) GetConnection(ctx context.Context, id uuid.UUID) (*bank.Connection, error) {
	query := `SELECT ` + selectConnectionColumns + ` FROM bank_connections WHERE id = $1`

	c, err := scanConnection(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bank.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank connection: %w", err)
	}

	return c, nil
}

func (s *Store) UpdateConnection(ctx context.Context, c *bank.Connection) error {
	query := `
		UPDATE bank_connections
		SET status = $1, last_synced_at = $2
		WHERE id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, c.Status, c.LastSyncedAt, c.ID); err != nil {
		return fmt.Errorf("updating bank connection: %w", err)
	}

	return nil
}

func (s *Store) ListConnections(ctx context.Context, userID uuid.UUID) ([]*bank.Connection, error) {
	query := `SELECT ` + selectConnectionColumns + `
		FROM bank_connections
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bank connections: %w", err)
	}
	defer rows.Close()

	var connections []*bank.Connection

	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank connection: %w", err)
		}

		connections = append(connections, c)
	}

	return connections, rows.Err()
}
