package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*ledger.Account, error) {
	var acc ledger.Account

	var typeStr string

	if err := s.Scan(
		&acc.ID, &acc.UserID, &acc.Name, &typeStr, &acc.InitialBalance,
		&acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.Type = ledger.AccountType(typeStr)

	return &acc, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *ledger.Account) error {
	query := `
		INSERT INTO accounts (user_id, name, type, initial_balance, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.UserID,
		acc.Name,
		acc.Type,
		acc.InitialBalance,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	query := `
		SELECT id, user_id, name, type, initial_balance, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) UpdateAccount(ctx context.Context, acc *ledger.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, type = $2, initial_balance = $3, updated_at = NOW()
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, acc.Name, acc.Type, acc.InitialBalance, acc.ID)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

func (s *Store) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, error) {
	query := `
		SELECT id, user_id, name, type, initial_balance, created_at, updated_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*ledger.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) CountAccountTransactions(ctx context.Context, accountID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE account_id = $1`, accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting account transactions: %w", err)
	}

	return count, nil
}

func scanCategory(s scanner) (*ledger.Category, error) {
	var cat ledger.Category

	var kindStr string

	var color sql.NullString

	if err := s.Scan(&cat.ID, &cat.UserID, &cat.Name, &kindStr, &color, &cat.CreatedAt); err != nil {
		return nil, err
	}

	cat.Kind = ledger.Kind(kindStr)
	cat.Color = color.String

	return &cat, nil
}

func (s *Store) CreateCategory(ctx context.Context, cat *ledger.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, color, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		cat.UserID,
		cat.Name,
		cat.Kind,
		cat.Color,
	).Scan(&cat.ID, &cat.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*ledger.Category, error) {
	query := `
		SELECT id, user_id, name, type, color, created_at
		FROM categories
		WHERE id = $1
	`

	cat, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return cat, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	// Transactions referencing this category fall back to a null reference
	// via the ON DELETE SET NULL constraint.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID) ([]*ledger.Category, error) {
	query := `
		SELECT id, user_id, name, type, color, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*ledger.Category

	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

const selectTransactionColumns = `
	t.id, t.user_id, t.account_id, t.category_id, t.amount, t.type,
	t.occurred_at, t.note, t.receipt_id, t.is_subscription, t.created_at
`

func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var kindStr string

	var note sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.AccountID, &tx.CategoryID, &tx.Amount, &kindStr,
		&tx.OccurredAt, &note, &tx.ReceiptID, &tx.IsSubscription, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Kind = ledger.Kind(kindStr)
	tx.Note = note.String

	return &tx, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, account_id, category_id, amount, type, occurred_at, note, receipt_id, is_subscription, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.AccountID,
		tx.CategoryID,
		tx.Amount,
		tx.Kind,
		tx.OccurredAt,
		tx.Note,
		tx.ReceiptID,
		tx.IsSubscription,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) SetSubscriptionFlag(ctx context.Context, id uuid.UUID, isSubscription bool) error {
	query := `UPDATE transactions SET is_subscription = $1 WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, isSubscription, id); err != nil {
		return fmt.Errorf("setting subscription flag: %w", err)
	}

	return nil
}

// ListTransactions returns every transaction the user has ever recorded,
// oldest first. The aggregation layer works over this full set.
func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.user_id = $1
		ORDER BY t.occurred_at ASC, t.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListRecentTransactions returns the newest transactions with their category
// and account loaded via JOIN.
func (s *Store) ListRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `,
		c.id, c.user_id, c.name, c.type, c.color, c.created_at,
		a.id, a.user_id, a.name, a.type, a.initial_balance, a.created_at, a.updated_at
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		JOIN accounts a ON t.account_id = a.id
		WHERE t.user_id = $1
		ORDER BY t.occurred_at DESC, t.created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		var tx ledger.Transaction

		var kindStr string

		var note sql.NullString

		var (
			catID        *uuid.UUID
			catUserID    *uuid.UUID
			catName      sql.NullString
			catKind      sql.NullString
			catColor     sql.NullString
			catCreatedAt sql.NullTime
		)

		var (
			acc        ledger.Account
			accTypeStr string
		)

		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.AccountID, &tx.CategoryID, &tx.Amount, &kindStr,
			&tx.OccurredAt, &note, &tx.ReceiptID, &tx.IsSubscription, &tx.CreatedAt,
			&catID, &catUserID, &catName, &catKind, &catColor, &catCreatedAt,
			&acc.ID, &acc.UserID, &acc.Name, &accTypeStr, &acc.InitialBalance, &acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning recent transaction: %w", err)
		}

		tx.Kind = ledger.Kind(kindStr)
		tx.Note = note.String

		if catID != nil {
			tx.Category = &ledger.Category{
				ID:        *catID,
				UserID:    *catUserID,
				Name:      catName.String,
				Kind:      ledger.Kind(catKind.String),
				Color:     catColor.String,
				CreatedAt: catCreatedAt.Time,
			}
		}

		acc.Type = ledger.AccountType(accTypeStr)
		tx.Account = &acc

		txs = append(txs, &tx)
	}

	return txs, rows.Err()
}

func collectTransactions(rows *sql.Rows) ([]*ledger.Transaction, error) {
	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}
