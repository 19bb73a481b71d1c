package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ListLimit caps the number of transactions returned to listing callers.
const ListLimit = 100

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*Account, error)
	CountAccountTransactions(ctx context.Context, accountID uuid.UUID) (int, error)

	CreateCategory(ctx context.Context, cat *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*Category, error)

	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	SetSubscriptionFlag(ctx context.Context, id uuid.UUID, isSubscription bool) error
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
	ListRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*Transaction, error)
}

// ActivityRecorder is notified after a transaction is stored so gamification
// state can be updated. Implemented by the gamify service.
type ActivityRecorder interface {
	TransactionRecorded(ctx context.Context, userID uuid.UUID) error
}

type Service struct {
	repo     Repository
	recorder ActivityRecorder
}

func NewService(repo Repository, recorder ActivityRecorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

type CreateAccountParams struct {
	Name           string
	Type           AccountType
	InitialBalance int64
}

func (s *Service) CreateAccount(ctx context.Context, userID uuid.UUID, params CreateAccountParams) (*Account, error) {
	acc := &Account{
		UserID:         userID,
		Name:           params.Name,
		Type:           params.Type,
		InitialBalance: params.InitialBalance,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) UpdateAccount(ctx context.Context, userID, id uuid.UUID, params CreateAccountParams) (*Account, error) {
	acc, err := s.ownedAccount(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	acc.Name = params.Name
	acc.Type = params.Type
	acc.InitialBalance = params.InitialBalance

	if err := s.repo.UpdateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// DeleteAccount removes an account. It fails with ErrAccountInUse while any
// transaction still references the account.
func (s *Service) DeleteAccount(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedAccount(ctx, userID, id); err != nil {
		return err
	}

	count, err := s.repo.CountAccountTransactions(ctx, id)
	if err != nil {
		return fmt.Errorf("counting account transactions: %w", err)
	}

	if count > 0 {
		return ErrAccountInUse
	}

	return s.repo.DeleteAccount(ctx, id)
}

func (s *Service) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

type CreateCategoryParams struct {
	Name  string
	Kind  Kind
	Color string
}

func (s *Service) CreateCategory(ctx context.Context, userID uuid.UUID, params CreateCategoryParams) (*Category, error) {
	cat := &Category{
		UserID: userID,
		Name:   params.Name,
		Kind:   params.Kind,
		Color:  params.Color,
	}
	if err := s.repo.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}

	return cat, nil
}

// DeleteCategory removes a category. Transactions that referenced it keep a
// null category reference; they are not deleted.
func (s *Service) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	cat, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	if cat.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	return s.repo.ListCategories(ctx, userID)
}

type CreateTransactionParams struct {
	AccountID      uuid.UUID
	CategoryID     uuid.UUID
	Amount         int64
	Kind           Kind
	OccurredAt     time.Time
	Note           string
	ReceiptID      *uuid.UUID
	IsSubscription bool
}

func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, params CreateTransactionParams) (*Transaction, error) {
	if params.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	if _, err := s.ownedAccount(ctx, userID, params.AccountID); err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if params.CategoryID != uuid.Nil {
		categoryID = &params.CategoryID
	}

	tx := &Transaction{
		UserID:         userID,
		AccountID:      params.AccountID,
		CategoryID:     categoryID,
		Amount:         params.Amount,
		Kind:           params.Kind,
		OccurredAt:     params.OccurredAt,
		Note:           params.Note,
		ReceiptID:      params.ReceiptID,
		IsSubscription: params.IsSubscription,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	if s.recorder != nil {
		if err := s.recorder.TransactionRecorded(ctx, userID); err != nil {
			return nil, fmt.Errorf("recording activity: %w", err)
		}
	}

	return tx, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if tx.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.DeleteTransaction(ctx, id)
}

// ToggleSubscription flips the recurring-charge flag on a transaction. This is
// the only field a stored transaction can change.
func (s *Service) ToggleSubscription(ctx context.Context, userID, id uuid.UUID, isSubscription bool) error {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}

	if tx.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.SetSubscriptionFlag(ctx, id, isSubscription)
}

// ListRecentTransactions returns the user's newest transactions, capped at
// ListLimit, with category and account loaded.
func (s *Service) ListRecentTransactions(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListRecentTransactions(ctx, userID, ListLimit)
}

func (s *Service) ownedAccount(ctx context.Context, userID, id uuid.UUID) (*Account, error) {
	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if acc.UserID != userID {
		return nil, ErrUnauthorized
	}

	return acc, nil
}
