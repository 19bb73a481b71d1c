package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bank
type Repository interface {
	CreateConnection(ctx context.Context, c *Connection) error
	GetConnection(ctx context.Context, id uuid.UUID) (*Connection, error)
	UpdateConnection(ctx context.Context, c *Connection) error
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*Connection, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type ConnectParams struct {
	BankName      string
	AccountNumber string
	Provider      string
}

func (s *Service) Connect(ctx context.Context, userID uuid.UUID, params ConnectParams) (*Connection, error) {
	c := &Connection{
		UserID:        userID,
		BankName:      params.BankName,
		AccountNumber: params.AccountNumber,
		Provider:      params.Provider,
		Status:        StatusConnected,
	}

	if err := s.repo.CreateConnection(ctx, c); err != nil {
		return nil, fmt.Errorf("creating bank connection: %w", err)
	}

	return c, nil
}

// Sync stamps the connection as freshly synced. Actual statement data comes
// in through the CSV importer, not from here.
func (s *Service) Sync(ctx context.Context, userID, id uuid.UUID) (*Connection, error) {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if c.Status != StatusConnected {
		return nil, ErrDisconnected
	}

	now := s.now()
	c.LastSyncedAt = &now

	if err := s.repo.UpdateConnection(ctx, c); err != nil {
		return nil, fmt.Errorf("syncing bank connection: %w", err)
	}

	return c, nil
}

func (s *Service) Disconnect(ctx context.Context, userID, id uuid.UUID) error {
	c, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}

	c.Status = StatusDisconnected

	if err := s.repo.UpdateConnection(ctx, c); err != nil {
		return fmt.Errorf("disconnecting bank connection: %w", err)
	}

	return nil
}

func (s *Service) ListConnections(ctx context.Context, userID uuid.UUID) ([]*Connection, error) {
	return s.repo.ListConnections(ctx, userID)
}

func (s *Service) owned(ctx context.Context, userID, id uuid.UUID) (*Connection, error) {
	c, err := s.repo.GetConnection(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.UserID != userID {
		return nil, ErrUnauthorized
	}

	return c, nil
}
