package receipt

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// MaxSizeBytes caps uploads at 10 MiB.
const MaxSizeBytes = 10 << 20

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=receipt
type Repository interface {
	CreateReceipt(ctx context.Context, r *Receipt) error
	GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error)
	SetReceiptSize(ctx context.Context, id uuid.UUID, size int64) error
	DeleteReceipt(ctx context.Context, id uuid.UUID) error
}

// FileStore holds receipt bytes, keyed by receipt ID.
type FileStore interface {
	Save(id uuid.UUID, r io.Reader) (int64, error)
	Open(id uuid.UUID) (io.ReadCloser, error)
	Remove(id uuid.UUID) error
}

type Service struct {
	repo  Repository
	files FileStore
}

func NewService(repo Repository, files FileStore) *Service {
	return &Service{repo: repo, files: files}
}

// Upload stores the file and its metadata. The metadata row is written first
// so a crash mid-upload leaves a row without bytes, never orphaned bytes.
func (s *Service) Upload(ctx context.Context, userID uuid.UUID, fileName, contentType string, body io.Reader) (*Receipt, error) {
	rec := &Receipt{
		UserID:      userID,
		FileName:    fileName,
		ContentType: contentType,
	}

	if err := s.repo.CreateReceipt(ctx, rec); err != nil {
		return nil, fmt.Errorf("creating receipt: %w", err)
	}

	size, err := s.files.Save(rec.ID, io.LimitReader(body, MaxSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("saving receipt file: %w", err)
	}

	if size > MaxSizeBytes {
		_ = s.files.Remove(rec.ID)
		_ = s.repo.DeleteReceipt(ctx, rec.ID)

		return nil, ErrTooLarge
	}

	if err := s.repo.SetReceiptSize(ctx, rec.ID, size); err != nil {
		return nil, fmt.Errorf("recording receipt size: %w", err)
	}

	rec.SizeBytes = size

	return rec, nil
}

// Open returns the receipt metadata and a reader over its bytes. The caller
// closes the reader.
func (s *Service) Open(ctx context.Context, userID, id uuid.UUID) (*Receipt, io.ReadCloser, error) {
	rec, err := s.repo.GetReceipt(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if rec.UserID != userID {
		return nil, nil, ErrUnauthorized
	}

	body, err := s.files.Open(rec.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("opening receipt file: %w", err)
	}

	return rec, body, nil
}
