package receipt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore keeps receipt bytes as flat files named by receipt ID.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating receipt directory: %w", err)
	}

	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) path(id uuid.UUID) string {
	return filepath.Join(d.dir, id.String())
}

func (d *DiskStore) Save(id uuid.UUID, r io.Reader) (int64, error) {
	f, err := os.Create(d.path(id))
	if err != nil {
		return 0, fmt.Errorf("creating receipt file: %w", err)
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("writing receipt file: %w", err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing receipt file: %w", err)
	}

	return n, nil
}

func (d *DiskStore) Open(id uuid.UUID) (io.ReadCloser, error) {
	f, err := os.Open(d.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("opening receipt file: %w", err)
	}

	return f, nil
}

func (d *DiskStore) Remove(id uuid.UUID) error {
	if err := os.Remove(d.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing receipt file: %w", err)
	}

	return nil
}
