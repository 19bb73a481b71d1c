package receipt

import (
	"time"

	"github.com/google/uuid"
)

// Receipt is the metadata of an uploaded receipt file. The bytes live in
// the file store under the receipt's ID.
type Receipt struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
