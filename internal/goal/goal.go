package goal

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a goal or savings jar. The transition
// active -> completed happens exactly once, the moment the current amount
// reaches the target, and never regresses.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Goal is a savings target with a deadline.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  int64 // Amount in cents
	CurrentAmount int64
	Deadline      time.Time
	Status        Status
	Category      string
	CreatedAt     time.Time
}

// Jar is a themed savings bucket with the same completion semantics as Goal.
type Jar struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  int64
	CurrentAmount int64
	Color         string
	Emoji         string
	Deadline      *time.Time
	Status        Status
	CreatedAt     time.Time
}
