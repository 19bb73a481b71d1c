package bank

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// Connection is a linked bank account. No live bank integration exists;
// connections only carry metadata and a sync timestamp.
type Connection struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	BankName      string
	AccountNumber string
	Provider      string
	Status        Status
	LastSyncedAt  *time.Time
	CreatedAt     time.Time
}

// MaskedAccountNumber hides everything but the last four digits.
func (c *Connection) MaskedAccountNumber() string {
	n := c.AccountNumber
	if len(n) <= 4 {
		return n
	}

	return strings.Repeat("*", len(n)-4) + n[len(n)-4:]
}
