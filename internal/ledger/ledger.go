package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind determines the sign of a transaction's effect on a balance.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// AccountType tags the kind of account an entry belongs to.
type AccountType string

const (
	AccountBank       AccountType = "bank"
	AccountCash       AccountType = "cash"
	AccountCredit     AccountType = "credit"
	AccountInvestment AccountType = "investment"
)

// Account represents a money account owned by a user.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           AccountType
	InitialBalance int64 // Amount in cents
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Category labels transactions as a named income or expense bucket.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      Kind
	Color     string // Hex color; empty if unset
	CreatedAt time.Time
}

// Transaction represents a single financial entry. Amount is always
// positive; Kind determines whether it adds to or subtracts from a balance.
type Transaction struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AccountID      uuid.UUID
	CategoryID     *uuid.UUID
	Amount         int64 // Amount in cents
	Kind           Kind
	OccurredAt     time.Time
	Note           string
	ReceiptID      *uuid.UUID
	IsSubscription bool
	CreatedAt      time.Time
	Category       *Category // Loaded via JOIN
	Account        *Account  // Loaded via JOIN
}

// Signed returns the transaction's effect on a balance.
func (t *Transaction) Signed() int64 {
	if t.Kind == KindIncome {
		return t.Amount
	}

	return -t.Amount
}
