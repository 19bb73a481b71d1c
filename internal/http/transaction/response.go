package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

type transactionResponse struct {
	ID             uuid.UUID         `json:"id"`
	AccountID      uuid.UUID         `json:"account_id"`
	CategoryID     *uuid.UUID        `json:"category_id,omitempty"`
	Amount         int64             `json:"amount"`
	Kind           ledger.Kind       `json:"kind"`
	OccurredAt     time.Time         `json:"occurred_at"`
	Note           string            `json:"note,omitempty"`
	ReceiptID      *uuid.UUID        `json:"receipt_id,omitempty"`
	IsSubscription bool              `json:"is_subscription"`
	CreatedAt      time.Time         `json:"created_at"`
	Category       *categoryResponse `json:"category,omitempty"`
	Account        *accountResponse  `json:"account,omitempty"`
}

type categoryResponse struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Kind  ledger.Kind `json:"kind"`
	Color string      `json:"color,omitempty"`
}

type accountResponse struct {
	ID   uuid.UUID          `json:"id"`
	Name string             `json:"name"`
	Type ledger.AccountType `json:"type"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:             tx.ID,
		AccountID:      tx.AccountID,
		CategoryID:     tx.CategoryID,
		Amount:         tx.Amount,
		Kind:           tx.Kind,
		OccurredAt:     tx.OccurredAt,
		Note:           tx.Note,
		ReceiptID:      tx.ReceiptID,
		IsSubscription: tx.IsSubscription,
		CreatedAt:      tx.CreatedAt,
	}

	if tx.Category != nil {
		resp.Category = &categoryResponse{
			ID:    tx.Category.ID,
			Name:  tx.Category.Name,
			Kind:  tx.Category.Kind,
			Color: tx.Category.Color,
		}
	}

	if tx.Account != nil {
		resp.Account = &accountResponse{
			ID:   tx.Account.ID,
			Name: tx.Account.Name,
			Type: tx.Account.Type,
		}
	}

	return resp
}

func toResponseList(txs []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
