package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

type accountResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Type           ledger.AccountType `json:"type"`
	InitialBalance int64              `json:"initial_balance"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
}

func toResponse(acc *ledger.Account) accountResponse {
	return accountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Type:           acc.Type,
		InitialBalance: acc.InitialBalance,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

func toResponseList(accounts []*ledger.Account) []accountResponse {
	resp := make([]accountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = toResponse(acc)
	}

	return resp
}
