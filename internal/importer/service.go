package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/ledger"
)

// TransactionCreator is the slice of the ledger service the importer needs.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, params ledger.CreateTransactionParams) (*ledger.Transaction, error)
}

type Service struct {
	parser *Parser
	txs    TransactionCreator
}

func NewService(txs TransactionCreator) *Service {
	return &Service{
		parser: NewParser(),
		txs:    txs,
	}
}

// ImportStatement parses a CSV bank statement and records every parsed row
// as a transaction on the given account. It returns how many were created.
func (s *Service) ImportStatement(ctx context.Context, userID, accountID uuid.UUID, r io.Reader) (int, error) {
	params, err := s.parser.Parse(r)
	if err != nil {
		return 0, err
	}

	created := 0

	for _, p := range params {
		p.AccountID = accountID

		if _, err := s.txs.CreateTransaction(ctx, userID, p); err != nil {
			return created, fmt.Errorf("importing row %d: %w", created+1, err)
		}

		created++
	}

	return created, nil
}
