package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ananyadas/finquest/internal/ledger"
)

// Service loads a user's records and runs the aggregation functions over
// them. All derivation is recomputed per call; nothing is cached.
type Service struct {
	repo ledger.Repository
	now  func() time.Time
}

func NewService(repo ledger.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (Summary, error) {
	accounts, categories, txs, err := s.load(ctx, userID)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(accounts, categories, txs, s.now()), nil
}

func (s *Service) SpendingTrends(ctx context.Context, userID uuid.UUID, period Period, count int) ([]TrendBucket, error) {
	txs, err := s.repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Trends(txs, period, count, s.now()), nil
}

func (s *Service) CategoryComparison(ctx context.Context, userID uuid.UUID, months int) (map[string]ComparisonSeries, error) {
	_, categories, txs, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return CategoryComparison(categories, txs, months, s.now()), nil
}

func (s *Service) CashFlowForecast(ctx context.Context, userID uuid.UUID, monthsAhead int) (Forecast, error) {
	accounts, _, txs, err := s.load(ctx, userID)
	if err != nil {
		return Forecast{}, err
	}

	return CashFlowForecast(accounts, txs, monthsAhead, s.now()), nil
}

func (s *Service) SubscriptionAnalytics(ctx context.Context, userID uuid.UUID) (SubscriptionReport, error) {
	_, categories, txs, err := s.load(ctx, userID)
	if err != nil {
		return SubscriptionReport{}, err
	}

	return Subscriptions(categories, txs), nil
}

// load fetches the user's accounts, categories and transactions in parallel.
func (s *Service) load(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, []*ledger.Category, []*ledger.Transaction, error) {
	var (
		accounts   []*ledger.Account
		categories []*ledger.Category
		txs        []*ledger.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		accounts, err = s.repo.ListAccounts(ctx, userID)

		return err
	})

	g.Go(func() error {
		var err error
		categories, err = s.repo.ListCategories(ctx, userID)

		return err
	})

	g.Go(func() error {
		var err error
		txs, err = s.repo.ListTransactions(ctx, userID)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	return accounts, categories, txs, nil
}
