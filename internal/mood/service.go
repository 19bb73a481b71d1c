package mood

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/ledger"
)

// ListLimit caps how many recent logs are returned.
const ListLimit = 30

// DefaultLookbackDays is the analysis window used when none is given.
const DefaultLookbackDays = 30

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=mood
type Repository interface {
	UpsertLog(ctx context.Context, l *Log) error
	ListLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*Log, error)
}

type Service struct {
	repo    Repository
	ledgers ledger.Repository
	now     func() time.Time
}

func NewService(repo Repository, ledgers ledger.Repository) *Service {
	return &Service{
		repo:    repo,
		ledgers: ledgers,
		now:     time.Now,
	}
}

// LogMood records the user's mood for today, snapshotting the day's expense
// total so that later analysis does not shift as transactions change.
func (s *Service) LogMood(ctx context.Context, userID uuid.UUID, kind Kind, note string) (*Log, error) {
	if !kind.Valid() {
		return nil, ErrInvalidMood
	}

	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	txs, err := s.ledgers.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	l := &Log{
		UserID:         userID,
		Day:            day,
		Mood:           kind,
		Note:           note,
		SpendingAmount: analytics.DaySpending(txs, day),
	}

	if err := s.repo.UpsertLog(ctx, l); err != nil {
		return nil, fmt.Errorf("saving mood log: %w", err)
	}

	return l, nil
}

func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID) ([]*Log, error) {
	return s.repo.ListLogs(ctx, userID, ListLimit)
}

// Analyze correlates logged moods with the spending snapshots taken when each
// mood was recorded, considering only logs inside the lookback window.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, days int) (Insights, error) {
	if days < 1 {
		days = DefaultLookbackDays
	}

	// At most one log exists per day, so the window also bounds the rows.
	logs, err := s.repo.ListLogs(ctx, userID, days)
	if err != nil {
		return Insights{}, fmt.Errorf("listing mood logs: %w", err)
	}

	cutoff := s.now().UTC().AddDate(0, 0, -days)

	var recent []*Log
	for _, l := range logs {
		if !l.Day.Before(cutoff) {
			recent = append(recent, l)
		}
	}

	return Correlate(recent), nil
}

// Correlate aggregates mood logs into per-mood spending stats. Moods never
// logged are omitted.
func Correlate(logs []*Log) Insights {
	order := []Kind{Happy, Excited, Neutral, Stressed, Sad}

	insights := Insights{TotalLogs: len(logs), Logs: logs}

	totals := make(map[Kind]*Correlation)

	for _, l := range logs {
		c, ok := totals[l.Mood]
		if !ok {
			c = &Correlation{Mood: l.Mood}
			totals[l.Mood] = c
		}

		c.Days++
		c.TotalSpending += l.SpendingAmount
	}

	var highest, lowest *Correlation

	for _, k := range order {
		c, ok := totals[k]
		if !ok {
			continue
		}

		c.AverageSpending = c.TotalSpending / int64(c.Days)

		if highest == nil || c.AverageSpending > highest.AverageSpending {
			highest = c
		}

		if lowest == nil || c.AverageSpending < lowest.AverageSpending {
			lowest = c
		}

		insights.Correlations = append(insights.Correlations, *c)
	}

	if highest != nil {
		insights.HighestMood = highest.Mood
		insights.LowestMood = lowest.Mood
	}

	return insights
}
