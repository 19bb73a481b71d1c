package mood_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/ledger"
	"github.com/ananyadas/finquest/internal/mood"
)

func TestService_LogMood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	ledgers := ledger.NewMockRepository(ctrl)
	ledgers.EXPECT().
		ListTransactions(gomock.Any(), userID).
		Return([]*ledger.Transaction{
			{Amount: 15000, Kind: ledger.KindExpense, OccurredAt: today.Add(10 * time.Hour)},
			{Amount: 99999, Kind: ledger.KindExpense, OccurredAt: today.AddDate(0, 0, -2)},
			{Amount: 50000, Kind: ledger.KindIncome, OccurredAt: today.Add(9 * time.Hour)},
		}, nil)

	repo := mood.NewMockRepository(ctrl)
	repo.EXPECT().
		UpsertLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *mood.Log) error {
			l.ID = uuid.New()
			return nil
		})

	svc := mood.NewService(repo, ledgers)

	got, err := svc.LogMood(context.Background(), userID, mood.Stressed, "exam week")
	require.NoError(t, err)

	assert.Equal(t, today, got.Day)
	assert.Equal(t, mood.Stressed, got.Mood)

	// Only today's expenses count toward the snapshot.
	assert.Equal(t, int64(15000), got.SpendingAmount)
}

func TestService_LogMood_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mood.NewService(mood.NewMockRepository(ctrl), ledger.NewMockRepository(ctrl))

	_, err := svc.LogMood(context.Background(), uuid.New(), mood.Kind("furious"), "")
	assert.ErrorIs(t, err, mood.ErrInvalidMood)
}

func TestCorrelate(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	logs := []*mood.Log{
		{Day: day(0), Mood: mood.Happy, SpendingAmount: 10000},
		{Day: day(1), Mood: mood.Happy, SpendingAmount: 30000},
		{Day: day(2), Mood: mood.Stressed, SpendingAmount: 60000},
		{Day: day(3), Mood: mood.Sad, SpendingAmount: 5000},
	}

	insights := mood.Correlate(logs)
	require.Len(t, insights.Correlations, 3)

	// Fixed presentation order: happy, stressed, sad.
	happy := insights.Correlations[0]
	assert.Equal(t, mood.Happy, happy.Mood)
	assert.Equal(t, 2, happy.Days)
	assert.Equal(t, int64(40000), happy.TotalSpending)
	assert.Equal(t, int64(20000), happy.AverageSpending)

	assert.Equal(t, mood.Stressed, insights.Correlations[1].Mood)
	assert.Equal(t, mood.Sad, insights.Correlations[2].Mood)

	assert.Equal(t, mood.Stressed, insights.HighestMood)
	assert.Equal(t, mood.Sad, insights.LowestMood)
}

func TestCorrelate_Empty(t *testing.T) {
	insights := mood.Correlate(nil)

	assert.Empty(t, insights.Correlations)
	assert.Empty(t, insights.HighestMood)
	assert.Empty(t, insights.LowestMood)
}

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	repo := mood.NewMockRepository(ctrl)
	repo.EXPECT().
		ListLogs(gomock.Any(), userID, mood.DefaultLookbackDays).
		Return([]*mood.Log{
			{Day: today, Mood: mood.Excited, SpendingAmount: 25000},
		}, nil)

	svc := mood.NewService(repo, ledger.NewMockRepository(ctrl))

	insights, err := svc.Analyze(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, insights.Correlations, 1)
	assert.Equal(t, mood.Excited, insights.HighestMood)
	assert.Equal(t, 1, insights.TotalLogs)
}

func TestService_Analyze_IgnoresLogsOutsideWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	repo := mood.NewMockRepository(ctrl)
	repo.EXPECT().
		ListLogs(gomock.Any(), userID, 30).
		Return([]*mood.Log{
			{Day: today, Mood: mood.Happy, SpendingAmount: 1000},
			{Day: today.AddDate(-1, 0, 0), Mood: mood.Happy, SpendingAmount: 99000},
		}, nil)

	svc := mood.NewService(repo, ledger.NewMockRepository(ctrl))

	insights, err := svc.Analyze(context.Background(), userID, 30)
	require.NoError(t, err)

	// The year-old log must not drag the average; only the in-window log counts.
	require.Len(t, insights.Correlations, 1)
	assert.Equal(t, int64(1000), insights.Correlations[0].AverageSpending)
	assert.Equal(t, 1, insights.TotalLogs)
	require.Len(t, insights.Logs, 1)
	assert.Equal(t, today, insights.Logs[0].Day)
}
