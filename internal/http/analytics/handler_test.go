package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/auth"
	"github.com/ananyadas/finquest/internal/ledger"
)

func TestHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ledger.NewMockRepository(ctrl)

	userID := uuid.New()
	accountID := uuid.New()
	account := &ledger.Account{
		ID:             accountID,
		UserID:         userID,
		Name:           "Salary Account",
		Type:           ledger.AccountBank,
		InitialBalance: 100000,
	}

	repo.EXPECT().ListAccounts(gomock.Any(), userID).Return([]*ledger.Account{account}, nil)
	repo.EXPECT().ListCategories(gomock.Any(), userID).Return(nil, nil)
	repo.EXPECT().ListTransactions(gomock.Any(), userID).Return([]*ledger.Transaction{
		{
			ID:         uuid.New(),
			UserID:     userID,
			AccountID:  accountID,
			Amount:     25000,
			Kind:       ledger.KindIncome,
			OccurredAt: time.Now(),
		},
	}, nil)

	h := NewHandler(analytics.NewService(repo))
	router := chi.NewRouter()
	router.Route("/analytics", h.Routes)

	req := httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil)
	req = req.WithContext(auth.WithUserID(context.Background(), userID))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp summaryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, int64(125000), resp.TotalBalance)
	assert.Equal(t, int64(25000), resp.Income)
	require.Len(t, resp.AccountBalances, 1)
	assert.Equal(t, accountID, resp.AccountBalances[0].AccountID)
	assert.Equal(t, "Salary Account", resp.AccountBalances[0].Name)
	assert.Equal(t, int64(125000), resp.AccountBalances[0].Balance)
}
