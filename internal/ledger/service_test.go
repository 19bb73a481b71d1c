package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/ledger"
)

func TestService_CreateTransaction(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	categoryID := uuid.New()

	type args struct {
		params ledger.CreateTransactionParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: ledger.CreateTransactionParams{
					AccountID:  accountID,
					CategoryID: categoryID,
					Amount:     25000,
					Kind:       ledger.KindExpense,
					OccurredAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					Note:       "Groceries",
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&ledger.Account{ID: accountID, UserID: userID}, nil)
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "NegativeAmount",
			args: args{
				params: ledger.CreateTransactionParams{
					AccountID: accountID,
					Amount:    -100,
					Kind:      ledger.KindExpense,
				},
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "AccountOwnedByAnotherUser",
			args: args{
				params: ledger.CreateTransactionParams{
					AccountID: accountID,
					Amount:    100,
					Kind:      ledger.KindExpense,
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&ledger.Account{ID: accountID, UserID: uuid.New()}, nil)
			},
			wantErr: ledger.ErrUnauthorized,
		},
		{
			name: "AccountNotFound",
			args: args{
				params: ledger.CreateTransactionParams{
					AccountID: accountID,
					Amount:    100,
					Kind:      ledger.KindExpense,
				},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(nil, ledger.ErrNotFound)
			},
			wantErr: ledger.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			recorder := ledger.NewMockActivityRecorder(ctrl)
			recorder.EXPECT().
				TransactionRecorded(gomock.Any(), userID).
				Return(nil).
				AnyTimes()

			svc := ledger.NewService(repo, recorder)
			got, err := svc.CreateTransaction(context.Background(), userID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			require.NotNil(t, got.CategoryID)
			assert.Equal(t, categoryID, *got.CategoryID)
		})
	}
}

func TestService_CreateTransaction_NilCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	accountID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		GetAccount(gomock.Any(), accountID).
		Return(&ledger.Account{ID: accountID, UserID: userID}, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	recorder := ledger.NewMockActivityRecorder(ctrl)
	recorder.EXPECT().
		TransactionRecorded(gomock.Any(), userID).
		Return(nil)

	svc := ledger.NewService(repo, recorder)

	got, err := svc.CreateTransaction(context.Background(), userID, ledger.CreateTransactionParams{
		AccountID: accountID,
		Amount:    100,
		Kind:      ledger.KindIncome,
	})
	require.NoError(t, err)

	// An unset category must be stored as null, not as the zero UUID.
	assert.Nil(t, got.CategoryID)
}

func TestService_DeleteAccount(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&ledger.Account{ID: accountID, UserID: userID}, nil)
				m.EXPECT().
					CountAccountTransactions(gomock.Any(), accountID).
					Return(0, nil)
				m.EXPECT().
					DeleteAccount(gomock.Any(), accountID).
					Return(nil)
			},
		},
		{
			name: "AccountInUse",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&ledger.Account{ID: accountID, UserID: userID}, nil)
				m.EXPECT().
					CountAccountTransactions(gomock.Any(), accountID).
					Return(12, nil)
			},
			wantErr: ledger.ErrAccountInUse,
		},
		{
			name: "NotOwner",
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountID).
					Return(&ledger.Account{ID: accountID, UserID: uuid.New()}, nil)
			},
			wantErr: ledger.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := ledger.NewService(repo, nil)
			err := svc.DeleteAccount(context.Background(), userID, accountID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_DeleteTransaction_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&ledger.Transaction{ID: txID, UserID: uuid.New()}, nil)

	svc := ledger.NewService(repo, nil)

	err := svc.DeleteTransaction(context.Background(), uuid.New(), txID)
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)
}

func TestService_ToggleSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	txID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), txID).
		Return(&ledger.Transaction{ID: txID, UserID: userID}, nil)
	repo.EXPECT().
		SetSubscriptionFlag(gomock.Any(), txID, true).
		Return(nil)

	svc := ledger.NewService(repo, nil)

	assert.NoError(t, svc.ToggleSubscription(context.Background(), userID, txID, true))
}

func TestService_CreateTransaction_RecorderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	accountID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		GetAccount(gomock.Any(), accountID).
		Return(&ledger.Account{ID: accountID, UserID: userID}, nil)
	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	recorderErr := errors.New("gamification down")

	recorder := ledger.NewMockActivityRecorder(ctrl)
	recorder.EXPECT().
		TransactionRecorded(gomock.Any(), userID).
		Return(recorderErr)

	svc := ledger.NewService(repo, recorder)

	_, err := svc.CreateTransaction(context.Background(), userID, ledger.CreateTransactionParams{
		AccountID: accountID,
		Amount:    100,
		Kind:      ledger.KindExpense,
	})
	assert.ErrorIs(t, err, recorderErr)
}
