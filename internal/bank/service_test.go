package bank_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/bank"
)

func TestConnection_MaskedAccountNumber(t *testing.T) {
	type testCase struct {
		name   string
		number string
		want   string
	}

	tests := []testCase{
		{name: "Standard", number: "123456789012", want: "********9012"},
		{name: "ExactlyFour", number: "9012", want: "9012"},
		{name: "Short", number: "12", want: "12"},
		{name: "Empty", number: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &bank.Connection{AccountNumber: tt.number}
			assert.Equal(t, tt.want, c.MaskedAccountNumber())
		})
	}
}

func TestService_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := bank.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateConnection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *bank.Connection) error {
			c.ID = uuid.New()
			return nil
		})

	svc := bank.NewService(repo)

	got, err := svc.Connect(context.Background(), userID, bank.ConnectParams{
		BankName:      "State Bank of India",
		AccountNumber: "123456789012",
		Provider:      "manual",
	})
	require.NoError(t, err)

	assert.Equal(t, bank.StatusConnected, got.Status)
	assert.Nil(t, got.LastSyncedAt)
}

func TestService_Sync(t *testing.T) {
	userID := uuid.New()
	connID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *bank.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *bank.MockRepository) {
				m.EXPECT().
					GetConnection(gomock.Any(), connID).
					Return(&bank.Connection{ID: connID, UserID: userID, Status: bank.StatusConnected}, nil)
				m.EXPECT().
					UpdateConnection(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *bank.Connection) error {
						assert.NotNil(t, c.LastSyncedAt)
						return nil
					})
			},
		},
		{
			name: "Disconnected",
			setupMock: func(m *bank.MockRepository) {
				m.EXPECT().
					GetConnection(gomock.Any(), connID).
					Return(&bank.Connection{ID: connID, UserID: userID, Status: bank.StatusDisconnected}, nil)
			},
			wantErr: bank.ErrDisconnected,
		},
		{
			name: "NotOwner",
			setupMock: func(m *bank.MockRepository) {
				m.EXPECT().
					GetConnection(gomock.Any(), connID).
					Return(&bank.Connection{ID: connID, UserID: uuid.New(), Status: bank.StatusConnected}, nil)
			},
			wantErr: bank.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := bank.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := bank.NewService(repo)
			got, err := svc.Sync(context.Background(), userID, connID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.LastSyncedAt)
		})
	}
}

func TestService_Disconnect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	connID := uuid.New()

	repo := bank.NewMockRepository(ctrl)
	repo.EXPECT().
		GetConnection(gomock.Any(), connID).
		Return(&bank.Connection{ID: connID, UserID: userID, Status: bank.StatusConnected}, nil)
	repo.EXPECT().
		UpdateConnection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *bank.Connection) error {
			assert.Equal(t, bank.StatusDisconnected, c.Status)
			return nil
		})

	svc := bank.NewService(repo)

	assert.NoError(t, svc.Disconnect(context.Background(), userID, connID))
}
