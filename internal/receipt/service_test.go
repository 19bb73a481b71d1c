package receipt_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/receipt"
)

func TestService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	receiptID := uuid.New()

	repo := receipt.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *receipt.Receipt) error {
			r.ID = receiptID
			return nil
		})
	repo.EXPECT().
		SetReceiptSize(gomock.Any(), receiptID, int64(11)).
		Return(nil)

	files := receipt.NewMockFileStore(ctrl)
	files.EXPECT().
		Save(receiptID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, r io.Reader) (int64, error) {
			return io.Copy(io.Discard, r)
		})

	svc := receipt.NewService(repo, files)

	got, err := svc.Upload(context.Background(), userID, "bill.jpg", "image/jpeg", strings.NewReader("hello world"))
	require.NoError(t, err)

	assert.Equal(t, receiptID, got.ID)
	assert.Equal(t, int64(11), got.SizeBytes)
	assert.Equal(t, "bill.jpg", got.FileName)
}

func TestService_Upload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	receiptID := uuid.New()

	repo := receipt.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *receipt.Receipt) error {
			r.ID = receiptID
			return nil
		})
	repo.EXPECT().
		DeleteReceipt(gomock.Any(), receiptID).
		Return(nil)

	files := receipt.NewMockFileStore(ctrl)
	files.EXPECT().
		Save(receiptID, gomock.Any()).
		Return(int64(receipt.MaxSizeBytes+1), nil)
	files.EXPECT().
		Remove(receiptID).
		Return(nil)

	svc := receipt.NewService(repo, files)

	_, err := svc.Upload(context.Background(), uuid.New(), "huge.pdf", "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, receipt.ErrTooLarge)
}

func TestService_Open(t *testing.T) {
	userID := uuid.New()
	receiptID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(repo *receipt.MockRepository, files *receipt.MockFileStore)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(repo *receipt.MockRepository, files *receipt.MockFileStore) {
				repo.EXPECT().
					GetReceipt(gomock.Any(), receiptID).
					Return(&receipt.Receipt{ID: receiptID, UserID: userID, ContentType: "image/png"}, nil)
				files.EXPECT().
					Open(receiptID).
					Return(io.NopCloser(strings.NewReader("bytes")), nil)
			},
		},
		{
			name: "NotOwner",
			setupMock: func(repo *receipt.MockRepository, files *receipt.MockFileStore) {
				repo.EXPECT().
					GetReceipt(gomock.Any(), receiptID).
					Return(&receipt.Receipt{ID: receiptID, UserID: uuid.New()}, nil)
			},
			wantErr: receipt.ErrUnauthorized,
		},
		{
			name: "NotFound",
			setupMock: func(repo *receipt.MockRepository, files *receipt.MockFileStore) {
				repo.EXPECT().
					GetReceipt(gomock.Any(), receiptID).
					Return(nil, receipt.ErrNotFound)
			},
			wantErr: receipt.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := receipt.NewMockRepository(ctrl)
			files := receipt.NewMockFileStore(ctrl)
			tt.setupMock(repo, files)

			svc := receipt.NewService(repo, files)

			rec, body, err := svc.Open(context.Background(), userID, receiptID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			defer body.Close()

			assert.Equal(t, receiptID, rec.ID)

			data, err := io.ReadAll(body)
			require.NoError(t, err)
			assert.Equal(t, "bytes", string(data))
		})
	}
}

func TestDiskStore_RoundTrip(t *testing.T) {
	store, err := receipt.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	id := uuid.New()

	n, err := store.Save(id, strings.NewReader("receipt bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)

	r, err := store.Open(id)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "receipt bytes", string(data))

	require.NoError(t, store.Remove(id))

	_, err = store.Open(id)
	assert.Error(t, err)
}
