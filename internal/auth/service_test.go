package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ananyadas/finquest/internal/auth"
)

const testSecret = "test-secret"

func TestService_Register(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *auth.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ananya@example.com").
					Return(nil, auth.ErrNotFound)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *auth.User) error {
						u.ID = uuid.New()
						u.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "EmailTaken",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ananya@example.com").
					Return(&auth.User{ID: uuid.New()}, nil)
			},
			wantErr: auth.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := auth.NewService(repo, testSecret, time.Hour)

			user, token, err := svc.Register(context.Background(), auth.RegisterParams{
				Email:    "ananya@example.com",
				Name:     "Ananya",
				Password: "hunter2secret",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.NotEmpty(t, token)

			// The password never leaves the service in the clear.
			assert.NotEqual(t, "hunter2secret", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2secret")))
		})
	}
}

func TestService_Login(t *testing.T) {
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &auth.User{ID: userID, Email: "ananya@example.com", PasswordHash: string(hash)}

	type testCase struct {
		name      string
		password  string
		setupMock func(m *auth.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			password: "hunter2secret",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ananya@example.com").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "wrong",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ananya@example.com").
					Return(stored, nil)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			password: "hunter2secret",
			setupMock: func(m *auth.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ananya@example.com").
					Return(nil, auth.ErrNotFound)
			},
			wantErr: auth.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := auth.NewService(repo, testSecret, time.Hour)

			user, token, err := svc.Login(context.Background(), "ananya@example.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *auth.User) error {
			u.ID = userID
			return nil
		})

	svc := auth.NewService(repo, testSecret, time.Hour)

	_, token, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:    "ananya@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	got, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestService_VerifyToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := auth.NewService(auth.NewMockRepository(ctrl), testSecret, time.Hour)

	type testCase struct {
		name  string
		token string
	}

	tests := []testCase{
		{name: "Garbage", token: "not.a.token"},
		{name: "Empty", token: ""},
		{
			name: "WrongAlgorithm",
			// alg:none token with a valid-looking subject.
			token: "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhYmMifQ.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyToken(tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrNotFound)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *auth.User) error {
			u.ID = userID
			return nil
		})

	svc := auth.NewService(repo, testSecret, time.Hour)

	_, token, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:    "ananya@example.com",
		Password: "hunter2secret",
	})
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotOK bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = auth.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := svc.Middleware(next)

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, userID, gotID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("BadToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
