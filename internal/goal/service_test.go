package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/goal"
)

func TestService_CreateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *goal.Goal) error {
			g.ID = uuid.New()
			g.CreatedAt = time.Now()
			return nil
		})

	svc := goal.NewService(repo, nil)

	got, err := svc.CreateGoal(context.Background(), userID, goal.CreateGoalParams{
		Name:         "New Laptop",
		TargetAmount: 6000000,
		Deadline:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Category:     "electronics",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, goal.StatusActive, got.Status)
	assert.Zero(t, got.CurrentAmount)
}

func TestService_UpdateGoalProgress(t *testing.T) {
	userID := uuid.New()
	goalID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(repo *goal.MockRepository, awarder *goal.MockAwarder)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "ProgressWithoutCompletion",
			setupMock: func(repo *goal.MockRepository, awarder *goal.MockAwarder) {
				repo.EXPECT().
					GetGoal(gomock.Any(), goalID).
					Return(&goal.Goal{ID: goalID, UserID: userID}, nil)
				repo.EXPECT().
					AddGoalProgress(gomock.Any(), goalID, int64(50000)).
					Return(&goal.Goal{
						ID:            goalID,
						UserID:        userID,
						Name:          "Emergency Fund",
						CurrentAmount: 50000,
						TargetAmount:  100000,
						Status:        goal.StatusActive,
					}, false, nil)
			},
		},
		{
			name: "CompletionAwardsOnce",
			setupMock: func(repo *goal.MockRepository, awarder *goal.MockAwarder) {
				repo.EXPECT().
					GetGoal(gomock.Any(), goalID).
					Return(&goal.Goal{ID: goalID, UserID: userID}, nil)
				repo.EXPECT().
					AddGoalProgress(gomock.Any(), goalID, int64(50000)).
					Return(&goal.Goal{
						ID:            goalID,
						UserID:        userID,
						Name:          "Emergency Fund",
						CurrentAmount: 100000,
						TargetAmount:  100000,
						Status:        goal.StatusCompleted,
					}, true, nil)
				awarder.EXPECT().
					GoalCompleted(gomock.Any(), userID, "Emergency Fund").
					Return(nil)
			},
		},
		{
			name: "AlreadyCompletedNoAward",
			setupMock: func(repo *goal.MockRepository, awarder *goal.MockAwarder) {
				repo.EXPECT().
					GetGoal(gomock.Any(), goalID).
					Return(&goal.Goal{ID: goalID, UserID: userID}, nil)
				repo.EXPECT().
					AddGoalProgress(gomock.Any(), goalID, int64(50000)).
					Return(&goal.Goal{
						ID:            goalID,
						UserID:        userID,
						Name:          "Emergency Fund",
						CurrentAmount: 150000,
						TargetAmount:  100000,
						Status:        goal.StatusCompleted,
					}, false, nil)
			},
		},
		{
			name: "NotOwner",
			setupMock: func(repo *goal.MockRepository, awarder *goal.MockAwarder) {
				repo.EXPECT().
					GetGoal(gomock.Any(), goalID).
					Return(&goal.Goal{ID: goalID, UserID: uuid.New()}, nil)
			},
			wantErr: goal.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := goal.NewMockRepository(ctrl)
			awarder := goal.NewMockAwarder(ctrl)
			tt.setupMock(repo, awarder)

			svc := goal.NewService(repo, awarder)
			got, err := svc.UpdateGoalProgress(context.Background(), userID, goalID, 50000)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
		})
	}
}

func TestService_AddToJar_CompletionAward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	jarID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().
		GetJar(gomock.Any(), jarID).
		Return(&goal.Jar{ID: jarID, UserID: userID}, nil)
	repo.EXPECT().
		AddJarProgress(gomock.Any(), jarID, int64(20000)).
		Return(&goal.Jar{
			ID:            jarID,
			UserID:        userID,
			Name:          "Goa Trip",
			CurrentAmount: 500000,
			TargetAmount:  500000,
			Status:        goal.StatusCompleted,
		}, true, nil)

	awarder := goal.NewMockAwarder(ctrl)
	awarder.EXPECT().
		JarCompleted(gomock.Any(), userID, "Goa Trip").
		Return(nil)

	svc := goal.NewService(repo, awarder)

	got, err := svc.AddToJar(context.Background(), userID, jarID, 20000)
	require.NoError(t, err)
	assert.Equal(t, goal.StatusCompleted, got.Status)
}

func TestService_DeleteJar_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jarID := uuid.New()

	repo := goal.NewMockRepository(ctrl)
	repo.EXPECT().
		GetJar(gomock.Any(), jarID).
		Return(&goal.Jar{ID: jarID, UserID: uuid.New()}, nil)

	svc := goal.NewService(repo, nil)

	assert.ErrorIs(t, svc.DeleteJar(context.Background(), uuid.New(), jarID), goal.ErrUnauthorized)
}
