package gamify_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ananyadas/finquest/internal/gamify"
	"github.com/ananyadas/finquest/internal/ledger"
)

func TestProgress_Level(t *testing.T) {
	type testCase struct {
		name   string
		points int
		want   int
	}

	tests := []testCase{
		{name: "Fresh", points: 0, want: 1},
		{name: "JustBelowThreshold", points: 499, want: 1},
		{name: "AtThreshold", points: 500, want: 2},
		{name: "SeveralLevels", points: 1250, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &gamify.Progress{TotalPoints: tt.points}
			assert.Equal(t, tt.want, p.Level())
		})
	}
}

func TestService_GetProgress_InitializesOnFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := gamify.NewMockRepository(ctrl)
	repo.EXPECT().
		GetProgress(gomock.Any(), userID).
		Return(nil, gamify.ErrNotFound)
	repo.EXPECT().
		UpsertProgress(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

	got, err := svc.GetProgress(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, got.UserID)
	assert.Zero(t, got.TotalPoints)
	assert.Equal(t, 1, got.Level())
}

func TestService_TransactionRecorded(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name       string
		progress   *gamify.Progress
		wantAward  bool
		wantPoints int
	}

	tests := []testCase{
		{
			name:       "FirstTransactionUnlocksAchievement",
			progress:   &gamify.Progress{UserID: userID, TransactionCount: 0},
			wantAward:  true,
			wantPoints: gamify.FirstTransactionPoints,
		},
		{
			name:       "LaterTransactionsDoNot",
			progress:   &gamify.Progress{UserID: userID, TransactionCount: 7, TotalPoints: 50},
			wantAward:  false,
			wantPoints: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := gamify.NewMockRepository(ctrl)
			repo.EXPECT().
				GetProgress(gomock.Any(), userID).
				Return(tt.progress, nil)

			if tt.wantAward {
				repo.EXPECT().
					CreateAchievement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *gamify.Achievement) error {
						assert.Equal(t, "First Step!", a.Title)
						assert.Equal(t, gamify.FirstTransactionPoints, a.Points)
						return nil
					})
			}

			var saved *gamify.Progress
			repo.EXPECT().
				UpsertProgress(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p *gamify.Progress) error {
					saved = p
					return nil
				})

			ledgers := ledger.NewMockRepository(ctrl)
			ledgers.EXPECT().
				ListTransactions(gomock.Any(), userID).
				Return(nil, nil)

			svc := gamify.NewService(repo, ledgers)

			require.NoError(t, svc.TransactionRecorded(context.Background(), userID))
			require.NotNil(t, saved)
			assert.Equal(t, tt.wantPoints, saved.TotalPoints)
			assert.Equal(t, tt.progress.TransactionCount, saved.TransactionCount)
		})
	}
}

func TestService_CompleteChallenge(t *testing.T) {
	userID := uuid.New()
	challengeID := uuid.New()

	active := func(owner uuid.UUID, status gamify.ChallengeStatus, expiresAt time.Time) *gamify.Challenge {
		return &gamify.Challenge{
			ID:        challengeID,
			UserID:    owner,
			Title:     "Budget Master",
			Points:    50,
			Status:    status,
			ExpiresAt: expiresAt,
		}
	}

	type testCase struct {
		name      string
		challenge *gamify.Challenge
		completes bool
		wantErr   error
	}

	future := time.Now().Add(12 * time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []testCase{
		{
			name:      "Success",
			challenge: active(userID, gamify.ChallengeActive, future),
			completes: true,
		},
		{
			name:      "NotOwner",
			challenge: active(uuid.New(), gamify.ChallengeActive, future),
			wantErr:   gamify.ErrUnauthorized,
		},
		{
			name:      "AlreadyCompleted",
			challenge: active(userID, gamify.ChallengeCompleted, future),
			wantErr:   gamify.ErrChallengeNotActive,
		},
		{
			name:      "PastExpiry",
			challenge: active(userID, gamify.ChallengeActive, past),
			wantErr:   gamify.ErrChallengeNotActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := gamify.NewMockRepository(ctrl)
			repo.EXPECT().
				GetChallenge(gomock.Any(), challengeID).
				Return(tt.challenge, nil)

			if tt.completes {
				repo.EXPECT().
					CompleteChallenge(gomock.Any(), challengeID, gomock.Any()).
					Return(nil)
				repo.EXPECT().
					GetProgress(gomock.Any(), userID).
					Return(&gamify.Progress{UserID: userID}, nil)
				repo.EXPECT().
					CreateAchievement(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *gamify.Achievement) error {
						assert.Equal(t, "Challenge Complete!", a.Title)
						assert.Equal(t, 50, a.Points)
						return nil
					})
				repo.EXPECT().
					UpsertProgress(gomock.Any(), gomock.Any()).
					Return(nil)
			}

			svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

			got, err := svc.CompleteChallenge(context.Background(), userID, challengeID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, gamify.ChallengeCompleted, got.Status)
			require.NotNil(t, got.CompletedAt)
		})
	}
}

func TestService_GenerateChallenges_TopsUpToMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	existing := []*gamify.Challenge{
		{ID: uuid.New(), UserID: userID, Status: gamify.ChallengeActive},
		{ID: uuid.New(), UserID: userID, Status: gamify.ChallengeExpired},
	}

	repo := gamify.NewMockRepository(ctrl)
	repo.EXPECT().
		ExpireChallenges(gomock.Any(), userID, gomock.Any()).
		Return(nil)
	repo.EXPECT().
		ListChallenges(gomock.Any(), userID).
		Return(existing, nil)
	repo.EXPECT().
		CreateChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *gamify.Challenge) error {
			c.ID = uuid.New()

			assert.Equal(t, gamify.ChallengeActive, c.Status)
			assert.NotEmpty(t, c.Title)
			assert.True(t, c.ExpiresAt.After(time.Now()))
			return nil
		}).
		Times(2)

	svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

	got, err := svc.GenerateChallenges(context.Background(), userID)
	require.NoError(t, err)

	active := 0

	for _, c := range got {
		if c.Status == gamify.ChallengeActive {
			active++
		}
	}

	assert.Equal(t, 3, active)
	assert.Len(t, got, 4)
}

func TestService_GenerateChallenges_DistinctTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := gamify.NewMockRepository(ctrl)
	repo.EXPECT().
		ExpireChallenges(gomock.Any(), userID, gomock.Any()).
		Return(nil)
	repo.EXPECT().
		ListChallenges(gomock.Any(), userID).
		Return(nil, nil)

	titles := make(map[string]bool)

	repo.EXPECT().
		CreateChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *gamify.Challenge) error {
			c.ID = uuid.New()
			titles[c.Title] = true
			return nil
		}).
		Times(3)

	svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

	_, err := svc.GenerateChallenges(context.Background(), userID)
	require.NoError(t, err)

	// One call never hands out the same template twice.
	assert.Len(t, titles, 3)
}

func TestService_ListLessons_JoinsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	budgeting := &gamify.Lesson{ID: uuid.New(), Title: "Budgeting Basics"}
	investing := &gamify.Lesson{ID: uuid.New(), Title: "Intro to Investing"}

	repo := gamify.NewMockRepository(ctrl)
	repo.EXPECT().
		ListLessons(gomock.Any()).
		Return([]*gamify.Lesson{budgeting, investing}, nil)
	repo.EXPECT().
		ListUserLessons(gomock.Any(), userID).
		Return([]*gamify.UserLesson{
			{LessonID: budgeting.ID, Progress: 40, Status: gamify.LessonInProgress},
		}, nil)

	svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

	got, err := svc.ListLessons(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, gamify.LessonInProgress, got[0].Status)
	assert.Equal(t, 40, got[0].Progress)
	assert.Equal(t, gamify.LessonNotStarted, got[1].Status)
	assert.Zero(t, got[1].Progress)
}

func TestService_UpdateLessonProgress(t *testing.T) {
	userID := uuid.New()
	lessonID := uuid.New()

	lesson := &gamify.Lesson{ID: lessonID, Title: "Budgeting Basics", Points: 80}

	type testCase struct {
		name         string
		progress     int
		existing     *gamify.UserLesson
		wantStatus   gamify.LessonStatus
		wantProgress int
		wantAward    bool
		wantErr      error
	}

	tests := []testCase{
		{
			name:         "StartsLesson",
			progress:     25,
			existing:     nil,
			wantStatus:   gamify.LessonInProgress,
			wantProgress: 25,
		},
		{
			name:         "CompletionAwardsPoints",
			progress:     100,
			existing:     &gamify.UserLesson{UserID: userID, LessonID: lessonID, Progress: 80, Status: gamify.LessonInProgress},
			wantStatus:   gamify.LessonCompleted,
			wantProgress: 100,
			wantAward:    true,
		},
		{
			name:         "CompletedNeverRegresses",
			progress:     10,
			existing:     &gamify.UserLesson{UserID: userID, LessonID: lessonID, Progress: 100, Status: gamify.LessonCompleted},
			wantStatus:   gamify.LessonCompleted,
			wantProgress: 100,
		},
		{
			name:     "RejectsNegative",
			progress: -1,
			wantErr:  gamify.ErrInvalidProgress,
		},
		{
			name:     "RejectsOverflow",
			progress: 101,
			wantErr:  gamify.ErrInvalidProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := gamify.NewMockRepository(ctrl)

			if tt.wantErr == nil {
				repo.EXPECT().
					GetLesson(gomock.Any(), lessonID).
					Return(lesson, nil)

				if tt.existing != nil {
					repo.EXPECT().
						GetUserLesson(gomock.Any(), userID, lessonID).
						Return(tt.existing, nil)
				} else {
					repo.EXPECT().
						GetUserLesson(gomock.Any(), userID, lessonID).
						Return(nil, gamify.ErrNotFound)
				}

				repo.EXPECT().
					UpsertUserLesson(gomock.Any(), gomock.Any()).
					Return(nil)

				if tt.wantAward {
					repo.EXPECT().
						GetProgress(gomock.Any(), userID).
						Return(&gamify.Progress{UserID: userID}, nil)
					repo.EXPECT().
						CreateAchievement(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, a *gamify.Achievement) error {
							assert.Equal(t, "Knowledge Gained!", a.Title)
							assert.Equal(t, 80, a.Points)
							return nil
						})
					repo.EXPECT().
						UpsertProgress(gomock.Any(), gomock.Any()).
						Return(nil)
				}
			}

			svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

			got, err := svc.UpdateLessonProgress(context.Background(), userID, lessonID, tt.progress)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantProgress, got.Progress)
		})
	}
}

func TestService_GoalCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := gamify.NewMockRepository(ctrl)
	repo.EXPECT().
		GetProgress(gomock.Any(), userID).
		Return(&gamify.Progress{UserID: userID, TotalPoints: 450}, nil)
	repo.EXPECT().
		CreateAchievement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *gamify.Achievement) error {
			assert.Equal(t, "Goal Achieved!", a.Title)
			assert.Equal(t, gamify.GoalCompletedPoints, a.Points)
			assert.Contains(t, a.Description, "Emergency Fund")
			return nil
		})
	repo.EXPECT().
		UpsertProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *gamify.Progress) error {
			// 450 + 100 crosses the level threshold.
			assert.Equal(t, 550, p.TotalPoints)
			assert.Equal(t, 2, p.Level())
			return nil
		})

	svc := gamify.NewService(repo, ledger.NewMockRepository(ctrl))

	require.NoError(t, svc.GoalCompleted(context.Background(), userID, "Emergency Fund"))
}
