package gamify

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/analytics"
	"github.com/ananyadas/finquest/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=gamify
type Repository interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error)
	UpsertProgress(ctx context.Context, p *Progress) error

	CreateAchievement(ctx context.Context, a *Achievement) error
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]*Achievement, error)

	CreateChallenge(ctx context.Context, c *Challenge) error
	GetChallenge(ctx context.Context, id uuid.UUID) (*Challenge, error)
	CompleteChallenge(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	ExpireChallenges(ctx context.Context, userID uuid.UUID, now time.Time) error
	ListChallenges(ctx context.Context, userID uuid.UUID) ([]*Challenge, error)

	ListLessons(ctx context.Context) ([]*Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*Lesson, error)
	GetUserLesson(ctx context.Context, userID, lessonID uuid.UUID) (*UserLesson, error)
	UpsertUserLesson(ctx context.Context, ul *UserLesson) error
	ListUserLessons(ctx context.Context, userID uuid.UUID) ([]*UserLesson, error)
}

// Service implements ledger.ActivityRecorder and goal.Awarder so that the
// other domains can report point-worthy events without importing this
// package's types.
type Service struct {
	repo    Repository
	ledgers ledger.Repository
	now     func() time.Time
	pick    func(n int) int
}

func NewService(repo Repository, ledgers ledger.Repository) *Service {
	return &Service{
		repo:    repo,
		ledgers: ledgers,
		now:     time.Now,
		pick:    rand.IntN,
	}
}

// GetProgress returns the user's aggregate, initializing it on first use.
func (s *Service) GetProgress(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s.initProgress(ctx, userID)
		}

		return nil, fmt.Errorf("loading progress: %w", err)
	}

	return p, nil
}

func (s *Service) initProgress(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	p := &Progress{
		UserID:         userID,
		LastActivityAt: s.now(),
	}

	if err := s.repo.UpsertProgress(ctx, p); err != nil {
		return nil, fmt.Errorf("initializing progress: %w", err)
	}

	return p, nil
}

// TransactionRecorded updates the activity counters after a transaction is
// created. The first transaction ever unlocks an achievement.
func (s *Service) TransactionRecorded(ctx context.Context, userID uuid.UUID) error {
	p, err := s.GetProgress(ctx, userID)
	if err != nil {
		return err
	}

	first := p.TransactionCount == 0

	p.TransactionCount++
	p.LastActivityAt = s.now()

	if first {
		if err := s.unlock(ctx, p, firstTransactionAward()); err != nil {
			return err
		}
	}

	txs, err := s.ledgers.ListTransactions(ctx, userID)
	if err != nil {
		return fmt.Errorf("listing transactions for streak: %w", err)
	}

	p.SavingsStreak = analytics.ConsecutivePositiveMonths(txs, s.now())

	if err := s.repo.UpsertProgress(ctx, p); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}

	return nil
}

func (s *Service) GoalCompleted(ctx context.Context, userID uuid.UUID, goalName string) error {
	return s.awardTo(ctx, userID, goalCompletedAward(goalName))
}

func (s *Service) JarCompleted(ctx context.Context, userID uuid.UUID, jarName string) error {
	return s.awardTo(ctx, userID, jarCompletedAward(jarName))
}

func (s *Service) ListAchievements(ctx context.Context, userID uuid.UUID) ([]*Achievement, error) {
	return s.repo.ListAchievements(ctx, userID)
}

// GenerateChallenges expires stale challenges and tops the user back up to
// the active maximum with randomly chosen templates.
func (s *Service) GenerateChallenges(ctx context.Context, userID uuid.UUID) ([]*Challenge, error) {
	now := s.now()

	if err := s.repo.ExpireChallenges(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("expiring challenges: %w", err)
	}

	existing, err := s.repo.ListChallenges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}

	active := 0

	for _, c := range existing {
		if c.Status == ChallengeActive {
			active++
		}
	}

	// Draw without replacement so one call never hands out the same
	// template twice.
	remaining := make([]int, len(challengeTemplates))
	for i := range remaining {
		remaining[i] = i
	}

	for ; active < maxActiveChallenges; active++ {
		j := s.pick(len(remaining))
		tpl := challengeTemplates[remaining[j]]
		remaining = append(remaining[:j], remaining[j+1:]...)

		c := &Challenge{
			UserID:      userID,
			Title:       tpl.Title,
			Description: tpl.Description,
			Type:        tpl.Type,
			Difficulty:  tpl.Difficulty,
			Points:      tpl.Points,
			Requirement: tpl.Requirement,
			Status:      ChallengeActive,
			ExpiresAt:   now.Add(tpl.ttl()),
		}

		if err := s.repo.CreateChallenge(ctx, c); err != nil {
			return nil, fmt.Errorf("creating challenge: %w", err)
		}

		existing = append(existing, c)
	}

	return existing, nil
}

func (s *Service) ListChallenges(ctx context.Context, userID uuid.UUID) ([]*Challenge, error) {
	return s.repo.ListChallenges(ctx, userID)
}

func (s *Service) CompleteChallenge(ctx context.Context, userID, id uuid.UUID) (*Challenge, error) {
	c, err := s.repo.GetChallenge(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.UserID != userID {
		return nil, ErrUnauthorized
	}

	now := s.now()

	if c.Status != ChallengeActive || now.After(c.ExpiresAt) {
		return nil, ErrChallengeNotActive
	}

	if err := s.repo.CompleteChallenge(ctx, id, now); err != nil {
		return nil, fmt.Errorf("completing challenge: %w", err)
	}

	c.Status = ChallengeCompleted
	c.CompletedAt = &now

	if err := s.awardTo(ctx, userID, challengeCompletedAward(c.Title, c.Points)); err != nil {
		return nil, err
	}

	return c, nil
}

// ListLessons joins the lesson catalog with the caller's per-lesson progress.
func (s *Service) ListLessons(ctx context.Context, userID uuid.UUID) ([]*LessonWithProgress, error) {
	lessons, err := s.repo.ListLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing lessons: %w", err)
	}

	userLessons, err := s.repo.ListUserLessons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing lesson progress: %w", err)
	}

	byLesson := make(map[uuid.UUID]*UserLesson, len(userLessons))
	for _, ul := range userLessons {
		byLesson[ul.LessonID] = ul
	}

	out := make([]*LessonWithProgress, 0, len(lessons))

	for _, l := range lessons {
		lp := &LessonWithProgress{Lesson: l, Status: LessonNotStarted}

		if ul, ok := byLesson[l.ID]; ok {
			lp.Progress = ul.Progress
			lp.Status = ul.Status
		}

		out = append(out, lp)
	}

	return out, nil
}

// UpdateLessonProgress records how far the user got. Points are granted only
// on the transition into the completed state, so replaying 100% is a no-op.
func (s *Service) UpdateLessonProgress(ctx context.Context, userID, lessonID uuid.UUID, progress int) (*UserLesson, error) {
	if progress < 0 || progress > 100 {
		return nil, ErrInvalidProgress
	}

	lesson, err := s.repo.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	ul, err := s.repo.GetUserLesson(ctx, userID, lessonID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("loading lesson progress: %w", err)
		}

		ul = &UserLesson{
			UserID:   userID,
			LessonID: lessonID,
			Status:   LessonNotStarted,
		}
	}

	alreadyCompleted := ul.Status == LessonCompleted

	ul.Progress = progress

	switch {
	case alreadyCompleted:
		// Completed lessons never regress.
		ul.Progress = 100
	case progress >= 100:
		now := s.now()
		ul.Status = LessonCompleted
		ul.CompletedAt = &now
		ul.PointsEarned = lesson.Points
	case progress > 0:
		ul.Status = LessonInProgress
	}

	if err := s.repo.UpsertUserLesson(ctx, ul); err != nil {
		return nil, fmt.Errorf("saving lesson progress: %w", err)
	}

	if !alreadyCompleted && ul.Status == LessonCompleted {
		if err := s.awardTo(ctx, userID, lessonCompletedAward(lesson.Title, lesson.Points)); err != nil {
			return nil, err
		}
	}

	return ul, nil
}

func (s *Service) awardTo(ctx context.Context, userID uuid.UUID, a award) error {
	p, err := s.GetProgress(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.unlock(ctx, p, a); err != nil {
		return err
	}

	p.LastActivityAt = s.now()

	if err := s.repo.UpsertProgress(ctx, p); err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}

	return nil
}

// unlock records the achievement and adds its points to p without persisting p.
func (s *Service) unlock(ctx context.Context, p *Progress, a award) error {
	ach := &Achievement{
		UserID:      p.UserID,
		Type:        a.Type,
		Title:       a.Title,
		Description: a.Description,
		UnlockedAt:  s.now(),
		Points:      a.Points,
	}

	if err := s.repo.CreateAchievement(ctx, ach); err != nil {
		return fmt.Errorf("creating achievement: %w", err)
	}

	p.TotalPoints += a.Points

	return nil
}
