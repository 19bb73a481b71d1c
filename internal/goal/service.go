package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	ListGoals(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	// AddGoalProgress atomically adds amount to the goal's current amount and
	// flips the status when the target is crossed. It reports whether this
	// call caused the completion.
	AddGoalProgress(ctx context.Context, id uuid.UUID, amount int64) (*Goal, bool, error)

	CreateJar(ctx context.Context, j *Jar) error
	GetJar(ctx context.Context, id uuid.UUID) (*Jar, error)
	DeleteJar(ctx context.Context, id uuid.UUID) error
	ListJars(ctx context.Context, userID uuid.UUID) ([]*Jar, error)
	AddJarProgress(ctx context.Context, id uuid.UUID, amount int64) (*Jar, bool, error)
}

// Awarder hands out completion achievements. Implemented by the gamify
// service.
type Awarder interface {
	GoalCompleted(ctx context.Context, userID uuid.UUID, goalName string) error
	JarCompleted(ctx context.Context, userID uuid.UUID, jarName string) error
}

type Service struct {
	repo    Repository
	awarder Awarder
}

func NewService(repo Repository, awarder Awarder) *Service {
	return &Service{repo: repo, awarder: awarder}
}

type CreateGoalParams struct {
	Name         string
	TargetAmount int64
	Deadline     time.Time
	Category     string
}

func (s *Service) CreateGoal(ctx context.Context, userID uuid.UUID, params CreateGoalParams) (*Goal, error) {
	g := &Goal{
		UserID:       userID,
		Name:         params.Name,
		TargetAmount: params.TargetAmount,
		Deadline:     params.Deadline,
		Status:       StatusActive,
		Category:     params.Category,
	}
	if err := s.repo.CreateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// UpdateGoalProgress adds amount to the goal. The completion award is granted
// only on the transition into completed, never again afterwards.
func (s *Service) UpdateGoalProgress(ctx context.Context, userID, id uuid.UUID, amount int64) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if g.UserID != userID {
		return nil, ErrUnauthorized
	}

	g, completed, err := s.repo.AddGoalProgress(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	if completed && s.awarder != nil {
		if err := s.awarder.GoalCompleted(ctx, userID, g.Name); err != nil {
			return nil, fmt.Errorf("awarding goal completion: %w", err)
		}
	}

	return g, nil
}

func (s *Service) DeleteGoal(ctx context.Context, userID, id uuid.UUID) error {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return err
	}

	if g.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.DeleteGoal(ctx, id)
}

func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

type CreateJarParams struct {
	Name         string
	TargetAmount int64
	Color        string
	Emoji        string
	Deadline     *time.Time
}

func (s *Service) CreateJar(ctx context.Context, userID uuid.UUID, params CreateJarParams) (*Jar, error) {
	j := &Jar{
		UserID:       userID,
		Name:         params.Name,
		TargetAmount: params.TargetAmount,
		Color:        params.Color,
		Emoji:        params.Emoji,
		Deadline:     params.Deadline,
		Status:       StatusActive,
	}
	if err := s.repo.CreateJar(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// AddToJar adds amount to the jar with the same once-only completion award as
// UpdateGoalProgress.
func (s *Service) AddToJar(ctx context.Context, userID, id uuid.UUID, amount int64) (*Jar, error) {
	j, err := s.repo.GetJar(ctx, id)
	if err != nil {
		return nil, err
	}

	if j.UserID != userID {
		return nil, ErrUnauthorized
	}

	j, completed, err := s.repo.AddJarProgress(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	if completed && s.awarder != nil {
		if err := s.awarder.JarCompleted(ctx, userID, j.Name); err != nil {
			return nil, fmt.Errorf("awarding jar completion: %w", err)
		}
	}

	return j, nil
}

func (s *Service) DeleteJar(ctx context.Context, userID, id uuid.UUID) error {
	j, err := s.repo.GetJar(ctx, id)
	if err != nil {
		return err
	}

	if j.UserID != userID {
		return ErrUnauthorized
	}

	return s.repo.DeleteJar(ctx, id)
}

func (s *Service) ListJars(ctx context.Context, userID uuid.UUID) ([]*Jar, error) {
	return s.repo.ListJars(ctx, userID)
}
