package gamify

import (
	"time"

	"github.com/google/uuid"
)

// Progress is the per-user gamification aggregate. It is the single
// source of truth for points and level; achievements only record how
// the points were earned.
type Progress struct {
	UserID           uuid.UUID
	TotalPoints      int
	SavingsStreak    int
	TransactionCount int
	LastActivityAt   time.Time
}

// Level is derived from points, not stored.
func (p *Progress) Level() int {
	return p.TotalPoints/PointsPerLevel + 1
}

type Achievement struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	Title       string
	Description string
	UnlockedAt  time.Time
	Points      int
}

type ChallengeType string

const (
	ChallengeDaily  ChallengeType = "daily"
	ChallengeWeekly ChallengeType = "weekly"
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeExpired   ChallengeStatus = "expired"
)

type Challenge struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Type        ChallengeType
	Difficulty  string
	Points      int
	Requirement string
	Status      ChallengeStatus
	ExpiresAt   time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}

type Lesson struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Category         string
	Difficulty       string
	Content          string
	EstimatedMinutes int
	Points           int
	SortOrder        int
}

type LessonStatus string

const (
	LessonNotStarted LessonStatus = "not_started"
	LessonInProgress LessonStatus = "in_progress"
	LessonCompleted  LessonStatus = "completed"
)

// UserLesson tracks one user's progress through one lesson.
type UserLesson struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	LessonID     uuid.UUID
	Progress     int // 0-100
	Status       LessonStatus
	CompletedAt  *time.Time
	PointsEarned int
}

// LessonWithProgress pairs a lesson with the caller's progress, which is
// zero-valued when the user never opened the lesson.
type LessonWithProgress struct {
	Lesson   *Lesson
	Progress int
	Status   LessonStatus
}
