package gamify

import (
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/gamify"
)

type progressResponse struct {
	TotalPoints      int       `json:"total_points"`
	Level            int       `json:"level"`
	SavingsStreak    int       `json:"savings_streak"`
	TransactionCount int       `json:"transaction_count"`
	LastActivityAt   time.Time `json:"last_activity_at"`
}

func toProgressResponse(p *gamify.Progress) progressResponse {
	return progressResponse{
		TotalPoints:      p.TotalPoints,
		Level:            p.Level(),
		SavingsStreak:    p.SavingsStreak,
		TransactionCount: p.TransactionCount,
		LastActivityAt:   p.LastActivityAt,
	}
}

type achievementResponse struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
	Points      int       `json:"points"`
}

func toAchievementList(achievements []*gamify.Achievement) []achievementResponse {
	resp := make([]achievementResponse, len(achievements))
	for i, a := range achievements {
		resp[i] = achievementResponse{
			ID:          a.ID,
			Type:        a.Type,
			Title:       a.Title,
			Description: a.Description,
			UnlockedAt:  a.UnlockedAt,
			Points:      a.Points,
		}
	}

	return resp
}

type challengeResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Type        gamify.ChallengeType   `json:"type"`
	Difficulty  string                 `json:"difficulty"`
	Points      int                    `json:"points"`
	Requirement string                 `json:"requirement"`
	Status      gamify.ChallengeStatus `json:"status"`
	ExpiresAt   time.Time              `json:"expires_at"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
}

func toChallengeResponse(c *gamify.Challenge) challengeResponse {
	return challengeResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Type:        c.Type,
		Difficulty:  c.Difficulty,
		Points:      c.Points,
		Requirement: c.Requirement,
		Status:      c.Status,
		ExpiresAt:   c.ExpiresAt,
		CompletedAt: c.CompletedAt,
	}
}

func toChallengeList(challenges []*gamify.Challenge) []challengeResponse {
	resp := make([]challengeResponse, len(challenges))
	for i, c := range challenges {
		resp[i] = toChallengeResponse(c)
	}

	return resp
}

type lessonResponse struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Category         string              `json:"category"`
	Difficulty       string              `json:"difficulty"`
	Content          string              `json:"content"`
	EstimatedMinutes int                 `json:"estimated_minutes"`
	Points           int                 `json:"points"`
	Progress         int                 `json:"progress"`
	Status           gamify.LessonStatus `json:"status"`
}

func toLessonList(lessons []*gamify.LessonWithProgress) []lessonResponse {
	resp := make([]lessonResponse, len(lessons))
	for i, lp := range lessons {
		resp[i] = lessonResponse{
			ID:               lp.Lesson.ID,
			Title:            lp.Lesson.Title,
			Description:      lp.Lesson.Description,
			Category:         lp.Lesson.Category,
			Difficulty:       lp.Lesson.Difficulty,
			Content:          lp.Lesson.Content,
			EstimatedMinutes: lp.Lesson.EstimatedMinutes,
			Points:           lp.Lesson.Points,
			Progress:         lp.Progress,
			Status:           lp.Status,
		}
	}

	return resp
}

type userLessonResponse struct {
	LessonID     uuid.UUID           `json:"lesson_id"`
	Progress     int                 `json:"progress"`
	Status       gamify.LessonStatus `json:"status"`
	CompletedAt  *time.Time          `json:"completed_at,omitempty"`
	PointsEarned int                 `json:"points_earned"`
}

func toUserLessonResponse(ul *gamify.UserLesson) userLessonResponse {
	return userLessonResponse{
		LessonID:     ul.LessonID,
		Progress:     ul.Progress,
		Status:       ul.Status,
		CompletedAt:  ul.CompletedAt,
		PointsEarned: ul.PointsEarned,
	}
}
