package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/goal"
)

type goalResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  int64       `json:"target_amount"`
	CurrentAmount int64       `json:"current_amount"`
	Deadline      time.Time   `json:"deadline"`
	Status        goal.Status `json:"status"`
	Category      string      `json:"category,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toGoalResponse(g *goal.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Status:        g.Status,
		Category:      g.Category,
		CreatedAt:     g.CreatedAt,
	}
}

type jarResponse struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	TargetAmount  int64       `json:"target_amount"`
	CurrentAmount int64       `json:"current_amount"`
	Color         string      `json:"color"`
	Emoji         string      `json:"emoji"`
	Deadline      *time.Time  `json:"deadline,omitempty"`
	Status        goal.Status `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

func toJarResponse(j *goal.Jar) jarResponse {
	return jarResponse{
		ID:            j.ID,
		Name:          j.Name,
		TargetAmount:  j.TargetAmount,
		CurrentAmount: j.CurrentAmount,
		Color:         j.Color,
		Emoji:         j.Emoji,
		Deadline:      j.Deadline,
		Status:        j.Status,
		CreatedAt:     j.CreatedAt,
	}
}
