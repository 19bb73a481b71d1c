package advisor

import (
	"context"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/analytics"
)

// Summarizer is the slice of the analytics service the advisor needs.
type Summarizer interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (analytics.Summary, error)
}

type Service struct {
	summaries Summarizer
}

func NewService(summaries Summarizer) *Service {
	return &Service{summaries: summaries}
}

func (s *Service) Ask(ctx context.Context, userID uuid.UUID, question string) (string, error) {
	summary, err := s.summaries.Dashboard(ctx, userID)
	if err != nil {
		return "", err
	}

	return Reply(question, summary), nil
}

func (s *Service) SelfCare(ctx context.Context, userID uuid.UUID) (SelfCare, error) {
	summary, err := s.summaries.Dashboard(ctx, userID)
	if err != nil {
		return SelfCare{}, err
	}

	return SelfCareReport(summary), nil
}
