package mood

import (
	"time"

	"github.com/google/uuid"
)

// Kind is one of the fixed mood choices a user can log for a day.
type Kind string

const (
	Happy    Kind = "happy"
	Excited  Kind = "excited"
	Neutral  Kind = "neutral"
	Stressed Kind = "stressed"
	Sad      Kind = "sad"
)

func (k Kind) Valid() bool {
	switch k {
	case Happy, Excited, Neutral, Stressed, Sad:
		return true
	}

	return false
}

// Log is one mood entry. There is at most one per user per day; logging
// again on the same day overwrites the earlier entry.
type Log struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Day            time.Time // midnight UTC
	Mood           Kind
	Note           string
	SpendingAmount int64 // Amount in cents, snapshot of that day's expenses
}

// Correlation is the aggregate spending behavior observed for one mood.
type Correlation struct {
	Mood            Kind
	Days            int
	TotalSpending   int64
	AverageSpending int64
}

// Insights summarizes how mood and spending relate across the logs inside
// the analysis window.
type Insights struct {
	Correlations []Correlation
	HighestMood  Kind // mood with the highest average spend, empty when no logs
	LowestMood   Kind
	TotalLogs    int
	Logs         []*Log // the logs the correlations were computed from
}
