package gamify

import "time"

// Every 500 points advances the user by one level, starting at level 1.
const PointsPerLevel = 500

const (
	FirstTransactionPoints = 50
	GoalCompletedPoints    = 100
	JarCompletedPoints     = 200
)

const (
	maxActiveChallenges = 3

	dailyChallengeTTL  = 24 * time.Hour
	weeklyChallengeTTL = 7 * 24 * time.Hour
)

type challengeTemplate struct {
	Title       string
	Description string
	Type        ChallengeType
	Difficulty  string
	Points      int
	Requirement string
}

var challengeTemplates = []challengeTemplate{
	{
		Title:       "Budget Master",
		Description: "Create a transaction in 3 different categories",
		Type:        ChallengeDaily,
		Difficulty:  "easy",
		Points:      50,
		Requirement: `{"type":"categories","count":3}`,
	},
	{
		Title:       "Savings Streak",
		Description: "Record 5 income transactions this week",
		Type:        ChallengeWeekly,
		Difficulty:  "medium",
		Points:      100,
		Requirement: `{"type":"income","count":5}`,
	},
	{
		Title:       "Goal Setter",
		Description: "Create and fund a new financial goal",
		Type:        ChallengeDaily,
		Difficulty:  "easy",
		Points:      75,
		Requirement: `{"type":"goal","action":"create_and_fund"}`,
	},
	{
		Title:       "Transaction Tracker",
		Description: "Log 10 transactions with receipts",
		Type:        ChallengeWeekly,
		Difficulty:  "hard",
		Points:      150,
		Requirement: `{"type":"receipts","count":10}`,
	},
	{
		Title:       "Category Champion",
		Description: "Stay under budget in Food category",
		Type:        ChallengeDaily,
		Difficulty:  "medium",
		Points:      80,
		Requirement: `{"type":"budget","category":"Food"}`,
	},
}

func (t challengeTemplate) ttl() time.Duration {
	if t.Type == ChallengeWeekly {
		return weeklyChallengeTTL
	}

	return dailyChallengeTTL
}

type award struct {
	Type        string
	Title       string
	Description string
	Points      int
}

func firstTransactionAward() award {
	return award{
		Type:        "first_transaction",
		Title:       "First Step!",
		Description: "You recorded your first transaction.",
		Points:      FirstTransactionPoints,
	}
}

func goalCompletedAward(goalName string) award {
	return award{
		Type:        "goal_completed",
		Title:       "Goal Achieved!",
		Description: "You completed your goal: " + goalName,
		Points:      GoalCompletedPoints,
	}
}

func jarCompletedAward(jarName string) award {
	return award{
		Type:        "jar_completed",
		Title:       "Savings Goal Achieved!",
		Description: "You filled your savings jar: " + jarName,
		Points:      JarCompletedPoints,
	}
}

func lessonCompletedAward(lessonTitle string, points int) award {
	return award{
		Type:        "lesson_completed",
		Title:       "Knowledge Gained!",
		Description: "You completed the lesson: " + lessonTitle,
		Points:      points,
	}
}

func challengeCompletedAward(challengeTitle string, points int) award {
	return award{
		Type:        "challenge_completed",
		Title:       "Challenge Complete!",
		Description: "You completed the challenge: " + challengeTitle,
		Points:      points,
	}
}
