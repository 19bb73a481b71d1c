package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/gamify"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) GetProgress(ctx context.Context, userID uuid.UUID) (*gamify.Progress, error) {
	query := `
		SELECT user_id, total_points, savings_streak, transaction_count, last_activity_at
		FROM user_progress
		WHERE user_id = $1
	`

	var p gamify.Progress

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.TotalPoints, &p.SavingsStreak, &p.TransactionCount, &p.LastActivityAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, gamify.ErrNotFound
		}

		return nil, fmt.Errorf("getting progress: %w", err)
	}

	return &p, nil
}

func (s *Store) UpsertProgress(ctx context.Context, p *gamify.Progress) error {
	query := `
		INSERT INTO user_progress (user_id, total_points, savings_streak, transaction_count, last_activity_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			total_points = EXCLUDED.total_points,
			savings_streak = EXCLUDED.savings_streak,
			transaction_count = EXCLUDED.transaction_count,
			last_activity_at = EXCLUDED.last_activity_at
	`

	_, err := s.db.ExecContext(ctx, query,
		p.UserID, p.TotalPoints, p.SavingsStreak, p.TransactionCount, p.LastActivityAt,
	)
	if err != nil {
		return fmt.Errorf("upserting progress: %w", err)
	}

	return nil
}

func (s *Store) CreateAchievement(ctx context.Context, a *gamify.Achievement) error {
	query := `
		INSERT INTO achievements (user_id, type, title, description, unlocked_at, points)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		a.UserID, a.Type, a.Title, a.Description, a.UnlockedAt, a.Points,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("creating achievement: %w", err)
	}

	return nil
}

func (s *Store) ListAchievements(ctx context.Context, userID uuid.UUID) ([]*gamify.Achievement, error) {
	query := `
		SELECT id, user_id, type, title, description, unlocked_at, points
		FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*gamify.Achievement

	for rows.Next() {
		var a gamify.Achievement

		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.UnlockedAt, &a.Points); err != nil {
			return nil, fmt.Errorf("scanning achievement: %w", err)
		}

		achievements = append(achievements, &a)
	}

	return achievements, rows.Err()
}

const selectChallengeColumns = `
	id, user_id, title, description, type, difficulty, points, requirement, status, expires_at, completed_at, created_at
`

func scanChallenge(s scanner) (*gamify.Challenge, error) {
	var c gamify.Challenge

	var typeStr, statusStr string

	var completedAt sql.NullTime

	if err := s.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description, &typeStr, &c.Difficulty,
		&c.Points, &c.Requirement, &statusStr, &c.ExpiresAt, &completedAt, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	c.Type = gamify.ChallengeType(typeStr)
	c.Status = gamify.ChallengeStatus(statusStr)

	if completedAt.Valid {
		c.CompletedAt = &completedAt.Time
	}

	return &c, nil
}

func (s *Store) CreateChallenge(ctx context.Context, c *gamify.Challenge) error {
	query := `
		INSERT INTO challenges (user_id, title, description, type, difficulty, points, requirement, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID, c.Title, c.Description, c.Type, c.Difficulty,
		c.Points, c.Requirement, c.Status, c.ExpiresAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating challenge: %w", err)
	}

	return nil
}

func (s *Store) GetChallenge(ctx context.Context, id uuid.UUID) (*gamify.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + ` FROM challenges WHERE id = $1`

	c, err := scanChallenge(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, gamify.ErrNotFound
		}

		return nil, fmt.Errorf("getting challenge: %w", err)
	}

	return c, nil
}

func (s *Store) CompleteChallenge(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	query := `
		UPDATE challenges
		SET status = $1, completed_at = $2
		WHERE id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, gamify.ChallengeCompleted, completedAt, id); err != nil {
		return fmt.Errorf("completing challenge: %w", err)
	}

	return nil
}

func (s *Store) ExpireChallenges(ctx context.Context, userID uuid.UUID, now time.Time) error {
	query := `
		UPDATE challenges
		SET status = $1
		WHERE user_id = $2 AND status = $3 AND expires_at < $4
	`

	if _, err := s.db.ExecContext(ctx, query, gamify.ChallengeExpired, userID, gamify.ChallengeActive, now); err != nil {
		return fmt.Errorf("expiring challenges: %w", err)
	}

	return nil
}

func (s *Store) ListChallenges(ctx context.Context, userID uuid.UUID) ([]*gamify.Challenge, error) {
	query := `SELECT ` + selectChallengeColumns + `
		FROM challenges
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*gamify.Challenge

	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning challenge: %w", err)
		}

		challenges = append(challenges, c)
	}

	return challenges, rows.Err()
}

const selectLessonColumns = `
	id, title, description, category, difficulty, content, estimated_minutes, points, sort_order
`

func scanLesson(s scanner) (*gamify.Lesson, error) {
	var l gamify.Lesson

	if err := s.Scan(
		&l.ID, &l.Title, &l.Description, &l.Category, &l.Difficulty,
		&l.Content, &l.EstimatedMinutes, &l.Points, &l.SortOrder,
	); err != nil {
		return nil, err
	}

	return &l, nil
}

func (s *Store) ListLessons(ctx context.Context) ([]*gamify.Lesson, error) {
	query := `SELECT ` + selectLessonColumns + ` FROM lessons ORDER BY sort_order ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*gamify.Lesson

	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lesson: %w", err)
		}

		lessons = append(lessons, l)
	}

	return lessons, rows.Err()
}

func (s *Store) GetLesson(ctx context.Context, id uuid.UUID) (*gamify.Lesson, error) {
	query := `SELECT ` + selectLessonColumns + ` FROM lessons WHERE id = $1`

	l, err := scanLesson(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, gamify.ErrNotFound
		}

		return nil, fmt.Errorf("getting lesson: %w", err)
	}

	return l, nil
}

func scanUserLesson(s scanner) (*gamify.UserLesson, error) {
	var ul gamify.UserLesson

	var statusStr string

	var completedAt sql.NullTime

	if err := s.Scan(
		&ul.ID, &ul.UserID, &ul.LessonID, &ul.Progress, &statusStr, &completedAt, &ul.PointsEarned,
	); err != nil {
		return nil, err
	}

	ul.Status = gamify.LessonStatus(statusStr)

	if completedAt.Valid {
		ul.CompletedAt = &completedAt.Time
	}

	return &ul, nil
}

const selectUserLessonColumns = `
	id, user_id, lesson_id, progress, status, completed_at, points_earned
`

func (s *Store) GetUserLesson(ctx context.Context, userID, lessonID uuid.UUID) (*gamify.UserLesson, error) {
	query := `SELECT ` + selectUserLessonColumns + `
		FROM user_lessons
		WHERE user_id = $1 AND lesson_id = $2`

	ul, err := scanUserLesson(s.db.QueryRowContext(ctx, query, userID, lessonID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, gamify.ErrNotFound
		}

		return nil, fmt.Errorf("getting lesson progress: %w", err)
	}

	return ul, nil
}

func (s *Store) UpsertUserLesson(ctx context.Context, ul *gamify.UserLesson) error {
	query := `
		INSERT INTO user_lessons (user_id, lesson_id, progress, status, completed_at, points_earned)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			progress = EXCLUDED.progress,
			status = EXCLUDED.status,
			completed_at = EXCLUDED.completed_at,
			points_earned = EXCLUDED.points_earned
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		ul.UserID, ul.LessonID, ul.Progress, ul.Status, ul.CompletedAt, ul.PointsEarned,
	).Scan(&ul.ID)
	if err != nil {
		return fmt.Errorf("upserting lesson progress: %w", err)
	}

	return nil
}

func (s *Store) ListUserLessons(ctx context.Context, userID uuid.UUID) ([]*gamify.UserLesson, error) {
	query := `SELECT ` + selectUserLessonColumns + `
		FROM user_lessons
		WHERE user_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing lesson progress: %w", err)
	}
	defer rows.Close()

	var userLessons []*gamify.UserLesson

	for rows.Next() {
		ul, err := scanUserLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning lesson progress: %w", err)
		}

		userLessons = append(userLessons, ul)
	}

	return userLessons, rows.Err()
}
