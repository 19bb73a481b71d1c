package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ananyadas/finquest/internal/goal"
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

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var statusStr string

	var category sql.NullString

	if err := s.Scan(
		&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount,
		&g.Deadline, &statusStr, &category, &g.CreatedAt,
	); err != nil {
		return nil, err
	}

	g.Status = goal.Status(statusStr)
	g.Category = category.String

	return &g, nil
}

const selectGoalColumns = `
	id, user_id, name, target_amount, current_amount, deadline, status, category, created_at
`

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, status, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.UserID,
		g.Name,
		g.TargetAmount,
		g.CurrentAmount,
		g.Deadline,
		g.Status,
		g.Category,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	return nil
}

func (s *Store) ListGoals(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + `
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// AddGoalProgress applies the increment under a row lock so that two
// concurrent updates cannot both observe the pre-completion state.
func (s *Store) AddGoalProgress(ctx context.Context, id uuid.UUID, amount int64) (*goal.Goal, bool, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	row := dbTx.QueryRowContext(ctx,
		`SELECT `+selectGoalColumns+` FROM goals WHERE id = $1 FOR UPDATE`, id)

	g, err := scanGoal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, goal.ErrNotFound
		}

		return nil, false, fmt.Errorf("locking goal: %w", err)
	}

	wasCompleted := g.Status == goal.StatusCompleted

	g.CurrentAmount += amount
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = goal.StatusCompleted
	}

	_, err = dbTx.ExecContext(ctx,
		`UPDATE goals SET current_amount = $1, status = $2 WHERE id = $3`,
		g.CurrentAmount, g.Status, g.ID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("updating goal progress: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, false, fmt.Errorf("committing goal progress: %w", err)
	}

	completedNow := !wasCompleted && g.Status == goal.StatusCompleted

	return g, completedNow, nil
}

func scanJar(s scanner) (*goal.Jar, error) {
	var j goal.Jar

	var statusStr string

	if err := s.Scan(
		&j.ID, &j.UserID, &j.Name, &j.TargetAmount, &j.CurrentAmount,
		&j.Color, &j.Emoji, &j.Deadline, &statusStr, &j.CreatedAt,
	); err != nil {
		return nil, err
	}

	j.Status = goal.Status(statusStr)

	return &j, nil
}

const selectJarColumns = `
	id, user_id, name, target_amount, current_amount, color, emoji, deadline, status, created_at
`

func (s *Store) CreateJar(ctx context.Context, j *goal.Jar) error {
	query := `
		INSERT INTO savings_jars (user_id, name, target_amount, current_amount, color, emoji, deadline, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		j.UserID,
		j.Name,
		j.TargetAmount,
		j.CurrentAmount,
		j.Color,
		j.Emoji,
		j.Deadline,
		j.Status,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating savings jar: %w", err)
	}

	return nil
}

func (s *Store) GetJar(ctx context.Context, id uuid.UUID) (*goal.Jar, error) {
	query := `SELECT ` + selectJarColumns + ` FROM savings_jars WHERE id = $1`

	j, err := scanJar(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting savings jar: %w", err)
	}

	return j, nil
}

func (s *Store) DeleteJar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM savings_jars WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting savings jar: %w", err)
	}

	return nil
}

func (s *Store) ListJars(ctx context.Context, userID uuid.UUID) ([]*goal.Jar, error) {
	query := `SELECT ` + selectJarColumns + `
		FROM savings_jars
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing savings jars: %w", err)
	}
	defer rows.Close()

	var jars []*goal.Jar

	for rows.Next() {
		j, err := scanJar(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning savings jar: %w", err)
		}

		jars = append(jars, j)
	}

	return jars, rows.Err()
}

func (s *Store) AddJarProgress(ctx context.Context, id uuid.UUID, amount int64) (*goal.Jar, bool, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	row := dbTx.QueryRowContext(ctx,
		`SELECT `+selectJarColumns+` FROM savings_jars WHERE id = $1 FOR UPDATE`, id)

	j, err := scanJar(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, goal.ErrNotFound
		}

		return nil, false, fmt.Errorf("locking savings jar: %w", err)
	}

	wasCompleted := j.Status == goal.StatusCompleted

	j.CurrentAmount += amount
	if j.CurrentAmount >= j.TargetAmount {
		j.Status = goal.StatusCompleted
	}

	_, err = dbTx.ExecContext(ctx,
		`UPDATE savings_jars SET current_amount = $1, status = $2 WHERE id = $3`,
		j.CurrentAmount, j.Status, j.ID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("updating jar progress: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, false, fmt.Errorf("committing jar progress: %w", err)
	}

	completedNow := !wasCompleted && j.Status == goal.StatusCompleted

	return j, completedNow, nil
}
