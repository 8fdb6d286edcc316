package db

import (
	"context"
	"fmt"
)

// GetSettings returns the settings row, which always exists (seeded by the
// migrations).
func (db *DB) GetSettings(ctx context.Context) (*UserSettings, error) {
	var s UserSettings
	err := db.pool.QueryRow(ctx,
		`SELECT specialization, questions_mastered, questions_attempted, updated_at
		 FROM user_settings WHERE id = 1`,
	).Scan(&s.Specialization, &s.QuestionsMastered, &s.QuestionsAttempted, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &s, nil
}

// UpdateSpecialization stores the chosen specialization.
func (db *DB) UpdateSpecialization(ctx context.Context, specialization string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE user_settings SET specialization = $1, updated_at = NOW() WHERE id = 1`,
		specialization,
	)
	if err != nil {
		return fmt.Errorf("failed to update specialization: %w", err)
	}
	return nil
}

// AddPracticeCounters bumps the cumulative mastered/attempted counters after
// a practice run.
func (db *DB) AddPracticeCounters(ctx context.Context, mastered, attempted int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE user_settings
		 SET questions_mastered = questions_mastered + $1,
		     questions_attempted = questions_attempted + $2,
		     updated_at = NOW()
		 WHERE id = 1`,
		mastered, attempted,
	)
	if err != nil {
		return fmt.Errorf("failed to update practice counters: %w", err)
	}
	return nil
}
