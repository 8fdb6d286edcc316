package db

import (
	"context"
	"fmt"
)

// migrations holds the idempotent schema statements, applied in order on
// startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exams (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		filename TEXT NOT NULL,
		storage_path TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'uploading',
		error_message TEXT,
		upload_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		processed_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS study_plans (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		exam_id UUID NOT NULL UNIQUE REFERENCES exams(id) ON DELETE CASCADE,
		raw_json JSONB NOT NULL,
		markdown_plan TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS exam_questions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
		number TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		topic TEXT NOT NULL DEFAULT '',
		difficulty INT NOT NULL DEFAULT 0,
		solution TEXT NOT NULL DEFAULT '',
		explanation TEXT NOT NULL DEFAULT '',
		area TEXT NOT NULL DEFAULT 'Sonstige',
		handlungsbereich TEXT,
		ordinal INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_exam_questions_exam ON exam_questions(exam_id, ordinal)`,
	`CREATE TABLE IF NOT EXISTS practice_sessions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		exam_id UUID NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
		exam_name TEXT NOT NULL,
		session_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		total_questions INT NOT NULL,
		correct_count INT NOT NULL,
		incorrect_count INT NOT NULL,
		score_percentage DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_practice_sessions_date ON practice_sessions(session_date)`,
	`CREATE TABLE IF NOT EXISTS user_settings (
		id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		specialization TEXT NOT NULL DEFAULT 'None',
		questions_mastered INT NOT NULL DEFAULT 0,
		questions_attempted INT NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO user_settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
}

// Migrate applies the schema. All statements are idempotent, so running it
// on every startup is safe.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
