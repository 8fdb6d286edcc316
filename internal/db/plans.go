package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveStudyPlan stores the analysis result for an exam. Re-processing an
// exam replaces its plan.
func (db *DB) SaveStudyPlan(ctx context.Context, examID uuid.UUID, rawJSON []byte, markdownPlan string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO study_plans (exam_id, raw_json, markdown_plan)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (exam_id) DO UPDATE SET raw_json = $2, markdown_plan = $3, created_at = NOW()`,
		examID, rawJSON, markdownPlan,
	)
	if err != nil {
		return fmt.Errorf("failed to save study plan: %w", err)
	}
	return nil
}

// GetStudyPlanByExam retrieves the plan for an exam. Returns (nil, nil) when
// none exists.
func (db *DB) GetStudyPlanByExam(ctx context.Context, examID uuid.UUID) (*StudyPlan, error) {
	var p StudyPlan
	err := db.pool.QueryRow(ctx,
		`SELECT id, exam_id, raw_json, markdown_plan, created_at
		 FROM study_plans WHERE exam_id = $1`,
		examID,
	).Scan(&p.ID, &p.ExamID, &p.RawJSON, &p.MarkdownPlan, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get study plan: %w", err)
	}
	return &p, nil
}
