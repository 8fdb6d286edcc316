package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ReplaceQuestions replaces the extracted questions of an exam in one
// transaction, preserving extraction order via the ordinal column.
func (db *DB) ReplaceQuestions(ctx context.Context, examID uuid.UUID, questions []QuestionInput) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM exam_questions WHERE exam_id = $1`, examID); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}

	for i, q := range questions {
		var hb *string
		if q.Handlungsbereich != "" {
			hb = &q.Handlungsbereich
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO exam_questions
			 (exam_id, number, text, topic, difficulty, solution, explanation, area, handlungsbereich, ordinal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			examID, q.Number, q.Text, q.Topic, q.Difficulty, q.Solution, q.Explanation, q.Area, hb, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert question %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit questions: %w", err)
	}
	return nil
}

// ListQuestionsByExam returns the extracted questions of an exam in
// extraction order.
func (db *DB) ListQuestionsByExam(ctx context.Context, examID uuid.UUID) ([]ExamQuestion, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, exam_id, number, text, topic, difficulty, solution, explanation,
		        area, handlungsbereich, ordinal, created_at
		 FROM exam_questions WHERE exam_id = $1 ORDER BY ordinal`,
		examID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]ExamQuestion, 0)
	for rows.Next() {
		var q ExamQuestion
		if err := rows.Scan(&q.ID, &q.ExamID, &q.Number, &q.Text, &q.Topic, &q.Difficulty,
			&q.Solution, &q.Explanation, &q.Area, &q.Handlungsbereich, &q.Ordinal, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
