package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionInput is used when recording a completed practice run.
type SessionInput struct {
	ExamID          uuid.UUID
	ExamName        string
	SessionDate     time.Time
	TotalQuestions  int
	CorrectCount    int
	IncorrectCount  int
	ScorePercentage float64
}

// CreateSession records a completed practice run and returns its ID.
func (db *DB) CreateSession(ctx context.Context, in SessionInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO practice_sessions
		 (exam_id, exam_name, session_date, total_questions, correct_count, incorrect_count, score_percentage)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		in.ExamID, in.ExamName, in.SessionDate, in.TotalQuestions, in.CorrectCount, in.IncorrectCount, in.ScorePercentage,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// ListSessions returns all practice sessions ordered by session date
// ascending, the order the analytics consume.
func (db *DB) ListSessions(ctx context.Context) ([]PracticeSession, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, exam_id, exam_name, session_date, total_questions, correct_count, incorrect_count, score_percentage
		 FROM practice_sessions ORDER BY session_date ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]PracticeSession, 0)
	for rows.Next() {
		var s PracticeSession
		if err := rows.Scan(&s.ID, &s.ExamID, &s.ExamName, &s.SessionDate,
			&s.TotalQuestions, &s.CorrectCount, &s.IncorrectCount, &s.ScorePercentage); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
