package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateExam inserts a new exam record in the uploading state and returns
// its ID.
func (db *DB) CreateExam(ctx context.Context, filename, storagePath string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exams (filename, storage_path, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		filename, storagePath, ExamStatusUploading,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create exam: %w", err)
	}
	return id, nil
}

// UpdateExamStatus moves an exam to a new processing status.
func (db *DB) UpdateExamStatus(ctx context.Context, examID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE exams SET status = $1 WHERE id = $2`,
		status, examID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exam status: %w", err)
	}
	return nil
}

// CompleteExam marks an exam as processed successfully.
func (db *DB) CompleteExam(ctx context.Context, examID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE exams SET status = $1, processed_at = NOW() WHERE id = $2`,
		ExamStatusCompleted, examID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete exam: %w", err)
	}
	return nil
}

// FailExam marks an exam as failed with the given reason.
func (db *DB) FailExam(ctx context.Context, examID uuid.UUID, reason string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE exams SET status = $1, error_message = $2, processed_at = NOW() WHERE id = $3`,
		ExamStatusFailed, reason, examID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark exam failed: %w", err)
	}
	return nil
}

// GetExam retrieves an exam by ID. Returns (nil, nil) when it does not exist.
func (db *DB) GetExam(ctx context.Context, examID uuid.UUID) (*Exam, error) {
	var e Exam
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, storage_path, status, error_message, upload_date, processed_at
		 FROM exams WHERE id = $1`,
		examID,
	).Scan(&e.ID, &e.Filename, &e.StoragePath, &e.Status, &e.ErrorMessage, &e.UploadDate, &e.ProcessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &e, nil
}

// ListExams returns all exams, most recent upload first.
func (db *DB) ListExams(ctx context.Context) ([]Exam, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, storage_path, status, error_message, upload_date, processed_at
		 FROM exams ORDER BY upload_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	defer rows.Close()

	exams := make([]Exam, 0)
	for rows.Next() {
		var e Exam
		if err := rows.Scan(&e.ID, &e.Filename, &e.StoragePath, &e.Status, &e.ErrorMessage, &e.UploadDate, &e.ProcessedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exam: %w", err)
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
