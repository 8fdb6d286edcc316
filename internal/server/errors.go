// Package server provides the HTTP REST API for the study companion.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrExamNotFound indicates the exam does not exist
type ErrExamNotFound struct {
	ExamID uuid.UUID
}

func (e *ErrExamNotFound) Error() string {
	return fmt.Sprintf("exam not found: %s", e.ExamID)
}

// ErrExamNotReady indicates the exam has not finished processing
type ErrExamNotReady struct {
	ExamID uuid.UUID
	Status string
}

func (e *ErrExamNotReady) Error() string {
	return fmt.Sprintf("exam %s is not ready: status is %s", e.ExamID, e.Status)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrExamNotFound:
		return http.StatusNotFound
	case *ErrExamNotReady:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
