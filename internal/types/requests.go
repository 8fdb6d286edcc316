// Package types provides request and response type definitions shared by the
// HTTP API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateSessionRequest records the outcome of a completed practice run.
type CreateSessionRequest struct {
	ExamID          uuid.UUID `json:"exam_id" validate:"required"`
	ExamName        string    `json:"exam_name" validate:"required,min=1"`
	SessionDate     time.Time `json:"session_date"`
	TotalQuestions  int       `json:"total_questions" validate:"required,gt=0"`
	CorrectCount    int       `json:"correct_count" validate:"gte=0"`
	IncorrectCount  int       `json:"incorrect_count" validate:"gte=0"`
	ScorePercentage float64   `json:"score_percentage" validate:"gte=0,lte=100"`
}

// UpdateSettingsRequest changes the user's chosen specialization.
type UpdateSettingsRequest struct {
	Specialization string `json:"specialization" validate:"required,oneof='None' 'Infrastruktursysteme und Betriebstechnik' 'Automatisierungs- und Informationstechnik'"`
}

// Validate validates the CreateSessionRequest using the validator.
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.CorrectCount+r.IncorrectCount > r.TotalQuestions {
		return &CountMismatchError{
			Correct:   r.CorrectCount,
			Incorrect: r.IncorrectCount,
			Total:     r.TotalQuestions,
		}
	}
	return nil
}

// Validate validates the UpdateSettingsRequest using the validator.
func (r *UpdateSettingsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
