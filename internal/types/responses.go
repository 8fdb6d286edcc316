package types

import "fmt"

// CountMismatchError indicates a session whose answered counts exceed the
// question total.
type CountMismatchError struct {
	Correct   int
	Incorrect int
	Total     int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("correct (%d) + incorrect (%d) exceeds total questions (%d)",
		e.Correct, e.Incorrect, e.Total)
}

// UploadResponse is returned immediately after an exam upload is accepted.
type UploadResponse struct {
	ExamID  string `json:"exam_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
