package server

import (
	"net/http"

	"github.com/google/uuid"
)

// handleGetStudyPlan returns the generated study plan for a processed exam.
func (s *Server) handleGetStudyPlan(w http.ResponseWriter, r *http.Request) {
	examID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid exam ID")
		return
	}

	exam, err := s.db.GetExam(r.Context(), examID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if exam == nil {
		s.serviceError(w, &ErrExamNotFound{ExamID: examID})
		return
	}

	plan, err := s.db.GetStudyPlanByExam(r.Context(), examID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if plan == nil {
		s.serviceError(w, &ErrExamNotReady{ExamID: examID, Status: exam.Status})
		return
	}

	s.jsonResponse(w, http.StatusOK, plan)
}
