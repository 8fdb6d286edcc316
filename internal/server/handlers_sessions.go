package server

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radebe49/studywbuddy/internal/db"
	"github.com/radebe49/studywbuddy/internal/progress"
	"github.com/radebe49/studywbuddy/internal/types"
)

// handleCreateSession records a completed practice run and bumps the
// cumulative mastery counters.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.serviceError(w, &ErrValidation{Message: err.Error()})
		return
	}
	if req.SessionDate.IsZero() {
		req.SessionDate = time.Now()
	}

	id, err := s.db.CreateSession(r.Context(), db.SessionInput{
		ExamID:          req.ExamID,
		ExamName:        req.ExamName,
		SessionDate:     req.SessionDate,
		TotalQuestions:  req.TotalQuestions,
		CorrectCount:    req.CorrectCount,
		IncorrectCount:  req.IncorrectCount,
		ScorePercentage: req.ScorePercentage,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	answered := req.CorrectCount + req.IncorrectCount
	if err := s.db.AddPracticeCounters(r.Context(), req.CorrectCount, answered); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListSessions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// handleGetProgress derives the dashboard snapshot from the session history
// and the cumulative counters. The two loads are independent and run
// concurrently.
func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	var (
		sessions []db.PracticeSession
		settings *db.UserSettings
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		sessions, err = s.db.ListSessions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.db.GetSettings(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	history := make([]progress.Session, 0, len(sessions))
	for _, sess := range sessions {
		history = append(history, progress.Session{
			ExamID:          sess.ExamID,
			ExamName:        sess.ExamName,
			SessionDate:     sess.SessionDate,
			TotalQuestions:  sess.TotalQuestions,
			CorrectCount:    sess.CorrectCount,
			IncorrectCount:  sess.IncorrectCount,
			ScorePercentage: sess.ScorePercentage,
		})
	}

	snapshot := s.analytics.Summarize(history, settings.QuestionsMastered, settings.QuestionsAttempted)
	s.jsonResponse(w, http.StatusOK, snapshot)
}
