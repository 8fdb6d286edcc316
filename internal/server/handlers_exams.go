package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/radebe49/studywbuddy/internal/db"
	"github.com/radebe49/studywbuddy/internal/taxonomy"
	"github.com/radebe49/studywbuddy/internal/types"
)

// maxUploadBytes limits exam uploads to 25 MB.
const maxUploadBytes = 25 << 20

// processTimeout bounds one background analysis run.
const processTimeout = 10 * time.Minute

func allowedUploadExt(ext string) bool {
	switch ext {
	case ".pdf", ".txt", ".html", ".htm":
		return true
	default:
		return false
	}
}

// handleUpload accepts an exam file, stores it, and kicks off analysis in the
// background. The response returns immediately with the exam in the
// uploading state.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExt(ext) {
		s.errorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Unsupported file type %q: use pdf, txt, or html", ext))
		return
	}

	storagePath := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	dst, err := os.Create(storagePath)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(storagePath)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store upload: "+err.Error())
		return
	}
	dst.Close()

	examID, err := s.db.CreateExam(r.Context(), header.Filename, storagePath)
	if err != nil {
		os.Remove(storagePath)
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	// The request context dies with the response; the analysis gets its own.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		defer cancel()
		defer func() {
			if err := os.Remove(storagePath); err != nil {
				log.Printf("Failed to remove upload %s: %v", storagePath, err)
			}
		}()
		if err := s.processor.Process(ctx, examID, storagePath); err != nil {
			log.Printf("Exam %s processing error: %v", examID, err)
		}
	}()

	s.jsonResponse(w, http.StatusAccepted, types.UploadResponse{
		ExamID:  examID.String(),
		Status:  db.ExamStatusUploading,
		Message: "Exam uploaded, analysis started",
	})
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := s.db.ListExams(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"exams": exams,
		"count": len(exams),
	})
}

func (s *Server) handleGetExam(w http.ResponseWriter, r *http.Request) {
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

	s.jsonResponse(w, http.StatusOK, exam)
}

// handleGetExamQuestions returns the exam's questions partitioned into the
// taxonomy structure, with the user's specialization filter applied.
func (s *Server) handleGetExamQuestions(w http.ResponseWriter, r *http.Request) {
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
	if exam.Status != db.ExamStatusCompleted {
		s.serviceError(w, &ErrExamNotReady{ExamID: examID, Status: exam.Status})
		return
	}

	questions, err := s.db.ListQuestionsByExam(r.Context(), examID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	settings, err := s.db.GetSettings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	spec := taxonomy.ParseSpecialization(settings.Specialization)

	grouping := taxonomy.Group(s.classifier, questions, spec)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"exam_id":        examID.String(),
		"specialization": string(spec),
		"groups":         grouping,
		"visibility":     taxonomy.DefaultVisibility(),
		"count":          grouping.Count(),
	})
}
