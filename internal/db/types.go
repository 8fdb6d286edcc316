package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Exam status constants; an exam moves uploading -> processing ->
// completed | failed.
const (
	ExamStatusUploading  = "uploading"
	ExamStatusProcessing = "processing"
	ExamStatusCompleted  = "completed"
	ExamStatusFailed     = "failed"
)

// Exam is one uploaded exam document and its processing state.
type Exam struct {
	ID           uuid.UUID  `json:"id"`
	Filename     string     `json:"filename"`
	StoragePath  string     `json:"-"` // local temp path, not exposed
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	UploadDate   time.Time  `json:"upload_date"`
	ProcessedAt  *time.Time `json:"processed_at,omitempty"`
}

// StudyPlan is the AI-generated plan for one processed exam.
type StudyPlan struct {
	ID           uuid.UUID       `json:"id"`
	ExamID       uuid.UUID       `json:"exam_id"`
	RawJSON      json.RawMessage `json:"raw_json"`
	MarkdownPlan string          `json:"markdown_plan"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ExamQuestion is one extracted, solved question. Area and Handlungsbereich
// carry the taxonomy coordinate computed at processing time.
type ExamQuestion struct {
	ID               uuid.UUID `json:"id"`
	ExamID           uuid.UUID `json:"exam_id"`
	Number           string    `json:"number"`
	Text             string    `json:"text"`
	Topic            string    `json:"topic"`
	Difficulty       int       `json:"difficulty"`
	Solution         string    `json:"solution"`
	Explanation      string    `json:"explanation"`
	Area             string    `json:"area"`
	Handlungsbereich *string   `json:"handlungsbereich,omitempty"`
	Ordinal          int       `json:"ordinal"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubjectText implements taxonomy.Classifiable. Extracted questions carry a
// topic only.
func (q ExamQuestion) SubjectText() string { return "" }

// TopicText implements taxonomy.Classifiable.
func (q ExamQuestion) TopicText() string { return q.Topic }

// PracticeSession is one completed practice run, immutable after creation.
type PracticeSession struct {
	ID              uuid.UUID `json:"id"`
	ExamID          uuid.UUID `json:"exam_id"`
	ExamName        string    `json:"exam_name"`
	SessionDate     time.Time `json:"session_date"`
	TotalQuestions  int       `json:"total_questions"`
	CorrectCount    int       `json:"correct_count"`
	IncorrectCount  int       `json:"incorrect_count"`
	ScorePercentage float64   `json:"score_percentage"`
}

// UserSettings is the single-row settings entity: the chosen specialization
// and the cumulative practice counters the dashboard consumes.
type UserSettings struct {
	Specialization     string    `json:"specialization"`
	QuestionsMastered  int       `json:"questions_mastered"`
	QuestionsAttempted int       `json:"questions_attempted"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// QuestionInput is used when persisting the questions of a processed exam.
type QuestionInput struct {
	Number           string
	Text             string
	Topic            string
	Difficulty       int
	Solution         string
	Explanation      string
	Area             string
	Handlungsbereich string // empty when the area has no domain
}
