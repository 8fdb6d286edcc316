package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radebe49/studywbuddy/internal/db"
	"github.com/radebe49/studywbuddy/internal/llm"
	"github.com/radebe49/studywbuddy/internal/taxonomy"
)

// fakeStore records the persistence calls the processor makes.
type fakeStore struct {
	statuses  []string
	completed bool
	failedMsg string
	rawJSON   []byte
	markdown  string
	questions []db.QuestionInput
}

func (f *fakeStore) UpdateExamStatus(_ context.Context, _ uuid.UUID, status string) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeStore) CompleteExam(_ context.Context, _ uuid.UUID) error {
	f.completed = true
	return nil
}

func (f *fakeStore) FailExam(_ context.Context, _ uuid.UUID, reason string) error {
	f.failedMsg = reason
	return nil
}

func (f *fakeStore) SaveStudyPlan(_ context.Context, _ uuid.UUID, rawJSON []byte, markdownPlan string) error {
	f.rawJSON = rawJSON
	f.markdown = markdownPlan
	return nil
}

func (f *fakeStore) ReplaceQuestions(_ context.Context, _ uuid.UUID, questions []db.QuestionInput) error {
	f.questions = questions
	return nil
}

// stubClient returns a canned response or error.
type stubClient struct {
	response string
	err      error
}

func (c *stubClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *stubClient) Close() error { return nil }

const analysisResponse = `{
	"exam_title": "Frühjahr 2024",
	"total_marks": 100,
	"questions": [
		{
			"number": "1",
			"text": "Berechnen Sie die Lohnkosten.",
			"topic": "Betriebliches Kostenwesen",
			"difficulty": 4,
			"solution": "Siehe Rechnung.",
			"explanation": "Grundlagen der Kostenrechnung."
		},
		{
			"number": "2",
			"text": "Erklären Sie den Begriff Delegation.",
			"topic": "Personalführung",
			"difficulty": 3,
			"solution": "Übertragung von Aufgaben.",
			"explanation": ""
		}
	],
	"critical_topics": ["Kostenrechnung"],
	"study_plan": "Woche 1: Kostenrechnung wiederholen."
}`

func writeExamFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exam.txt")
	require.NoError(t, os.WriteFile(path, []byte("Aufgabe 1: Berechnen Sie die Lohnkosten."), 0o644))
	return path
}

func TestProcessor_Process_Success(t *testing.T) {
	store := &fakeStore{}
	var events []ProgressEvent
	p := NewProcessor(Options{
		Store:      store,
		LLMClient:  &stubClient{response: analysisResponse},
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})

	examID := uuid.New()
	err := p.Process(context.Background(), examID, writeExamFile(t))
	require.NoError(t, err)

	assert.Equal(t, []string{db.ExamStatusProcessing}, store.statuses)
	assert.True(t, store.completed)
	assert.Empty(t, store.failedMsg)

	require.Len(t, store.questions, 2)
	assert.Equal(t, string(taxonomy.AreaHQ), store.questions[0].Area)
	assert.Equal(t, string(taxonomy.Organisation), store.questions[0].Handlungsbereich)
	assert.Equal(t, string(taxonomy.Fuehrung), store.questions[1].Handlungsbereich)

	assert.Contains(t, store.markdown, "# Frühjahr 2024")
	assert.Contains(t, store.markdown, "Woche 1")
	assert.NotEmpty(t, store.rawJSON)

	require.NotEmpty(t, events)
	assert.Equal(t, "completed", events[len(events)-1].Step)
	assert.Equal(t, examID.String(), events[0].ExamID)
}

func TestProcessor_Process_LLMFailure(t *testing.T) {
	store := &fakeStore{}
	p := NewProcessor(Options{
		Store:     store,
		LLMClient: &stubClient{err: fmt.Errorf("quota exceeded")},
	})

	err := p.Process(context.Background(), uuid.New(), writeExamFile(t))
	require.Error(t, err)

	assert.False(t, store.completed)
	assert.Contains(t, store.failedMsg, "quota exceeded")
	assert.Empty(t, store.questions)
}

func TestProcessor_Process_UnparseableResponse(t *testing.T) {
	store := &fakeStore{}
	p := NewProcessor(Options{
		Store:     store,
		LLMClient: &stubClient{response: "I cannot analyze this exam."},
	})

	err := p.Process(context.Background(), uuid.New(), writeExamFile(t))
	require.Error(t, err)
	assert.Contains(t, store.failedMsg, "parsed")
	assert.False(t, store.completed)
}

func TestProcessor_Process_MissingFile(t *testing.T) {
	store := &fakeStore{}
	p := NewProcessor(Options{
		Store:     store,
		LLMClient: &stubClient{response: analysisResponse},
	})

	err := p.Process(context.Background(), uuid.New(), filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, store.failedMsg, "text extraction failed")
}

func TestBuildMarkdownPlan(t *testing.T) {
	analysis := &llm.ExamAnalysis{
		ExamTitle:      "Herbst 2023",
		TotalMarks:     90,
		CriticalTopics: []string{"Netzwerktechnik", "SPS"},
		StudyPlan:      "Tag 1: Netzwerktechnik.\n",
	}

	md := BuildMarkdownPlan(analysis)
	assert.Contains(t, md, "# Herbst 2023")
	assert.Contains(t, md, "Total marks: 90")
	assert.Contains(t, md, "- Netzwerktechnik")
	assert.Contains(t, md, "## Study Plan")
	assert.Contains(t, md, "Tag 1: Netzwerktechnik.")
}

func TestBuildMarkdownPlan_NoTitle(t *testing.T) {
	md := BuildMarkdownPlan(&llm.ExamAnalysis{StudyPlan: "Lernen."})
	assert.Contains(t, md, "# Exam Analysis")
	assert.NotContains(t, md, "Total marks")
}
