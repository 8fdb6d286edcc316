// Package pipeline provides the high-level orchestration for exam analysis.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/radebe49/studywbuddy/internal/db"
	"github.com/radebe49/studywbuddy/internal/ingestion"
	"github.com/radebe49/studywbuddy/internal/llm"
	"github.com/radebe49/studywbuddy/internal/schemas"
	"github.com/radebe49/studywbuddy/internal/taxonomy"
)

// ProgressEvent represents a progress update during exam processing
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	ExamID  string `json:"exam_id,omitempty"`
}

// ProgressCallback is called when processing progress occurs
type ProgressCallback func(event ProgressEvent)

// Store is the persistence surface the processor needs.
type Store interface {
	UpdateExamStatus(ctx context.Context, examID uuid.UUID, status string) error
	CompleteExam(ctx context.Context, examID uuid.UUID) error
	FailExam(ctx context.Context, examID uuid.UUID, reason string) error
	SaveStudyPlan(ctx context.Context, examID uuid.UUID, rawJSON []byte, markdownPlan string) error
	ReplaceQuestions(ctx context.Context, examID uuid.UUID, questions []db.QuestionInput) error
}

// Processor turns an uploaded exam file into stored questions and a study plan.
type Processor struct {
	store      Store
	llmClient  llm.Client
	classifier *taxonomy.Classifier
	onProgress ProgressCallback
}

// Options holds configuration for the processor.
type Options struct {
	Store      Store
	LLMClient  llm.Client
	Classifier *taxonomy.Classifier
	OnProgress ProgressCallback
}

// NewProcessor creates a processor. A nil classifier falls back to the
// default catalog.
func NewProcessor(opts Options) *Processor {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = taxonomy.NewClassifier(nil, nil)
	}
	return &Processor{
		store:      opts.Store,
		llmClient:  opts.LLMClient,
		classifier: classifier,
		onProgress: opts.OnProgress,
	}
}

// emit calls the progress callback if configured
func (p *Processor) emit(examID uuid.UUID, step, message string) {
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{Step: step, Message: message, ExamID: examID.String()})
	}
}

// Process runs the full analysis pipeline for an uploaded exam file. The exam
// record is moved through processing to completed, or to failed with a reason.
func (p *Processor) Process(ctx context.Context, examID uuid.UUID, filePath string) error {
	if err := p.store.UpdateExamStatus(ctx, examID, db.ExamStatusProcessing); err != nil {
		return err
	}

	analysis, rawJSON, err := p.analyze(ctx, examID, filePath)
	if err != nil {
		log.Printf("Exam %s processing failed: %v", examID, err)
		if failErr := p.store.FailExam(ctx, examID, err.Error()); failErr != nil {
			log.Printf("Exam %s could not be marked failed: %v", examID, failErr)
		}
		return err
	}

	if err := p.persist(ctx, examID, analysis, rawJSON); err != nil {
		log.Printf("Exam %s persistence failed: %v", examID, err)
		if failErr := p.store.FailExam(ctx, examID, err.Error()); failErr != nil {
			log.Printf("Exam %s could not be marked failed: %v", examID, failErr)
		}
		return err
	}

	if err := p.store.CompleteExam(ctx, examID); err != nil {
		return err
	}
	p.emit(examID, "completed", "Exam analysis complete")
	return nil
}

// analyze extracts text from the file and runs the LLM analysis over it.
func (p *Processor) analyze(ctx context.Context, examID uuid.UUID, filePath string) (*llm.ExamAnalysis, []byte, error) {
	p.emit(examID, "extracting", "Extracting text from exam file")
	text, err := ingestion.ExtractText(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("text extraction failed: %w", err)
	}

	p.emit(examID, "analyzing", "Analyzing exam with language model")
	prompt := llm.BuildAnalysisPrompt(text)
	response, err := p.llmClient.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, nil, fmt.Errorf("exam analysis failed: %w", err)
	}

	analysis, err := llm.ParseExamAnalysis(response)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis response could not be parsed: %w", err)
	}
	if err := analysis.Validate(); err != nil {
		return nil, nil, fmt.Errorf("analysis response incomplete: %w", err)
	}

	rawJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	if err := schemas.ValidateExamAnalysis(string(rawJSON)); err != nil {
		return nil, nil, fmt.Errorf("analysis response invalid: %w", err)
	}
	return analysis, rawJSON, nil
}

// persist classifies each question and stores the plan and questions.
func (p *Processor) persist(ctx context.Context, examID uuid.UUID, analysis *llm.ExamAnalysis, rawJSON []byte) error {
	p.emit(examID, "classifying", fmt.Sprintf("Classifying %d questions", len(analysis.Questions)))

	questions := make([]db.QuestionInput, 0, len(analysis.Questions))
	for _, q := range analysis.Questions {
		coord := p.classifier.Classify(q.Topic)
		questions = append(questions, db.QuestionInput{
			Number:           q.Number,
			Text:             q.Text,
			Topic:            q.Topic,
			Difficulty:       q.Difficulty,
			Solution:         q.Solution,
			Explanation:      q.Explanation,
			Area:             string(coord.Area),
			Handlungsbereich: string(coord.Handlungsbereich),
		})
	}

	p.emit(examID, "saving", "Saving study plan and questions")
	if err := p.store.SaveStudyPlan(ctx, examID, rawJSON, BuildMarkdownPlan(analysis)); err != nil {
		return err
	}
	return p.store.ReplaceQuestions(ctx, examID, questions)
}

// BuildMarkdownPlan renders an analysis as a readable study plan document.
func BuildMarkdownPlan(analysis *llm.ExamAnalysis) string {
	var b strings.Builder

	title := analysis.ExamTitle
	if title == "" {
		title = "Exam Analysis"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if analysis.TotalMarks > 0 {
		fmt.Fprintf(&b, "Total marks: %d\n\n", analysis.TotalMarks)
	}

	if len(analysis.CriticalTopics) > 0 {
		b.WriteString("## Critical Topics\n\n")
		for _, topic := range analysis.CriticalTopics {
			fmt.Fprintf(&b, "- %s\n", topic)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Study Plan\n\n")
	b.WriteString(strings.TrimSpace(analysis.StudyPlan))
	b.WriteString("\n")

	return b.String()
}
