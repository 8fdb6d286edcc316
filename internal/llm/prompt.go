package llm

import (
	"fmt"
	"strings"
)

// MaxExamTextChars caps how much extracted document text is sent to the
// model in a single analysis request.
const MaxExamTextChars = 1_000_000

const analysisSystemPrompt = `You are an expert academic tutor with 20 years of experience in grading and exam prep.
Your goal is to analyze the provided exam paper text and generate a personalized study plan.

### Phase 1: Extraction & Solving
1. Identify every question in the exam.
2. For each question:
    - Determine the Topic/Category.
    - Solve it (generate the correct answer and a brief explanation).
    - Rate the difficulty (1-10).

### Phase 2: Analysis
1. Identify the "Critical Topics" (topics that appear most frequently or carry the most marks).
2. Identify "Trap Questions" (questions that commonly trick students).

### Phase 3: The Study Plan
Generate a structured weekly study plan.
- **Week 1:** Focus on the highest-weighted topics found in this exam.
- **Week 2:** Practice "Trap Questions" and medium-difficulty topics.
- **Week 3:** Mock exams and time management.

### Output Format (Strict JSON)
Please output ONLY the JSON object, no introductory text.
{
  "exam_title": "String",
  "total_marks": "Integer",
  "questions": [
    {
      "number": "String",
      "text": "String",
      "topic": "String",
      "difficulty": 1-10,
      "solution": "String",
      "explanation": "String"
    }
  ],
  "critical_topics": ["String"],
  "study_plan": "Markdown String"
}`

// BuildAnalysisPrompt constructs the exam analysis prompt from the extracted
// document text, truncated to MaxExamTextChars.
func BuildAnalysisPrompt(examText string) string {
	if len(examText) > MaxExamTextChars {
		examText = examText[:MaxExamTextChars]
	}

	var sb strings.Builder
	sb.WriteString(analysisSystemPrompt)
	sb.WriteString("\n\nHere is the exam text:\n\n")
	sb.WriteString(examText)
	return sb.String()
}

// Validate performs a structural sanity check on an analysis before it is
// persisted. Schema validation (internal/schemas) covers the JSON shape; this
// covers semantics the schema cannot express.
func (a *ExamAnalysis) Validate() error {
	if len(a.Questions) == 0 {
		return fmt.Errorf("analysis contains no questions")
	}
	if strings.TrimSpace(a.StudyPlan) == "" {
		return fmt.Errorf("analysis is missing a study plan")
	}
	return nil
}
