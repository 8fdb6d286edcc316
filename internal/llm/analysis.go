package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractedQuestion is one question the model identified and solved.
type ExtractedQuestion struct {
	Number      string `json:"number"`
	Text        string `json:"text"`
	Topic       string `json:"topic"`
	Difficulty  int    `json:"difficulty"`
	Solution    string `json:"solution"`
	Explanation string `json:"explanation"`
}

// ExamAnalysis is the structured output of the exam analysis prompt.
type ExamAnalysis struct {
	ExamTitle      string              `json:"exam_title"`
	TotalMarks     int                 `json:"total_marks"`
	Questions      []ExtractedQuestion `json:"questions"`
	CriticalTopics []string            `json:"critical_topics"`
	StudyPlan      string              `json:"study_plan"`
}

// ParseExamAnalysis decodes a model response into an ExamAnalysis. The
// response is tried as raw JSON first, then with markdown fences stripped,
// then as the outermost brace-delimited object, matching how the upstream
// extraction service degrades.
func ParseExamAnalysis(response string) (*ExamAnalysis, error) {
	candidates := []string{
		response,
		CleanJSONBlock(response),
		ExtractJSONObject(CleanJSONBlock(response)),
	}

	var lastErr error
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		var analysis ExamAnalysis
		if err := json.Unmarshal([]byte(candidate), &analysis); err != nil {
			lastErr = err
			continue
		}
		return &analysis, nil
	}

	if lastErr == nil {
		return nil, fmt.Errorf("empty response")
	}
	return nil, fmt.Errorf("failed to parse exam analysis JSON: %w", lastErr)
}
