package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysis = `{
	"exam_title": "Probeklausur",
	"total_marks": 80,
	"questions": [
		{
			"number": "1",
			"text": "Was ist Ohmsches Gesetz?",
			"topic": "Elektrotechnik",
			"difficulty": 3,
			"solution": "U = R * I",
			"explanation": "Grundgesetz der Elektrotechnik."
		}
	],
	"critical_topics": ["Elektrotechnik"],
	"study_plan": "## Week 1"
}`

func TestValidateExamAnalysis_Valid(t *testing.T) {
	assert.NoError(t, ValidateExamAnalysis(validAnalysis))
}

func TestValidateExamAnalysis_MissingStudyPlan(t *testing.T) {
	doc := `{
		"questions": [{"text": "Q", "topic": "T", "solution": "S"}]
	}`
	err := ValidateExamAnalysis(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateExamAnalysis_EmptyQuestions(t *testing.T) {
	doc := `{"questions": [], "study_plan": "plan"}`
	assert.Error(t, ValidateExamAnalysis(doc))
}

func TestValidateExamAnalysis_DifficultyOutOfRange(t *testing.T) {
	doc := `{
		"questions": [{"text": "Q", "topic": "T", "solution": "S", "difficulty": 11}],
		"study_plan": "plan"
	}`
	assert.Error(t, ValidateExamAnalysis(doc))
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	assert.Error(t, ValidateJSONString(ExamAnalysisSchema, "{not json"))
}
