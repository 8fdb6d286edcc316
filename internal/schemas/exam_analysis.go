package schemas

// ExamAnalysisSchema is the JSON Schema for the exam analysis the model
// returns: identified questions with solutions, critical topics, and the
// generated study plan.
const ExamAnalysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ExamAnalysis",
  "type": "object",
  "required": ["questions", "study_plan"],
  "properties": {
    "exam_title": { "type": "string" },
    "total_marks": { "type": "integer", "minimum": 0 },
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["text", "topic", "solution"],
        "properties": {
          "number": { "type": "string" },
          "text": { "type": "string", "minLength": 1 },
          "topic": { "type": "string" },
          "difficulty": { "type": "integer", "minimum": 1, "maximum": 10 },
          "solution": { "type": "string" },
          "explanation": { "type": "string" }
        }
      }
    },
    "critical_topics": {
      "type": "array",
      "items": { "type": "string" }
    },
    "study_plan": { "type": "string", "minLength": 1 }
  }
}`

// ValidateExamAnalysis validates a model response against the exam analysis
// schema.
func ValidateExamAnalysis(jsonContent string) error {
	return ValidateJSONString(ExamAnalysisSchema, jsonContent)
}
