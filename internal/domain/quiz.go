package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Question types produced by the generator.
const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeShortAnswer    = "short-answer"
	QuestionTypeMixed          = "mixed" // request-only: a mix of both
)

// Difficulty levels accepted by the generator.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const MultipleChoiceOptionCount = 4

// Question is a single generated quiz question. Options is populated only
// for multiple-choice questions and then holds exactly four entries.
type Question struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Grade awards credit iff the user's trimmed, case-folded answer equals the
// trimmed, case-folded correct answer.
func (q *Question) Grade(userAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(q.CorrectAnswer))
}

// Validate checks the structural invariants of a single question.
func (q *Question) Validate() error {
	switch q.Type {
	case QuestionTypeMultipleChoice, QuestionTypeShortAnswer:
	default:
		return NewSchemaViolationError(fmt.Sprintf("question has unknown type %q", q.Type))
	}
	if strings.TrimSpace(q.Question) == "" {
		return NewSchemaViolationError("question text is empty")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return NewSchemaViolationError("question has no correct answer")
	}
	if q.Type == QuestionTypeMultipleChoice {
		if len(q.Options) != MultipleChoiceOptionCount {
			return NewSchemaViolationError(fmt.Sprintf(
				"multiple-choice question has %d options, want %d", len(q.Options), MultipleChoiceOptionCount))
		}
		if !q.correctAnswerInOptions() {
			return NewSchemaViolationError("correct answer is not among the options")
		}
	}
	return nil
}

func (q *Question) correctAnswerInOptions() bool {
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
			return true
		}
	}
	return false
}

// Quiz is the structured result of normalizing the model's raw output.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Validate checks that the parsed object actually is a quiz: a non-empty
// question list whose entries each satisfy their own invariants.
func (z *Quiz) Validate() error {
	if len(z.Questions) == 0 {
		return NewSchemaViolationError("quiz has no questions")
	}
	for i := range z.Questions {
		if err := z.Questions[i].Validate(); err != nil {
			if derr, ok := err.(*DomainError); ok {
				return derr.WithContext("question_index", i)
			}
			return err
		}
	}
	return nil
}

// ParseQuiz extracts and validates a Quiz from raw model output. The model
// is instructed to return pure JSON but may wrap it in prose or code fences,
// so the text between the first '{' and the last '}' is tried first, then
// the whole text. Parse failures yield MALFORMED_QUIZ; a syntactically valid
// object that is not a quiz yields SCHEMA_VIOLATION.
func ParseQuiz(raw string) (*Quiz, error) {
	cleaned := strings.TrimSpace(raw)

	candidate := cleaned
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		candidate = cleaned[start : end+1]
	}

	var quiz Quiz
	if err := json.Unmarshal([]byte(candidate), &quiz); err != nil {
		if candidate == cleaned {
			return nil, NewMalformedQuizError(err)
		}
		// The extracted substring failed; the model may have returned bare
		// JSON whose delimiters the scan misjudged.
		if err2 := json.Unmarshal([]byte(cleaned), &quiz); err2 != nil {
			return nil, NewMalformedQuizError(err)
		}
	}

	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return &quiz, nil
}
