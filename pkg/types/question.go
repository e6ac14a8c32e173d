package types

import (
	"encoding/json"
	"time"
)

// Question statuses. A question is authored as a draft and published to
// live when its solution is ready.
const (
	QuestionStatusDraft = "DRAFT"
	QuestionStatusLive  = "LIVE"
)

// Question types discriminate the answer format of the opaque payload.
const (
	QuestionTypeMCQ        = "MCQ"
	QuestionTypeStructured = "STRUCTURED"
	QuestionTypeTrueFalse  = "TRUE_FALSE"
)

// validQuestionStatuses is the set of recognized question status values.
var validQuestionStatuses = map[string]bool{
	QuestionStatusDraft: true,
	QuestionStatusLive:  true,
}

// validQuestionTypes is the set of recognized question type values.
var validQuestionTypes = map[string]bool{
	QuestionTypeMCQ:        true,
	QuestionTypeStructured: true,
	QuestionTypeTrueFalse:  true,
}

// Question represents one numbered question attached to a content node,
// typically a PAGE or EXERCISE leaf. ExerciseNumber is set when the owning
// node groups several numbered exercises. Order defines the sibling
// sequence among questions under the same content node. Content is an
// opaque payload whose shape is discriminated by Type; the catalog never
// inspects it.
type Question struct {
	QuestionID     string          `json:"question_id"`
	ResourceID     string          `json:"resource_id"`
	ContentID      string          `json:"content_id"`
	QuestionNumber string          `json:"question_number"`
	ExerciseNumber string          `json:"exercise_number,omitempty"`
	Order          int             `json:"order"`
	Status         string          `json:"status"`
	Type           string          `json:"type"`
	Content        json.RawMessage `json:"content"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ValidQuestionType reports whether t is a recognized question type.
func ValidQuestionType(t string) bool {
	return validQuestionTypes[t]
}

// SetStatus sets the question status to the given value.
// Returns ErrInvalidStatus if the status is not recognized.
func (q *Question) SetStatus(status string) error {
	if !validQuestionStatuses[status] {
		return ErrInvalidStatus
	}
	q.Status = status
	q.UpdatedAt = time.Now()
	return nil
}

// Publish moves the question from draft to live.
// Returns ErrInvalidTransition if the question is not a draft.
func (q *Question) Publish() error {
	if q.Status != QuestionStatusDraft {
		return ErrInvalidTransition
	}
	q.Status = QuestionStatusLive
	q.UpdatedAt = time.Now()
	return nil
}

// Unpublish moves a live question back to draft. Idempotent on drafts.
func (q *Question) Unpublish() error {
	q.Status = QuestionStatusDraft
	q.UpdatedAt = time.Now()
	return nil
}
