package submission

import (
	"time"

	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnswerOption is one selected option of a choice-based answer.
type AnswerOption struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

// Answer references a question of the target form's schema. Both Value
// and Values are always present after ingestion; which one is meaningful
// depends on the question type, but downstream consumers never have to
// null-check either.
type Answer struct {
	ID         string         `json:"id"`
	QuestionID string         `json:"questionId"`
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Value      string         `json:"value"`
	Values     []AnswerOption `json:"values"`
}

// FormSubmission owns its answers as a single JSON document, so the
// submission and all its answers are written in one atomic insert.
// Submissions are immutable once created.
type FormSubmission struct {
	ID        string                      `gorm:"primaryKey;size:24" json:"id"`
	FormID    string                      `gorm:"size:24;not null;index" json:"formId"`
	Answers   datatypes.JSONSlice[Answer] `json:"answers"`
	CreatedAt time.Time                   `json:"createdAt"`
}

func (s *FormSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = oid.New()
	}
	return nil
}
