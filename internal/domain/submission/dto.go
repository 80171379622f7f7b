package submission

// AnswerDTO is a raw incoming answer. Value and Values are pointers so
// ingestion can tell "absent" apart from "explicitly empty" and
// normalize both to non-null storage shapes.
type AnswerDTO struct {
	ID         string          `json:"id"`
	QuestionID string          `json:"questionId" binding:"required"`
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	Value      *string         `json:"value"`
	Values     *[]AnswerOption `json:"values"`
}

type CreateSubmissionDTO struct {
	FormID  string      `json:"formId" binding:"required"`
	Answers []AnswerDTO `json:"answers" binding:"required"`
}
