package application

import (
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/apperr"
	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/gorm"
)

type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{
		Repos: repos,
	}
}

// Submit accepts answers for a live published form and stores them as
// one immutable row. Answers are normalized so Value and Values are
// always present; answers are not cross-checked against the form's
// question schema.
func (s *SubmissionService) Submit(input submission.CreateSubmissionDTO) (submission.FormSubmission, error) {
	if !oid.IsValid(input.FormID) {
		return submission.FormSubmission{}, ErrInvalidFormID
	}

	f, err := s.Repos.Form.GetFormByID(input.FormID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return submission.FormSubmission{}, ErrFormNotFound
		}
		return submission.FormSubmission{}, apperr.Internal(err)
	}
	if !f.IsPublished {
		return submission.FormSubmission{}, ErrFormNotFound
	}

	answers := make([]submission.Answer, 0, len(input.Answers))
	for _, a := range input.Answers {
		answer := submission.Answer{
			ID:         oid.New(),
			QuestionID: a.QuestionID,
			Type:       a.Type,
			Title:      a.Title,
			Value:      "",
			Values:     []submission.AnswerOption{},
		}
		if a.Value != nil {
			answer.Value = *a.Value
		}
		if a.Values != nil {
			answer.Values = *a.Values
		}
		answers = append(answers, answer)
	}

	sub := submission.FormSubmission{
		FormID:  f.ID,
		Answers: answers,
	}
	if err := s.Repos.Submission.CreateSubmission(&sub); err != nil {
		return submission.FormSubmission{}, apperr.Internal(err)
	}
	return sub, nil
}
