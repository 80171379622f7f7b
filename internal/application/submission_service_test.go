package application

import (
	"testing"

	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/internal/repository/mock_repository"
	"github.com/formlight/formlight/pkg/oid"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupSubmissionServiceMocks(t *testing.T) (*SubmissionService, *mock_repository.MockFormRepo, *mock_repository.MockSubmissionRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repository.NewMockFormRepo(ctrl)
	mockSubmission := mock_repository.NewMockSubmissionRepo(ctrl)
	repos := &repository.Repos{
		Form:       mockForm,
		Submission: mockSubmission,
	}
	svc := NewSubmissionService(repos)
	return svc, mockForm, mockSubmission
}

func ptrString(s string) *string { return &s }

// --------------------- Submit ---------------------
func TestSubmit_NormalizesAnswers(t *testing.T) {
	svc, mockForm, mockSubmission := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().GetFormByID(testFormID).Return(form.Form{ID: testFormID, IsPublished: true}, nil)

	var stored submission.FormSubmission
	mockSubmission.EXPECT().CreateSubmission(gomock.Any()).DoAndReturn(func(s *submission.FormSubmission) error {
		stored = *s
		return nil
	})

	input := submission.CreateSubmissionDTO{
		FormID: testFormID,
		Answers: []submission.AnswerDTO{
			{ID: "client-id", QuestionID: "q1", Type: form.QuestionShortText, Value: ptrString("hello")},
			{QuestionID: "q2", Type: form.QuestionCheckbox, Values: &[]submission.AnswerOption{{Key: "k1", Value: "A"}}},
			{QuestionID: "q3", Type: form.QuestionShortText},
		},
	}

	sub, err := svc.Submit(input)
	assert.NoError(t, err)
	assert.Equal(t, testFormID, sub.FormID)
	assert.Len(t, stored.Answers, 3)

	// Fresh server-side identifiers.
	for _, a := range stored.Answers {
		assert.True(t, oid.IsValid(a.ID))
	}
	assert.NotEqual(t, "client-id", stored.Answers[0].ID)

	assert.Equal(t, "hello", stored.Answers[0].Value)
	assert.Equal(t, []submission.AnswerOption{}, stored.Answers[0].Values)

	assert.Equal(t, "", stored.Answers[1].Value)
	assert.Equal(t, []submission.AnswerOption{{Key: "k1", Value: "A"}}, stored.Answers[1].Values)

	// Absent value and values both land as non-null empties.
	assert.Equal(t, "", stored.Answers[2].Value)
	assert.NotNil(t, stored.Answers[2].Values)
	assert.Empty(t, stored.Answers[2].Values)
}

func TestSubmit_InvalidFormID(t *testing.T) {
	svc, _, _ := setupSubmissionServiceMocks(t)

	input := submission.CreateSubmissionDTO{FormID: "bogus", Answers: []submission.AnswerDTO{}}
	_, err := svc.Submit(input)
	assert.Equal(t, ErrInvalidFormID, err)
}

func TestSubmit_FormNotFound(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().GetFormByID(testFormID).Return(form.Form{}, gorm.ErrRecordNotFound)

	input := submission.CreateSubmissionDTO{FormID: testFormID, Answers: []submission.AnswerDTO{}}
	_, err := svc.Submit(input)
	assert.Equal(t, ErrFormNotFound, err)
}

func TestSubmit_UnpublishedFormLooksAbsent(t *testing.T) {
	svc, mockForm, _ := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().GetFormByID(testFormID).Return(form.Form{ID: testFormID, IsPublished: false}, nil)

	input := submission.CreateSubmissionDTO{FormID: testFormID, Answers: []submission.AnswerDTO{}}
	_, err := svc.Submit(input)
	assert.Equal(t, ErrFormNotFound, err)
}

func TestSubmit_EmptyAnswerListAccepted(t *testing.T) {
	svc, mockForm, mockSubmission := setupSubmissionServiceMocks(t)

	mockForm.EXPECT().GetFormByID(testFormID).Return(form.Form{ID: testFormID, IsPublished: true}, nil)
	mockSubmission.EXPECT().CreateSubmission(gomock.Any()).Return(nil)

	input := submission.CreateSubmissionDTO{FormID: testFormID, Answers: []submission.AnswerDTO{}}
	sub, err := svc.Submit(input)
	assert.NoError(t, err)
	assert.Empty(t, sub.Answers)
}
