package application

import (
	"strings"

	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/apperr"
	"github.com/formlight/formlight/pkg/excel"
	"github.com/formlight/formlight/pkg/oid"
	"gorm.io/gorm"
)

type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{
		Repos: repos,
	}
}

// ExportTable folds every submission of the form into one tabular view.
// Columns follow the form's question schema in order; cells are matched
// by question id, so answers to questions that no longer exist in the
// schema are ignored. Any role on the form grants export access.
func (s *ExportService) ExportTable(formID, requesterID string) (excel.Table, form.Form, error) {
	if !oid.IsValid(formID) {
		return excel.Table{}, form.Form{}, ErrInvalidFormID
	}

	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return excel.Table{}, form.Form{}, ErrFormNotFound
		}
		return excel.Table{}, form.Form{}, apperr.Internal(err)
	}

	if _, err := s.Repos.FormRole.GetFormRole(formID, requesterID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return excel.Table{}, form.Form{}, ErrNoGrant
		}
		return excel.Table{}, form.Form{}, apperr.Internal(err)
	}

	subs, err := s.Repos.Submission.GetSubmissionsByFormID(formID)
	if err != nil {
		return excel.Table{}, form.Form{}, apperr.Internal(err)
	}

	headers := make([]string, len(f.Questions))
	columns := make(map[string]int, len(f.Questions))
	for i, q := range f.Questions {
		headers[i] = q.Title
		columns[q.ID] = i
	}

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		row := make([]string, len(headers))
		for _, a := range sub.Answers {
			col, ok := columns[a.QuestionID]
			if !ok {
				continue
			}
			row[col] = cellValue(a)
		}
		rows = append(rows, row)
	}

	return excel.Table{Headers: headers, Rows: rows}, f, nil
}

func cellValue(a submission.Answer) string {
	switch a.Type {
	case form.QuestionSelect, form.QuestionRadio:
		if len(a.Values) > 0 {
			return a.Values[0].Value
		}
		return ""
	case form.QuestionCheckbox:
		values := make([]string, len(a.Values))
		for i, v := range a.Values {
			values[i] = v.Value
		}
		return strings.Join(values, ", ")
	default:
		return a.Value
	}
}
