package repository

import (
	"github.com/formlight/formlight/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(s *submission.FormSubmission) error
	GetSubmissionsByFormID(formID string) ([]submission.FormSubmission, error)
	CountGroupedByForm(formIDs []string) (map[string]int64, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) CreateSubmission(s *submission.FormSubmission) error {
	return r.db.Create(s).Error
}

func (r *DBSubmissionRepo) GetSubmissionsByFormID(formID string) ([]submission.FormSubmission, error) {
	var subs []submission.FormSubmission
	err := r.db.
		Where("form_id = ?", formID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) CountGroupedByForm(formIDs []string) (map[string]int64, error) {
	if len(formIDs) == 0 {
		return map[string]int64{}, nil
	}

	type row struct {
		FormID string
		Total  int64
	}
	var rows []row
	err := r.db.Model(&submission.FormSubmission{}).
		Select("form_id, COUNT(*) AS total").
		Where("form_id IN ?", formIDs).
		Group("form_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.FormID] = r.Total
	}
	return counts, nil
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}
