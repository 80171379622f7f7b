package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Form       FormRepo
	FormRole   FormRoleRepo
	Submission SubmissionRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Form:       NewFormRepo(db),
		FormRole:   NewFormRoleRepo(db),
		Submission: NewSubmissionRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Form:       r.Form.WithTx(tx),
		FormRole:   r.FormRole.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// No connection means the container was assembled from fakes;
		// run the unit of work without a transaction.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
