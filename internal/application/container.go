package application

import (
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/mailer"
)

type Services struct {
	Audit      *AuditService
	User       *UserService
	Form       *FormService
	Submission *SubmissionService
	Export     *ExportService
}

func New(repos *repository.Repos, mail mailer.Mailer) *Services {
	return &Services{
		Audit:      NewAuditService(repos),
		User:       NewUserService(repos, mail),
		Form:       NewFormService(repos),
		Submission: NewSubmissionService(repos),
		Export:     NewExportService(repos),
	}
}
