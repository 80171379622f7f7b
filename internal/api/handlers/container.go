package handlers

import (
	"net/http"

	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/apperr"
	"github.com/formlight/formlight/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Audit      *AuditHandler
	User       *UserHandler
	Form       *FormHandler
	Submission *SubmissionHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	return &Handlers{
		Audit:      NewAuditHandler(svc.Audit),
		User:       NewUserHandler(svc.User, repos),
		Form:       NewFormHandler(svc.Form, svc.Export, repos),
		Submission: NewSubmissionHandler(svc.Submission, repos),
		Router:     router,
	}
}

// abortWithError translates a service error into its HTTP shape. Every
// error body carries a stable machine-readable code.
func abortWithError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Status(), response.ErrorResponse{
		Error: appErr.Error(),
		Code:  string(appErr.Code),
	})
}

func abortBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, response.ErrorResponse{
		Error: msg,
		Code:  string(apperr.CodeInvalidInput),
	})
}
