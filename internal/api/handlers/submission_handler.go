package handlers

import (
	"net/http"

	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/utils"
	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	svc   *application.SubmissionService
	repos *repository.Repos
}

func NewSubmissionHandler(svc *application.SubmissionService, repos *repository.Repos) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, repos: repos}
}

// Submit godoc
// @Summary Submit answers to a published form
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body submission.CreateSubmissionDTO true "Form id and answers"
// @Success 201 {object} submission.FormSubmission
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var input submission.CreateSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	sub, err := h.svc.Submit(input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, "form_submission", sub.ID, nil, sub, "submission received", h.repos.Audit)
	c.JSON(http.StatusCreated, sub)
}
