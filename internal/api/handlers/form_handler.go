package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/excel"
	"github.com/formlight/formlight/pkg/utils"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	svc    *application.FormService
	export *application.ExportService
	repos  *repository.Repos
}

func NewFormHandler(svc *application.FormService, export *application.ExportService, repos *repository.Repos) *FormHandler {
	return &FormHandler{svc: svc, export: export, repos: repos}
}

// CreateForm godoc
// @Summary Create a form
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.CreateFormRequestDTO true "Form definition"
// @Success 201 {object} form.ListItem
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Slug already in use"
// @Router /forms [post]
func (h *FormHandler) CreateForm(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input form.CreateFormRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	f, roles, err := h.svc.Create(input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, "form", f.ID, nil, f, "form created", h.repos.Audit)
	c.JSON(http.StatusCreated, form.ListItem{Form: f, Roles: roles, RoleCount: int64(len(roles))})
}

// ListForms godoc
// @Summary List forms visible to the caller
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.ListItem
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /forms [get]
func (h *FormHandler) ListForms(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.svc.ListForUser(claims.UserID, claims.IsAdmin)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetFormByID godoc
// @Summary Get form by ID
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid form id"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [get]
func (h *FormHandler) GetFormByID(c *gin.Context) {
	f, err := h.svc.FindByID(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// FindBySlug godoc
// @Summary Get a published form by slug
// @Tags forms
// @Produce json
// @Param slug path string true "Form slug"
// @Success 200 {object} form.BasicInfo
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/find-by-slug/{slug} [get]
func (h *FormHandler) FindBySlug(c *gin.Context) {
	info, err := h.svc.FindBySlug(c.Param("slug"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// DeleteForm godoc
// @Summary Soft-delete a form
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} form.Form "The deleted form"
// @Failure 403 {object} response.ErrorResponse "Owner role required"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id} [delete]
func (h *FormHandler) DeleteForm(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	f, err := h.svc.SoftDelete(c.Param("id"), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionDelete, "form", f.ID, f, nil, "form deleted", h.repos.Audit)
	c.JSON(http.StatusOK, f)
}

// AddPermission godoc
// @Summary Grant a role on a form
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.AddPermissionDTO true "Grantee email and role"
// @Success 200 {object} gin.H "Outcome and grant"
// @Failure 404 {object} response.ErrorResponse "Form or user not found"
// @Router /forms/{id}/permissions/add [post]
func (h *FormHandler) AddPermission(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input form.AddPermissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	formID := c.Param("id")
	outcome, grant, err := h.svc.PermissionsAdd(formID, input.Email, input.Role, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	action := audit.ActionUpdate
	description := "permission updated"
	if outcome == application.GrantCreated {
		action = audit.ActionCreate
		description = "permission granted"
	}
	utils.LogAuditWithConsole(c, action, "form", formID, nil, grant, description, h.repos.Audit)
	c.JSON(http.StatusOK, gin.H{"outcome": outcome, "grant": grant})
}

// RemovePermission godoc
// @Summary Revoke a role on a form
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param input body form.RemovePermissionDTO true "Grantee email"
// @Success 200 {object} form.FormRole "The revoked grant"
// @Failure 403 {object} response.ErrorResponse "No grant or owner grant"
// @Failure 404 {object} response.ErrorResponse "Form or user not found"
// @Router /forms/{id}/permissions/remove [post]
func (h *FormHandler) RemovePermission(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input form.RemovePermissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	formID := c.Param("id")
	grant, err := h.svc.PermissionsRemove(formID, input.Email, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "form", formID, grant, nil, "permission revoked", h.repos.Audit)
	c.JSON(http.StatusOK, grant)
}

// ExportSubmissionsExcel godoc
// @Summary Export all submissions of a form as xlsx
// @Tags forms
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Form ID"
// @Success 200 {file} file "xlsx workbook"
// @Failure 403 {object} response.ErrorResponse "No role on this form"
// @Failure 404 {object} response.ErrorResponse "Form not found"
// @Router /forms/{id}/submissions/export/excel [get]
func (h *FormHandler) ExportSubmissionsExcel(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	table, f, err := h.export.ExportTable(c.Param("id"), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteXLSX(&buf, "Submissions", table); err != nil {
		abortWithError(c, err)
		return
	}

	// An export is a sensitive read; the entry carries the full table
	// that left the system, not just its size.
	utils.LogAuditWithConsole(c, audit.ActionExport, "form", f.ID, nil,
		table, "submissions exported", h.repos.Audit)

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, f.Slug))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
