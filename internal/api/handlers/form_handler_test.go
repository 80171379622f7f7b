package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/domain/submission"
	"github.com/formlight/formlight/internal/domain/user"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/internal/repository/mock_repository"
	"github.com/formlight/formlight/pkg/excel"
	"github.com/formlight/formlight/pkg/types"
	"github.com/formlight/formlight/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
const (
	handlerTestUserID = "64b1f0b2c3d4e5f601020311"
	handlerTestFormID = "64b1f0b2c3d4e5f601020312"
)

type formHandlerMocks struct {
	user       *mock_repository.MockUserRepo
	form       *mock_repository.MockFormRepo
	formRole   *mock_repository.MockFormRoleRepo
	submission *mock_repository.MockSubmissionRepo
	audit      *mock_repository.MockAuditRepo
}

func setupFormHandler(t *testing.T) (*FormHandler, formHandlerMocks) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := formHandlerMocks{
		user:       mock_repository.NewMockUserRepo(ctrl),
		form:       mock_repository.NewMockFormRepo(ctrl),
		formRole:   mock_repository.NewMockFormRoleRepo(ctrl),
		submission: mock_repository.NewMockSubmissionRepo(ctrl),
		audit:      mock_repository.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		User:       m.user,
		Form:       m.form,
		FormRole:   m.formRole,
		Submission: m.submission,
		Audit:      m.audit,
	}
	h := NewFormHandler(
		application.NewFormService(repos),
		application.NewExportService(repos),
		repos,
	)
	return h, m
}

type auditEntry struct {
	action       audit.Action
	resourceType string
	resourceID   string
	before       any
	after        any
	description  string
}

// captureAudit swallows the audit side channel and records every entry
// the handler emits, so assertions see the payload before marshaling.
func captureAudit(t *testing.T) *[]auditEntry {
	var entries []auditEntry
	restore := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action audit.Action, resourceType, resourceID string, before, after any, description string, repos repository.AuditRepo) {
		entries = append(entries, auditEntry{
			action:       action,
			resourceType: resourceType,
			resourceID:   resourceID,
			before:       before,
			after:        after,
			description:  description,
		})
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = restore })
	return &entries
}

func newAuthedContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Params = gin.Params{{Key: "id", Value: handlerTestFormID}}
	c.Set("claims", &types.Claims{UserID: handlerTestUserID, Email: "owner@example.com"})
	return c, w
}

func exportFixture() form.Form {
	return form.Form{
		ID:          handlerTestFormID,
		Title:       "Feedback",
		Slug:        "feedback-0a1b2c3d",
		IsPublished: true,
		Questions: datatypes.JSONSlice[form.Question]{
			{ID: "q1", Title: "Name", Type: form.QuestionShortText},
		},
	}
}

// --------------------- ExportSubmissionsExcel ---------------------
func TestExportSubmissionsExcel_AuditsExportedTable(t *testing.T) {
	h, m := setupFormHandler(t)
	entries := captureAudit(t)

	m.form.EXPECT().GetFormByID(handlerTestFormID).Return(exportFixture(), nil)
	m.formRole.EXPECT().GetFormRole(handlerTestFormID, handlerTestUserID).
		Return(form.FormRole{FormID: handlerTestFormID, UserID: handlerTestUserID, Role: form.RoleOwner}, nil)
	m.submission.EXPECT().GetSubmissionsByFormID(handlerTestFormID).Return([]submission.FormSubmission{
		{ID: "64b1f0b2c3d4e5f601020313", FormID: handlerTestFormID, Answers: datatypes.JSONSlice[submission.Answer]{
			{QuestionID: "q1", Type: form.QuestionShortText, Value: "Alice"},
		}},
	}, nil)

	c, w := newAuthedContext(t, http.MethodGet, "/forms/"+handlerTestFormID+"/submissions/export/excel", nil)
	h.ExportSubmissionsExcel(c)

	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, *entries, 1)
	entry := (*entries)[0]
	assert.Equal(t, audit.ActionExport, entry.action)
	assert.Equal(t, "form", entry.resourceType)
	assert.Equal(t, handlerTestFormID, entry.resourceID)

	// The entry carries the exported data itself, not a summary of it.
	table, ok := entry.after.(excel.Table)
	require.True(t, ok, "export audit payload must be the exported table")
	assert.Equal(t, []string{"Name"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Alice"}, table.Rows[0])
}

// --------------------- AddPermission ---------------------
func TestAddPermission_AuditsCreateOnFirstGrant(t *testing.T) {
	h, m := setupFormHandler(t)
	entries := captureAudit(t)

	granteeID := "64b1f0b2c3d4e5f601020314"
	m.form.EXPECT().GetFormByID(handlerTestFormID).Return(exportFixture(), nil)
	m.user.EXPECT().GetUserByEmail("editor@example.com").Return(user.User{ID: granteeID}, nil)
	m.formRole.EXPECT().GetFormRole(handlerTestFormID, granteeID).Return(form.FormRole{}, gorm.ErrRecordNotFound)
	m.formRole.EXPECT().UpsertFormRole(gomock.Any()).Return(nil)

	body := []byte(`{"email":"editor@example.com","role":"editor"}`)
	c, w := newAuthedContext(t, http.MethodPost, "/forms/"+handlerTestFormID+"/permissions/add", body)
	h.AddPermission(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *entries, 1)
	assert.Equal(t, audit.ActionCreate, (*entries)[0].action)
	assert.Equal(t, "permission granted", (*entries)[0].description)
}

func TestAddPermission_AuditsUpdateOnRegrant(t *testing.T) {
	h, m := setupFormHandler(t)
	entries := captureAudit(t)

	granteeID := "64b1f0b2c3d4e5f601020314"
	m.form.EXPECT().GetFormByID(handlerTestFormID).Return(exportFixture(), nil)
	m.user.EXPECT().GetUserByEmail("editor@example.com").Return(user.User{ID: granteeID}, nil)
	m.formRole.EXPECT().GetFormRole(handlerTestFormID, granteeID).
		Return(form.FormRole{FormID: handlerTestFormID, UserID: granteeID, Role: form.RoleEditor}, nil)
	m.formRole.EXPECT().UpsertFormRole(gomock.Any()).Return(nil)

	body := []byte(`{"email":"editor@example.com","role":"owner"}`)
	c, w := newAuthedContext(t, http.MethodPost, "/forms/"+handlerTestFormID+"/permissions/add", body)
	h.AddPermission(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, *entries, 1)
	assert.Equal(t, audit.ActionUpdate, (*entries)[0].action)
	assert.Equal(t, "permission updated", (*entries)[0].description)
}
