//go:build integration
// +build integration

package integration

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/formlight/formlight/internal/config/db"
	"github.com/formlight/formlight/internal/domain/form"
	"github.com/formlight/formlight/internal/domain/submission"
)

func TestFormLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext()
	owner := NewHTTPClient(ctx.Router, ctx.OwnerToken)
	editor := NewHTTPClient(ctx.Router, ctx.EditorToken)
	public := NewHTTPClient(ctx.Router, "")

	var created form.ListItem

	t.Run("owner creates a form", func(t *testing.T) {
		resp, err := owner.POST("/forms", form.CreateFormRequestDTO{
			Title: "Event Feedback",
			Questions: []form.QuestionDTO{
				{ID: "tmp-1", Title: "Your name", Type: form.QuestionShortText},
				{Title: "Rating", Type: form.QuestionRadio, Options: []form.QuestionOptionDTO{
					{Value: "Good"},
					{Value: "Bad"},
					{Value: ""},
				}},
				{Title: "Snacks", Type: form.QuestionCheckbox, Options: []form.QuestionOptionDTO{
					{Value: "Chips"},
					{Value: "Fruit"},
				}},
			},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&created))

		assert.True(t, created.Form.IsPublished)
		assert.NotEmpty(t, created.Form.Slug)
		assert.Equal(t, ctx.TestOwner.ID, created.Form.AuthorID)
		// The empty-value option was dropped during normalization.
		assert.Len(t, created.Form.Questions[1].Options, 2)
		// Client-supplied question id was replaced.
		assert.NotEqual(t, "tmp-1", created.Form.Questions[0].ID)
	})

	formID := func() string { return created.Form.ID }

	t.Run("editor does not see the form before a grant", func(t *testing.T) {
		resp, err := editor.GET("/forms")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var items []form.ListItem
		require.NoError(t, resp.DecodeJSON(&items))
		for _, item := range items {
			assert.NotEqual(t, formID(), item.Form.ID)
		}
	})

	t.Run("owner grants editor role by email", func(t *testing.T) {
		resp, err := owner.POST("/forms/"+formID()+"/permissions/add", form.AddPermissionDTO{
			Email: "editor@test.com",
			Role:  form.RoleEditor,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
	})

	t.Run("re-granting replaces the role instead of duplicating", func(t *testing.T) {
		resp, err := owner.POST("/forms/"+formID()+"/permissions/add", form.AddPermissionDTO{
			Email: "editor@test.com",
			Role:  form.RoleEditor,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		list, err := editor.GET("/forms")
		require.NoError(t, err)
		var items []form.ListItem
		require.NoError(t, list.DecodeJSON(&items))
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].RoleCount)
	})

	t.Run("published form is publicly readable by slug", func(t *testing.T) {
		resp, err := public.GET("/forms/find-by-slug/" + created.Form.Slug)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var info form.BasicInfo
		require.NoError(t, resp.DecodeJSON(&info))
		assert.Equal(t, formID(), info.ID)
		assert.Len(t, info.Questions, 3)
	})

	t.Run("anonymous submission is accepted and normalized", func(t *testing.T) {
		resp, err := public.POST("/submissions", submission.CreateSubmissionDTO{
			FormID: formID(),
			Answers: []submission.AnswerDTO{
				{QuestionID: created.Form.Questions[0].ID, Type: form.QuestionShortText, Title: "Your name", Value: strPtr("Alice")},
				{QuestionID: created.Form.Questions[1].ID, Type: form.QuestionRadio, Title: "Rating", Values: &[]submission.AnswerOption{
					{Key: created.Form.Questions[1].Options[0].Key, Value: "Good"},
				}},
				{QuestionID: created.Form.Questions[2].ID, Type: form.QuestionCheckbox, Title: "Snacks"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

		var sub submission.FormSubmission
		require.NoError(t, resp.DecodeJSON(&sub))
		assert.Equal(t, "Alice", sub.Answers[0].Value)
		// Absent fields come back as empty, never null.
		assert.NotNil(t, sub.Answers[2].Values)
		assert.Equal(t, "", sub.Answers[2].Value)
	})

	t.Run("editor exports submissions as xlsx", func(t *testing.T) {
		resp, err := editor.GET("/forms/" + formID() + "/submissions/export/excel")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		assert.Contains(t, resp.Headers.Get("Content-Disposition"), ".xlsx")

		wb, err := excelize.OpenReader(bytes.NewReader(resp.Body))
		require.NoError(t, err)
		defer wb.Close()

		rows, err := wb.GetRows("Submissions")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"Your name", "Rating", "Snacks"}, rows[0])
		assert.Equal(t, "Alice", rows[1][0])
		assert.Equal(t, "Good", rows[1][1])
	})

	t.Run("export requires a role on the form", func(t *testing.T) {
		admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := admin.GET("/forms/" + formID() + "/submissions/export/excel")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("editor cannot delete the form", func(t *testing.T) {
		resp, err := editor.DELETE("/forms/" + formID())
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner grant cannot be revoked", func(t *testing.T) {
		resp, err := editor.POST("/forms/"+formID()+"/permissions/remove", form.RemovePermissionDTO{
			Email: "owner@test.com",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner soft-deletes the form", func(t *testing.T) {
		resp, err := owner.DELETE("/forms/" + formID())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
	})

	t.Run("deleted row survives in storage with a deletion mark", func(t *testing.T) {
		var stored form.Form
		err := db.DB.Unscoped().First(&stored, "id = ?", formID()).Error
		require.NoError(t, err)
		assert.True(t, stored.DeletedAt.Valid)
		assert.Equal(t, created.Form.Slug, stored.Slug)
	})

	t.Run("deleted form is gone from every read path", func(t *testing.T) {
		resp, err := owner.GET("/forms/" + formID())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = public.GET("/forms/find-by-slug/" + created.Form.Slug)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = public.POST("/submissions", submission.CreateSubmissionDTO{
			FormID:  formID(),
			Answers: []submission.AnswerDTO{},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = owner.POST("/forms/"+formID()+"/permissions/add", form.AddPermissionDTO{
			Email: "editor@test.com",
			Role:  form.RoleEditor,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func strPtr(s string) *string { return &s }
