//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/user"
	"github.com/formlight/formlight/pkg/response"
)

func TestUserAuthFlow_Integration(t *testing.T) {
	ctx := GetTestContext()
	public := NewHTTPClient(ctx.Router, "")

	var registered user.User

	t.Run("register a new account", func(t *testing.T) {
		resp, err := public.POST("/register", user.CreateUserDTO{
			Email:    "newcomer@test.com",
			Name:     "Nina",
			Password: "password123",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		require.NoError(t, resp.DecodeJSON(&registered))

		assert.Equal(t, "newcomer@test.com", registered.Email)
		assert.NotEmpty(t, registered.ID)
		assert.Empty(t, registered.Password)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		resp, err := public.POST("/register", user.CreateUserDTO{
			Email:    "newcomer@test.com",
			Name:     "Nina",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("login returns a usable token", func(t *testing.T) {
		resp, err := public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "password123",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var token response.TokenResponse
		require.NoError(t, resp.DecodeJSON(&token))
		require.NotEmpty(t, token.Token)
		assert.Equal(t, registered.ID, token.UserID)
		assert.False(t, token.IsAdmin)

		authed := NewHTTPClient(ctx.Router, token.Token)
		me, err := authed.GET("/users/" + registered.ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, me.StatusCode)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		resp, err := public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "wrong-password",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user listing is admin only", func(t *testing.T) {
		owner := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := owner.GET("/users")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err = admin.GET("/users")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var users []user.User
		require.NoError(t, resp.DecodeJSON(&users))
		assert.GreaterOrEqual(t, len(users), 4)
	})

	t.Run("password change invalidates the old credential", func(t *testing.T) {
		login, err := public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "password123",
		})
		require.NoError(t, err)
		var token response.TokenResponse
		require.NoError(t, login.DecodeJSON(&token))

		authed := NewHTTPClient(ctx.Router, token.Token)
		resp, err := authed.PUT("/users/"+registered.ID+"/password", user.UpdatePasswordDTO{
			OldPassword: "password123",
			NewPassword: "password456",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		resp, err = public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "password456",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("users cannot change each other's passwords", func(t *testing.T) {
		owner := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := owner.PUT("/users/"+registered.ID+"/password", user.UpdatePasswordDTO{
			OldPassword: "password456",
			NewPassword: "hijacked-pass",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin deletes the account", func(t *testing.T) {
		admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err := admin.DELETE("/users/" + registered.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		login, err := public.POST("/login", user.LoginUserDTO{
			Email:    "newcomer@test.com",
			Password: "password456",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, login.StatusCode)
	})
}

func TestAuditLogQuery_Integration(t *testing.T) {
	ctx := GetTestContext()
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)

	t.Run("admin reads recorded activity", func(t *testing.T) {
		resp, err := admin.GET("/audit/logs?limit=50")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var logs []audit.AuditLog
		require.NoError(t, resp.DecodeJSON(&logs))
		// Earlier flows in the suite write entries asynchronously, so the
		// log may still be empty when this runs in isolation.
		for _, entry := range logs {
			assert.NotEmpty(t, entry.Action)
			assert.NotEmpty(t, entry.ResourceType)
		}
	})

	t.Run("audit access is admin only", func(t *testing.T) {
		owner := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := owner.GET("/audit/logs")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
