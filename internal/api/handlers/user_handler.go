package handlers

import (
	"net/http"

	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/domain/audit"
	"github.com/formlight/formlight/internal/domain/user"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/response"
	"github.com/formlight/formlight/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc   *application.UserService
	repos *repository.Repos
}

func NewUserHandler(svc *application.UserService, repos *repository.Repos) *UserHandler {
	return &UserHandler{svc: svc, repos: repos}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserDTO true "User registration info"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	usr, err := h.svc.Register(input)
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionCreate, "user", usr.ID, nil, usr, "user registered", h.repos.Audit)
	c.JSON(http.StatusCreated, usr)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginUserDTO true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Invalid password"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	usr, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, 3600, "/", "", false, true)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:   token,
		UserID:  usr.ID,
		Email:   usr.Email,
		IsAdmin: usr.IsAdmin,
	})
}

// GetUsers godoc
// @Summary List all users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} user.User
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.svc.FindAll()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID godoc
// @Summary Get user by ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	usr, err := h.svc.FindOne(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePassword godoc
// @Summary Change own password
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param input body user.UpdatePasswordDTO true "Old and new password"
// @Success 200 {object} response.MessageResponse "Password updated"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Old password is incorrect"
// @Router /users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var input user.UpdatePasswordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	id := c.Param("id")
	if err := h.svc.UpdatePassword(id, input.OldPassword, input.NewPassword); err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "user", id, nil, nil, "password updated", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}

// SendNewPassword godoc
// @Summary Mail a freshly generated password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SendNewPasswordDTO true "Account email"
// @Success 200 {object} response.MessageResponse "New password sent"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/send-new-password [post]
func (h *UserHandler) SendNewPassword(c *gin.Context) {
	var input user.SendNewPasswordDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		abortBadRequest(c, "Invalid input")
		return
	}

	if err := h.svc.SendNewPassword(input.Email); err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionUpdate, "user", input.Email, nil, nil, "new password sent", h.repos.Audit)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "New password sent"})
}

// DeleteUser godoc
// @Summary Delete user by ID
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	usr, err := h.svc.Remove(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, audit.ActionDelete, "user", usr.ID, usr, nil, "user deleted", h.repos.Audit)
	c.Status(http.StatusNoContent)
}
