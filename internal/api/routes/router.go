package routes

import (
	"github.com/formlight/formlight/internal/api/handlers"
	"github.com/formlight/formlight/internal/api/middleware"
	"github.com/formlight/formlight/internal/application"
	"github.com/formlight/formlight/internal/cron"
	"github.com/formlight/formlight/internal/repository"
	"github.com/formlight/formlight/pkg/mailer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, gormDB *gorm.DB) {
	// init
	reposInstance := repository.NewRepositories(gormDB)
	servicesInstance := application.New(reposInstance, mailer.NewSMTPMailer())
	handlersInstance := handlers.New(servicesInstance, reposInstance, r)

	// Start background tasks
	cron.StartCleanupTask(servicesInstance.Audit)

	// public surface
	r.POST("/register", handlersInstance.User.Register)
	r.POST("/login", handlersInstance.User.Login)
	r.POST("/users/send-new-password", handlersInstance.User.SendNewPassword)
	r.GET("/forms/find-by-slug/:slug", handlersInstance.Form.FindBySlug)
	r.POST("/submissions", handlersInstance.Submission.Submit)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", middleware.Admin(), handlersInstance.User.GetUsers)
			users.GET("/:id", handlersInstance.User.GetUserByID)
			users.PUT("/:id/password", middleware.SelfOrAdmin(), handlersInstance.User.UpdatePassword)
			users.DELETE("/:id", middleware.Admin(), handlersInstance.User.DeleteUser)
		}

		forms := auth.Group("/forms")
		{
			forms.POST("", handlersInstance.Form.CreateForm)
			forms.GET("", handlersInstance.Form.ListForms)
			forms.GET("/:id", handlersInstance.Form.GetFormByID)
			forms.DELETE("/:id", handlersInstance.Form.DeleteForm)
			forms.POST("/:id/permissions/add", handlersInstance.Form.AddPermission)
			forms.POST("/:id/permissions/remove", handlersInstance.Form.RemovePermission)
			forms.GET("/:id/submissions/export/excel", handlersInstance.Form.ExportSubmissionsExcel)
		}

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.Admin(), handlersInstance.Audit.GetAuditLogs)
		}
	}
}
