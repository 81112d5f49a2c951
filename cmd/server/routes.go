package main

import (
	"github.com/gin-gonic/gin"

	"collabhub.backend/internal/interfaces/http/handlers"
	"collabhub.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	projectHandler      *handlers.ProjectHandler
	teamHandler         *handlers.TeamHandler
	taskHandler         *handlers.TaskHandler
	messageHandler      *handlers.MessageHandler
	notificationHandler *handlers.NotificationHandler
	skillHandler        *handlers.SkillHandler
	uploadHandler       *handlers.UploadHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/verify", d.authHandler.VerifyEmail)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/onboard", d.authMiddleware, d.authHandler.Onboard)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:id", d.authHandler.GetUser)
			users.PUT("/profile", d.authMiddleware, d.authHandler.UpdateProfile)
		}

		// Project routes (public read, protected write)
		projects := v1.Group("/projects")
		{
			projects.GET("", d.projectHandler.ListProjects)
			projects.GET("/:id", d.projectHandler.GetProject)
			projects.POST("", d.authMiddleware, d.projectHandler.CreateProject)
			projects.POST("/:id/apply", d.authMiddleware, d.projectHandler.Apply)
			projects.POST("/:id/complete", d.authMiddleware, d.projectHandler.Complete)
		}

		// Team routes, with nested board and chat
		teams := v1.Group("/teams")
		{
			teams.GET("/:id", d.teamHandler.GetTeam)
			teams.POST("", d.authMiddleware, d.teamHandler.FormTeam)
			teams.POST("/:id/members", d.authMiddleware, d.teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", d.authMiddleware, d.teamHandler.RemoveMember)

			teams.GET("/:id/tasks", d.taskHandler.ListTasks)
			teams.POST("/:id/tasks", d.authMiddleware, d.taskHandler.CreateTask)

			teams.GET("/:id/messages", d.messageHandler.ListMessages)
			teams.POST("/:id/messages", d.authMiddleware, d.messageHandler.PostMessage)
		}

		// Task routes (board items addressed directly)
		tasks := v1.Group("/tasks")
		tasks.Use(d.authMiddleware)
		{
			tasks.PUT("/:id", d.taskHandler.UpdateTask)
			tasks.DELETE("/:id", d.taskHandler.DeleteTask)
		}

		// Notification routes (protected)
		notifications := v1.Group("/notifications")
		notifications.Use(d.authMiddleware)
		{
			notifications.GET("", d.notificationHandler.ListNotifications)
			notifications.PUT("/:id/read", d.notificationHandler.MarkRead)
		}

		// Quiz and skill verification routes
		quiz := v1.Group("/quiz")
		{
			quiz.GET("/:id", d.skillHandler.GetQuiz)
			quiz.POST("/submit", d.authMiddleware, d.skillHandler.SubmitQuiz)
		}
		skills := v1.Group("/skills")
		skills.Use(d.authMiddleware)
		{
			skills.POST("/external-sync", d.skillHandler.SyncExternal)
		}

		// Asset upload (protected)
		v1.POST("/upload", d.authMiddleware, d.uploadHandler.Upload)

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.GET("/stats", d.adminHandler.GetStats)
		}
	}
}
