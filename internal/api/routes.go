package api

import (
	"net/http"

	"gym-admin/internal/auth"
	"gym-admin/internal/domain"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router. backupService may be nil
// when no S3 bucket is configured; the admin backup routes are then simply
// not registered.
func SetupRoutes(
	router *gin.Engine,
	tokens *auth.Manager,
	authService service.AuthService,
	memberService service.MemberService,
	classService service.ClassService,
	trainerService service.TrainerService,
	analyticsService service.AnalyticsService,
	backupService service.BackupService,
) {
	authHandler := NewAuthHandler(authService)
	memberHandler := NewMemberHandler(memberService)
	classHandler := NewClassHandler(classService)
	trainerHandler := NewTrainerHandler(trainerService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)

	authMiddleware := AuthMiddleware(tokens)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		memberGroup := protected.Group("/members")
		{
			memberGroup.GET("", memberHandler.ListMembers)
			memberGroup.POST("", memberHandler.CreateMember)
			memberGroup.GET("/:id", memberHandler.GetMember)
			memberGroup.PUT("/:id", memberHandler.UpdateMember)
			memberGroup.DELETE("/:id", memberHandler.DeleteMember)
		}

		classGroup := protected.Group("/classes")
		{
			classGroup.GET("", classHandler.ListClasses)
			classGroup.POST("", classHandler.CreateClass)
			classGroup.GET("/:id", classHandler.GetClass)
			classGroup.PUT("/:id", classHandler.UpdateClass)
			classGroup.DELETE("/:id", classHandler.DeleteClass)
		}

		trainerGroup := protected.Group("/trainers")
		{
			trainerGroup.GET("", trainerHandler.ListTrainers)
			trainerGroup.POST("", trainerHandler.CreateTrainer)
			trainerGroup.GET("/:id", trainerHandler.GetTrainer)
			trainerGroup.PUT("/:id", trainerHandler.UpdateTrainer)
			trainerGroup.DELETE("/:id", trainerHandler.DeleteTrainer)
		}

		protected.GET("/analytics", analyticsHandler.GetSummary)

		if backupService != nil {
			backupHandler := NewBackupHandler(backupService)
			adminGroup := protected.Group("/admin")
			adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
			{
				adminGroup.POST("/backups", backupHandler.CreateBackup)
				adminGroup.GET("/backups/:name/url", backupHandler.GetBackupURL)
			}
		}
	}
}
