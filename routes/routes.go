package routes

import (
	"os"
	"strconv"

	"github.com/civic-lens/api-go/controllers"
	"github.com/civic-lens/api-go/middleware"
	"github.com/civic-lens/api-go/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	storage := services.NewStorage()
	notifier := services.NewNotificationService(db)

	reportController := controllers.NewReportController(db, storage)
	commentController := controllers.NewCommentController(db, notifier)
	reactionController := controllers.NewReactionController(db, notifier)
	notificationController := controllers.NewNotificationController(db)
	analyticsController := controllers.NewAnalyticsController(db)
	userController := controllers.NewUserController(db)

	public := r.Group("")

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware())

	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())

	SetupReportRoutes(public, protected, admin, reportController)
	SetupInteractionRoutes(public, protected, commentController, reactionController)
	SetupNotificationRoutes(protected, admin, notificationController, analyticsController)

	protected.GET("/users/me", userController.GetProfile)
}

func reportsPerDay() int {
	if v := os.Getenv("REPORTS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 10
}
