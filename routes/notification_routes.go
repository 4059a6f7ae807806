package routes

import (
	"github.com/civic-lens/api-go/controllers"

	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(protected, admin *gin.RouterGroup, notificationController *controllers.NotificationController, analyticsController *controllers.AnalyticsController) {
	protected.GET("/notifications", notificationController.GetNotifications)
	protected.POST("/notifications/:id/read", notificationController.MarkAsRead)

	admin.GET("/analytics/summary", analyticsController.GetSummary)
}
