package routes

import (
	"github.com/civic-lens/api-go/controllers"
	"github.com/civic-lens/api-go/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(public, protected, admin *gin.RouterGroup, reportController *controllers.ReportController) {
	public.GET("/reports/public", reportController.GetPublicReports)
	public.GET("/reports/public/:id", reportController.GetPublicReportDetail)

	protected.POST("/reports", middleware.ReportRateLimiter(reportsPerDay()), reportController.CreateReport)
	protected.GET("/reports/me", reportController.GetMyReports)
	protected.GET("/reports/:id", reportController.GetReport)
	protected.PUT("/reports/:id", reportController.UpdateReport)
	protected.DELETE("/reports/:id", reportController.DeleteReport)

	admin.GET("/reports", reportController.GetAllReports)
	admin.PATCH("/reports/:id/status", reportController.UpdateReportStatus)
}
