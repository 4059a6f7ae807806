package controllers

import (
	"net/http"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// GetSummary handles GET /analytics/summary, admin only (enforced by
// route middleware). Only statuses actually present appear in the
// breakdown; there is no zero-fill.
func (ac *AnalyticsController) GetSummary(c *gin.Context) {
	var total int64
	if err := ac.DB.Model(&models.Report{}).Count(&total).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to aggregate reports")
		return
	}

	var rows []struct {
		Status string
		Count  int64
	}
	err := ac.DB.Model(&models.Report{}).
		Select("status, count(id) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to aggregate reports")
		return
	}

	byStatus := make(map[string]int64, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_reports":     total,
		"reports_by_status": byStatus,
	})
}
