package controllers

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/services"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ObjectStore is the slice of the storage service the report
// controller needs.
type ObjectStore interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type ReportController struct {
	DB    *gorm.DB
	Store ObjectStore
}

func NewReportController(db *gorm.DB, store ObjectStore) *ReportController {
	return &ReportController{DB: db, Store: store}
}

type ReportStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// publicReport is a report annotated with its submitter's display
// name for the unauthenticated listing.
type publicReport struct {
	models.Report
	Username string `json:"username"`
}

// CreateReport handles POST /reports (multipart because of the image).
func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	location := strings.TrimSpace(c.PostForm("location"))
	if title == "" || description == "" || location == "" {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "title, description and location are required")
		return
	}

	report := models.Report{
		Title:       title,
		Description: description,
		Location:    location,
		Status:      models.StatusPending,
		UserID:      user.UserID,
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		key, err := rc.storeImage(c, fileHeader)
		if err != nil {
			utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to store image")
			return
		}
		report.ImagePath = &key

		// Classification is best-effort; a miss leaves the fields null.
		if cls, ok := services.ClassifyImage(fileHeader.Filename); ok {
			report.PredictedCategory = &cls.Category
			report.ConfidenceScore = &cls.Confidence
			report.Labels = cls.Labels
		} else {
			slog.Warn("image classification unavailable", "filename", fileHeader.Filename)
		}
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to create report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetPublicReports handles GET /reports/public with optional status
// filter and newest/oldest sort. No authentication required.
func (rc *ReportController) GetPublicReports(c *gin.Context) {
	q := rc.DB.Model(&models.Report{}).
		Select("reports.*, users.name as username").
		Joins("JOIN users ON users.id = reports.user_id")

	if status := c.Query("status"); status != "" {
		q = q.Where("reports.status = ?", status)
	}

	if c.Query("sort") == "oldest" {
		q = q.Order("reports.created_at ASC")
	} else {
		q = q.Order("reports.created_at DESC")
	}

	var reports []publicReport
	if err := q.Find(&reports).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetPublicReportDetail handles GET /reports/public/:id.
func (rc *ReportController) GetPublicReportDetail(c *gin.Context) {
	var report publicReport
	err := rc.DB.Model(&models.Report{}).
		Select("reports.*, users.name as username").
		Joins("JOIN users ON users.id = reports.user_id").
		Where("reports.id = ?", c.Param("id")).
		First(&report).Error
	if err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetMyReports handles GET /reports/me.
func (rc *ReportController) GetMyReports(c *gin.Context) {
	user := utils.GetUser(c)

	var reports []models.Report
	if err := rc.DB.Where("user_id = ?", user.UserID).Find(&reports).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetReport handles GET /reports/:id, owner only.
func (rc *ReportController) GetReport(c *gin.Context) {
	user := utils.GetUser(c)

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	if report.UserID != user.UserID {
		utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Not allowed")
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateReport handles PUT /reports/:id, owner only. Fields are
// replaced wholesale; an absent image keeps the old reference.
func (rc *ReportController) UpdateReport(c *gin.Context) {
	user := utils.GetUser(c)

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	if report.UserID != user.UserID {
		utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Not authorized")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	location := strings.TrimSpace(c.PostForm("location"))
	if title == "" || description == "" || location == "" {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "title, description and location are required")
		return
	}

	report.Title = title
	report.Description = description
	report.Location = location

	if fileHeader, err := c.FormFile("image"); err == nil {
		key, err := rc.storeImage(c, fileHeader)
		if err != nil {
			utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to store image")
			return
		}
		report.ImagePath = &key
	}

	if err := rc.DB.Save(&report).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to update report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /reports/:id, owner only. The stored
// image is released best-effort; comments and reactions go with the
// report so nothing is left orphaned.
func (rc *ReportController) DeleteReport(c *gin.Context) {
	user := utils.GetUser(c)

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	if report.UserID != user.UserID {
		utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Not allowed")
		return
	}

	if report.ImagePath != nil {
		if err := rc.Store.Delete(c.Request.Context(), *report.ImagePath); err != nil {
			slog.Warn("failed to release report image", "report_id", report.ID, "key", *report.ImagePath, "error", err)
		}
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("report_id = ?", report.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", report.ID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	})
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to delete report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Report deleted"})
}

// GetAllReports handles GET /reports, admin only (enforced by route
// middleware).
func (rc *ReportController) GetAllReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Find(&reports).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// UpdateReportStatus handles PATCH /reports/:id/status, admin only.
// The status value is intentionally not checked against the canonical
// set; admins may move a report anywhere.
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	var payload ReportStatusUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "status is required")
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	report.Status = payload.Status
	if err := rc.DB.Save(&report).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to update status")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (rc *ReportController) storeImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return rc.Store.Store(c.Request.Context(), fileHeader.Filename, f)
}
