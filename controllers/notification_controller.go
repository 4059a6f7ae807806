package controllers

import (
	"net/http"
	"time"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

type notificationResponse struct {
	ID        uint      `json:"id"`
	Actor     string    `json:"actor"`
	Type      string    `json:"type"`
	ReportID  *uint     `json:"report_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// GetNotifications handles GET /notifications, newest first, scoped
// to the caller.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user := utils.GetUser(c)

	var notifications []models.Notification
	err := nc.DB.Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to list notifications")
		return
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:        n.ID,
			Actor:     n.ActorName,
			Type:      n.Type,
			ReportID:  n.ReportID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, out)
}

// MarkAsRead handles POST /notifications/:id/read. Find-and-maybe-
// update: a foreign or unknown id is a silent success, never an error.
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	user := utils.GetUser(c)

	var notification models.Notification
	err := nc.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.UserID).
		First(&notification).Error
	if err == nil {
		nc.DB.Model(&notification).Update("is_read", true)
	}

	c.JSON(http.StatusOK, gin.H{"detail": "ok"})
}
