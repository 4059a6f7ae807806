package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/services"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReactionController struct {
	DB       *gorm.DB
	Notifier *services.NotificationService
}

func NewReactionController(db *gorm.DB, notifier *services.NotificationService) *ReactionController {
	return &ReactionController{DB: db, Notifier: notifier}
}

// React handles POST /reports/:id/reaction. A user holds at most one
// reaction per report: the first submission inserts, any repeat
// overwrites the kind. Only the insert notifies the report owner.
func (rc *ReactionController) React(c *gin.Context) {
	user := utils.GetUser(c)

	kind := c.PostForm("type")
	if kind != models.ReactionLike && kind != models.ReactionDislike {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "Invalid reaction type")
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	var existing models.Reaction
	err := rc.DB.Where("report_id = ? AND user_id = ?", report.ID, user.UserID).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		reaction := models.Reaction{
			Type:     kind,
			UserID:   user.UserID,
			ReportID: report.ID,
		}
		if createErr := rc.DB.Create(&reaction).Error; createErr != nil {
			// A concurrent first reaction can win the unique index
			// race; the loser falls back to the overwrite path.
			if !errors.Is(createErr, gorm.ErrDuplicatedKey) {
				utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to save reaction")
				return
			}
			if updateErr := rc.DB.Model(&models.Reaction{}).
				Where("report_id = ? AND user_id = ?", report.ID, user.UserID).
				Update("type", kind).Error; updateErr != nil {
				utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to save reaction")
				return
			}
		} else {
			rc.notify(&report, user.UserID, kind)
		}

	case err != nil:
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to save reaction")
		return

	default:
		if updateErr := rc.DB.Model(&existing).Update("type", kind).Error; updateErr != nil {
			utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to save reaction")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Reaction saved"})
}

// GetReactions handles GET /reports/:id/reactions. No authentication
// required.
func (rc *ReactionController) GetReactions(c *gin.Context) {
	reportID := c.Param("id")

	var likes, dislikes int64
	rc.DB.Model(&models.Reaction{}).
		Where("report_id = ? AND type = ?", reportID, models.ReactionLike).
		Count(&likes)
	rc.DB.Model(&models.Reaction{}).
		Where("report_id = ? AND type = ?", reportID, models.ReactionDislike).
		Count(&dislikes)

	c.JSON(http.StatusOK, gin.H{
		"likes":    likes,
		"dislikes": dislikes,
	})
}

func (rc *ReactionController) notify(report *models.Report, actorID uint, kind string) {
	var actor models.User
	if err := rc.DB.First(&actor, actorID).Error; err != nil {
		slog.Warn("reaction notification skipped, actor not found", "actor_id", actorID, "error", err)
		return
	}
	if err := rc.Notifier.NotifyReaction(report, &actor, kind); err != nil {
		slog.Error("reaction notification failed", "report_id", report.ID, "error", err)
	}
}
