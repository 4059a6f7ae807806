package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/services"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	DB       *gorm.DB
	Notifier *services.NotificationService
}

func NewCommentController(db *gorm.DB, notifier *services.NotificationService) *CommentController {
	return &CommentController{DB: db, Notifier: notifier}
}

// commentWithAuthor joins the author's display name; it is never
// stored redundantly on the comment row.
type commentWithAuthor struct {
	models.Comment
	Username string `json:"username"`
}

// GetComments handles GET /reports/:id/comments, newest first. No
// authentication required.
func (cc *CommentController) GetComments(c *gin.Context) {
	var comments []commentWithAuthor
	err := cc.DB.Model(&models.Comment{}).
		Select("comments.*, users.name as username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.report_id = ?", c.Param("id")).
		Order("comments.created_at DESC").
		Find(&comments).Error
	if err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /reports/:id/comments and notifies the
// report owner.
func (cc *CommentController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "content is required")
		return
	}

	var report models.Report
	if err := cc.DB.First(&report, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Report not found")
		return
	}

	comment := models.Comment{
		Content:  content,
		UserID:   user.UserID,
		ReportID: report.ID,
	}
	if err := cc.DB.Create(&comment).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to add comment")
		return
	}

	// Best-effort fan-out; the comment stands either way.
	var actor models.User
	if err := cc.DB.First(&actor, user.UserID).Error; err != nil {
		slog.Warn("comment notification skipped, actor not found", "actor_id", user.UserID, "error", err)
	} else if err := cc.Notifier.NotifyComment(&report, &actor); err != nil {
		slog.Error("comment notification failed", "report_id", report.ID, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Comment added"})
}

// UpdateComment handles PUT /comments/:id, author only.
func (cc *CommentController) UpdateComment(c *gin.Context) {
	user := utils.GetUser(c)

	var comment models.Comment
	if err := cc.DB.First(&comment, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Comment not found")
		return
	}

	if comment.UserID != user.UserID {
		utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Not allowed")
		return
	}

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		utils.AbortWithError(c, http.StatusBadRequest, utils.KindValidation, "content is required")
		return
	}

	comment.Content = content
	if err := cc.DB.Save(&comment).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to update comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /comments/:id, author only. Hard
// delete; the report is untouched.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)

	var comment models.Comment
	if err := cc.DB.First(&comment, c.Param("id")).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "Comment not found")
		return
	}

	if comment.UserID != user.UserID {
		utils.AbortWithError(c, http.StatusForbidden, utils.KindAuthorization, "Not allowed")
		return
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		utils.AbortWithError(c, http.StatusInternalServerError, utils.KindStorage, "Failed to delete comment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Comment deleted"})
}
