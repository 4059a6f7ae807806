package services

import (
	"fmt"

	"github.com/civic-lens/api-go/models"
	"gorm.io/gorm"
)

// NotificationService fans out Notification rows to report owners when
// someone comments on or reacts to their report. Callers treat every
// method as best-effort: a failed write is logged by the caller and
// never fails the triggering operation.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyComment records a comment notification for the report owner.
// Owners are not notified about their own comments.
func (ns *NotificationService) NotifyComment(report *models.Report, actor *models.User) error {
	if actor.ID == report.UserID {
		return nil
	}

	notification := models.Notification{
		UserID:    report.UserID,
		ActorName: actor.Name,
		Type:      models.NotificationComment,
		ReportID:  &report.ID,
	}

	if err := ns.db.Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to create comment notification: %w", err)
	}
	return nil
}

// NotifyReaction records a like/dislike notification for the report
// owner. Only called for a first reaction; overwriting an existing
// reaction does not notify again.
func (ns *NotificationService) NotifyReaction(report *models.Report, actor *models.User, kind string) error {
	if actor.ID == report.UserID {
		return nil
	}

	notification := models.Notification{
		UserID:    report.UserID,
		ActorName: actor.Name,
		Type:      kind,
		ReportID:  &report.ID,
	}

	if err := ns.db.Create(&notification).Error; err != nil {
		return fmt.Errorf("failed to create reaction notification: %w", err)
	}
	return nil
}
