package models

import (
	"time"
)

const (
	NotificationComment = "comment"
	NotificationLike    = "like"
	NotificationDislike = "dislike"
)

// Notification tells a report owner about social activity on their
// report. Rows are written best-effort by the notification service and
// only ever mutated by the recipient marking them read.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // recipient
	ActorName string    `gorm:"not null" json:"actor_name"`
	Type      string    `gorm:"not null" json:"type"` // comment | like | dislike
	ReportID  *uint     `json:"report_id"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
