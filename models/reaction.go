package models

import (
	"time"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction records a user's sentiment on a report. The composite
// unique index guarantees at most one row per (user, report); a repeat
// reaction overwrites Type instead of inserting.
type Reaction struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      string    `gorm:"not null" json:"type"` // "like" or "dislike"
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reactions_user_report" json:"user_id"`
	ReportID  uint      `gorm:"not null;uniqueIndex:idx_reactions_user_report" json:"report_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
