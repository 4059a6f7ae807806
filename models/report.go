package models

import (
	"time"

	"github.com/lib/pq"
)

// Report status lifecycle: pending -> in_progress -> resolved.
// The PATCH /reports/:id/status endpoint is deliberately permissive
// and accepts any value an admin sends; these are the canonical ones.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Report is a citizen-submitted civic issue.
type Report struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Location    string `gorm:"not null" json:"location"`
	Status      string `gorm:"not null;default:'pending'" json:"status"`

	// Classifier output; left null when classification is unavailable.
	PredictedCategory *string        `json:"predicted_category"`
	ConfidenceScore   *float64       `json:"confidence_score"`
	Labels            pq.StringArray `gorm:"type:text[]" json:"labels,omitempty"`

	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ImagePath *string   `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
