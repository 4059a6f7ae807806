package models

import (
	"time"
)

// User is the local projection of an identity-provider account. Tokens
// are issued and passwords handled outside this service; we only keep
// what the domain needs: a display name and a role.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      string    `gorm:"not null;default:'user'" json:"role"` // "user" or "admin"

	Reports  []Report  `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}
