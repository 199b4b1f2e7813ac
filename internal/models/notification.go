package models

import (
	"time"
)

// Notification kinds
const (
	NotificationNewRating    = "NEW_RATING"
	NotificationStatusChange = "STATUS_CHANGE"
	NotificationNewPlay      = "NEW_PLAY"
)

// Notification is a stored in-app notification for a user. Delivery is a
// best-effort side effect of rating and lifecycle operations; a failed write
// never rolls back the operation that produced it.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Kind    string `json:"kind" gorm:"size:50;not null"`
	Title   string `json:"title" gorm:"not null"`
	Message string `json:"message" gorm:"type:text"`
	LinkURL string `json:"link_url,omitempty" gorm:"size:500"`
	Read    bool   `json:"read" gorm:"default:false;index"`
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
