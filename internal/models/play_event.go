package models

import (
	"time"

	"gorm.io/gorm"
)

// PlayEvent records that a submission was played. Rows are append-only and
// drive play counts and the time-series analytics; they are never updated
// and only removed when the owning submission is deleted.
type PlayEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	SubmissionID uint      `json:"submission_id" gorm:"not null;index"`
	ListenerID   *uint     `json:"listener_id,omitempty" gorm:"index"`
	PlayedAt     time.Time `json:"played_at" gorm:"not null;index"`
	ClientIP     string    `json:"client_ip,omitempty" gorm:"size:45"`
}

// BeforeCreate defaults the play timestamp when the caller didn't set one
func (p *PlayEvent) BeforeCreate(tx *gorm.DB) error {
	if p.PlayedAt.IsZero() {
		p.PlayedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the PlayEvent model
func (PlayEvent) TableName() string {
	return "play_events"
}
