package models

import (
	"time"
)

// Rating score bounds
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating represents a label's scored review of one submission.
// At most one row exists per (submission, label) pair; re-rating overwrites
// the existing row through the upsert protocol.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SubmissionID uint `json:"submission_id" gorm:"not null;uniqueIndex:idx_ratings_submission_label"`
	LabelID      uint `json:"label_id" gorm:"not null;uniqueIndex:idx_ratings_submission_label;index"`

	Score           int    `json:"score" gorm:"not null"`
	ReviewText      string `json:"review_text,omitempty" gorm:"type:text"`
	Interested      bool   `json:"interested" gorm:"default:false"`
	ListenedSeconds *int   `json:"listened_seconds,omitempty"`
}

// TableName returns the table name for the Rating model
func (Rating) TableName() string {
	return "ratings"
}
