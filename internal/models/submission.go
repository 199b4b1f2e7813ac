package models

import (
	"time"
)

// Submission status constants
const (
	StatusPending     = "PENDING"      // Submitted, not yet looked at
	StatusUnderReview = "UNDER_REVIEW" // At least one label is reviewing it
	StatusApproved    = "APPROVED"     // Accepted by a label
	StatusRejected    = "REJECTED"     // Declined by a label
)

// Submission represents a single track submitted by an artist for label review
type Submission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Owning artist (user ID from the identity provider)
	ArtistID uint `json:"artist_id" gorm:"not null;index"`

	// Track metadata
	Title        string  `json:"title" gorm:"not null"`
	ArtistName   string  `json:"artist_name" gorm:"not null"`
	Genre        string  `json:"genre" gorm:"size:100;index"`
	SubGenre     string  `json:"sub_genre" gorm:"size:100"`
	BPM          *int    `json:"bpm,omitempty"`
	KeySignature string  `json:"key_signature" gorm:"size:10"`
	Description  string  `json:"description" gorm:"type:text"`
	Lyrics       string  `json:"lyrics,omitempty" gorm:"type:text"`

	// Backing audio asset, opaque reference into blob storage
	AudioRef        string `json:"audio_ref" gorm:"not null;size:500"`
	FileSizeBytes   int64  `json:"file_size_bytes"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`

	Published bool   `json:"published" gorm:"default:false"`
	Status    string `json:"status" gorm:"size:20;default:PENDING;index"`

	// Derived fields. PlayCount tracks play_events rows; AverageRating and
	// TotalRatings always reflect the current rating rows for this submission
	// and are only written inside the rating upsert transaction.
	PlayCount     int     `json:"play_count" gorm:"default:0"`
	AverageRating float64 `json:"average_rating" gorm:"type:decimal(3,2);default:0"`
	TotalRatings  int     `json:"total_ratings" gorm:"default:0"`
}

// TableName returns the table name for the Submission model
func (Submission) TableName() string {
	return "submissions"
}

// CanTransition reports whether a status change is allowed.
// PENDING and UNDER_REVIEW move freely between each other; APPROVED and
// REJECTED are reachable only from UNDER_REVIEW and are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusUnderReview
	case StatusUnderReview:
		return to == StatusPending || to == StatusApproved || to == StatusRejected
	default:
		return false
	}
}

// ValidStatus reports whether s is a known submission status
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}
