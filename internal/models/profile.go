package models

import (
	"time"
)

// User roles as supplied by the identity provider
const (
	RoleArtist = "artist"
	RoleLabel  = "label"
)

// ArtistProfile holds an artist's public profile and denormalized activity
// counters. TotalSubmissions and TotalPlays track submission and play_event
// rows owned by the artist; they are bumped incrementally by the lifecycle
// and play services and may drift slightly under the Incremental counter
// strategy (see services/profiles).
type ArtistProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	ArtistName string `json:"artist_name" gorm:"not null"`
	Genre      string `json:"genre" gorm:"size:100"`

	WebsiteURL      string `json:"website_url,omitempty" gorm:"size:500"`
	SpotifyURL      string `json:"spotify_url,omitempty" gorm:"size:500"`
	SoundcloudURL   string `json:"soundcloud_url,omitempty" gorm:"size:500"`
	InstagramHandle string `json:"instagram_handle,omitempty" gorm:"size:100"`
	TwitterHandle   string `json:"twitter_handle,omitempty" gorm:"size:100"`

	TotalSubmissions int `json:"total_submissions" gorm:"default:0"`
	TotalPlays       int `json:"total_plays" gorm:"default:0"`
}

// TableName returns the table name for the ArtistProfile model
func (ArtistProfile) TableName() string {
	return "artist_profiles"
}

// LabelProfile holds a label's public profile and denormalized review
// counters. TotalReviews tracks rating rows authored by the label.
type LabelProfile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	LabelName   string `json:"label_name" gorm:"not null"`
	CompanyName string `json:"company_name,omitempty"`
	Country     string `json:"country,omitempty" gorm:"size:100"`
	WebsiteURL  string `json:"website_url,omitempty" gorm:"size:500"`

	// Comma-separated genre list the label is scouting for
	GenresInterested string `json:"genres_interested,omitempty" gorm:"size:500"`

	TotalReviews int `json:"total_reviews" gorm:"default:0"`
	TotalSigned  int `json:"total_signed" gorm:"default:0"`
}

// TableName returns the table name for the LabelProfile model
func (LabelProfile) TableName() string {
	return "label_profiles"
}
