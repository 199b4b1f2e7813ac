package types

// SubmissionMetadataRequest is the metadata half of a multipart submission
// upload
type SubmissionMetadataRequest struct {
	Title           string `form:"title" json:"title" binding:"required"`
	ArtistName      string `form:"artist_name" json:"artist_name" binding:"required"`
	Genre           string `form:"genre" json:"genre"`
	SubGenre        string `form:"sub_genre" json:"sub_genre"`
	BPM             *int   `form:"bpm" json:"bpm"`
	KeySignature    string `form:"key_signature" json:"key_signature"`
	Description     string `form:"description" json:"description"`
	Lyrics          string `form:"lyrics" json:"lyrics"`
	DurationSeconds *int   `form:"duration_seconds" json:"duration_seconds"`
}

// RateSubmissionRequest is a label's rating upsert body
type RateSubmissionRequest struct {
	Score           int    `json:"score" binding:"required"`
	ReviewText      string `json:"review_text"`
	Interested      bool   `json:"interested"`
	ListenedSeconds *int   `json:"listened_seconds"`
}

// TransitionRequest moves a submission through its review lifecycle
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}
