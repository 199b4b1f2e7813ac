package submissions

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/notifications"
	"github.com/labelreader/label-api/internal/services/profiles"
	"github.com/labelreader/label-api/internal/services/storage"
)

const (
	maxTitleLength      = 200
	maxArtistNameLength = 120
	minBPM              = 20
	maxBPM              = 400
)

// Service implements the SubmissionService interface
type Service struct {
	repository SubmissionRepository
	blobs      storage.BlobStore
	counters   profiles.Counters
	notifier   notifications.Notifier
}

// NewService creates a new submission service
func NewService(repository SubmissionRepository, blobs storage.BlobStore, counters profiles.Counters, notifier notifications.Notifier) *Service {
	return &Service{
		repository: repository,
		blobs:      blobs,
		counters:   counters,
		notifier:   notifications.LoggingNotifier{Next: notifier},
	}
}

// Create validates the metadata, stores the audio payload, and persists the
// submission in PENDING. The artist's denormalized submission counter is
// bumped best-effort after the row exists.
func (s *Service) Create(ctx context.Context, artistID uint, input SubmissionInput, audio AudioUpload) (*models.Submission, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(audio.Data) == 0 {
		return nil, ErrMissingAudio
	}

	ref, err := s.blobs.Store(ctx, audio.Data, audio.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store audio: %w", err)
	}

	submission := &models.Submission{
		ArtistID:        artistID,
		Title:           strings.TrimSpace(input.Title),
		ArtistName:      strings.TrimSpace(input.ArtistName),
		Genre:           input.Genre,
		SubGenre:        input.SubGenre,
		BPM:             input.BPM,
		KeySignature:    input.KeySignature,
		Description:     input.Description,
		Lyrics:          input.Lyrics,
		DurationSeconds: input.DurationSeconds,
		AudioRef:        ref,
		FileSizeBytes:   int64(len(audio.Data)),
		Published:       true,
		Status:          models.StatusPending,
	}

	if err := s.repository.Create(ctx, submission); err != nil {
		// Don't leave an orphaned blob behind the failed row
		if delErr := s.blobs.Delete(ctx, ref); delErr != nil {
			log.Printf("[ERROR] Failed to release blob %s after create failure: %v", ref, delErr)
		}
		return nil, err
	}

	if err := s.counters.AddArtistSubmissions(ctx, artistID, 1); err != nil {
		log.Printf("[ERROR] Failed to bump submission counter for artist %d: %v", artistID, err)
	}

	return submission, nil
}

// Get returns the submission if the requesting artist owns it
func (s *Service) Get(ctx context.Context, submissionID, requesterArtistID uint) (*models.Submission, error) {
	submission, err := s.repository.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.ArtistID != requesterArtistID {
		return nil, ErrNotOwner
	}
	return submission, nil
}

func (s *Service) ListByArtist(ctx context.Context, artistID uint, page, limit int) ([]models.Submission, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.repository.ListByArtist(ctx, artistID, page, limit)
}

// Delete removes the submission with its ratings and play events, releases
// the stored audio, and decrements the artist's counter. Blob release and
// the counter are best-effort once the cascade has committed.
func (s *Service) Delete(ctx context.Context, submissionID, requesterArtistID uint) error {
	submission, err := s.repository.GetByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if submission.ArtistID != requesterArtistID {
		return ErrNotOwner
	}

	if err := s.repository.DeleteCascade(ctx, submissionID); err != nil {
		return err
	}

	if submission.AudioRef != "" {
		if err := s.blobs.Delete(ctx, submission.AudioRef); err != nil {
			log.Printf("[ERROR] Failed to release blob %s for deleted submission %d: %v", submission.AudioRef, submissionID, err)
		}
	}
	if err := s.counters.AddArtistSubmissions(ctx, requesterArtistID, -1); err != nil {
		log.Printf("[ERROR] Failed to decrement submission counter for artist %d: %v", requesterArtistID, err)
	}
	return nil
}

// Transition applies a status change and notifies the owning artist
func (s *Service) Transition(ctx context.Context, submissionID uint, newStatus string) (*models.Submission, error) {
	if !models.ValidStatus(newStatus) {
		return nil, &ValidationError{Field: "status", Message: "unknown status " + newStatus}
	}

	submission, err := s.repository.UpdateStatus(ctx, submissionID, newStatus)
	if err != nil {
		return nil, err
	}

	_ = s.notifier.Notify(ctx, submission.ArtistID, models.NotificationStatusChange,
		"Submission status updated",
		fmt.Sprintf("%q is now %s", submission.Title, newStatus),
		fmt.Sprintf("/submissions/%d", submission.ID))

	return submission, nil
}

// GetForReview returns a submission without an ownership check. Labels may
// inspect any published submission.
func (s *Service) GetForReview(ctx context.Context, submissionID uint) (*models.Submission, error) {
	submission, err := s.repository.GetByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !submission.Published {
		return nil, ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *Service) ListForReview(ctx context.Context, filter ListFilter, page PageRequest) ([]models.Submission, int64, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Size < 1 {
		page.Size = 20
	}
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, 0, &ValidationError{Field: "status", Message: "unknown status " + filter.Status}
	}
	return s.repository.ListForReview(ctx, filter, page)
}

func validateInput(input SubmissionInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return &ValidationError{Field: "title", Message: "must not be empty"}
	}
	if len(title) > maxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", maxTitleLength)}
	}
	artistName := strings.TrimSpace(input.ArtistName)
	if artistName == "" {
		return &ValidationError{Field: "artist_name", Message: "must not be empty"}
	}
	if len(artistName) > maxArtistNameLength {
		return &ValidationError{Field: "artist_name", Message: fmt.Sprintf("must be at most %d characters", maxArtistNameLength)}
	}
	if input.BPM != nil && (*input.BPM < minBPM || *input.BPM > maxBPM) {
		return &ValidationError{Field: "bpm", Message: fmt.Sprintf("must be between %d and %d", minBPM, maxBPM)}
	}
	if input.DurationSeconds != nil && *input.DurationSeconds < 0 {
		return &ValidationError{Field: "duration_seconds", Message: "must not be negative"}
	}
	return nil
}
