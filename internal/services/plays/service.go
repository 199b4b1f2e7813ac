package plays

import (
	"context"
	"log"

	"github.com/labelreader/label-api/internal/models"
	"github.com/labelreader/label-api/internal/services/profiles"
)

// Service implements the PlayService interface
type Service struct {
	repository PlayRepository
	counters   profiles.Counters
}

// NewService creates a new play tracking service
func NewService(repository PlayRepository, counters profiles.Counters) *Service {
	return &Service{repository: repository, counters: counters}
}

// RecordPlay appends a play event for the submission. Anonymous plays carry
// a nil listener ID. The owning artist's play counter is bumped best-effort
// after the event has committed.
func (s *Service) RecordPlay(ctx context.Context, submissionID uint, listenerID *uint, clientIP string) (*models.Submission, error) {
	event := &models.PlayEvent{
		SubmissionID: submissionID,
		ListenerID:   listenerID,
		ClientIP:     clientIP,
	}

	submission, err := s.repository.RecordPlay(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.counters.AddArtistPlays(ctx, submission.ArtistID, 1); err != nil {
		log.Printf("[ERROR] Failed to bump play counter for artist %d: %v", submission.ArtistID, err)
	}

	return submission, nil
}

func (s *Service) ListForSubmission(ctx context.Context, submissionID uint, page, limit int) ([]models.PlayEvent, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.repository.ListForSubmission(ctx, submissionID, page, limit)
}
