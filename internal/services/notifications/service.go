package notifications

import (
	"context"

	"github.com/labelreader/label-api/internal/models"
)

// Service is the store-backed notification inbox. It implements Notifier
// for the producing services and the inbox operations for the API layer.
type Service struct {
	repository *Repository
}

var _ Notifier = (*Service)(nil)

func NewService(repository *Repository) *Service {
	return &Service{repository: repository}
}

// Notify persists an in-app notification for the user
func (s *Service) Notify(ctx context.Context, userID uint, kind, title, message, link string) error {
	return s.repository.Create(ctx, &models.Notification{
		UserID:  userID,
		Kind:    kind,
		Title:   title,
		Message: message,
		LinkURL: link,
	})
}

// ListForUser returns a page of the user's notifications, newest first
func (s *Service) ListForUser(ctx context.Context, userID uint, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	return s.repository.ListForUser(ctx, userID, unreadOnly, page, limit)
}

// CountUnread returns the user's unread notification count
func (s *Service) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.repository.CountUnread(ctx, userID)
}

// MarkRead marks one notification read after checking ownership
func (s *Service) MarkRead(ctx context.Context, id, userID uint) (*models.Notification, error) {
	notification, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.repository.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	notification.Read = true
	return notification, nil
}

// MarkAllRead marks every unread notification for the user as read
func (s *Service) MarkAllRead(ctx context.Context, userID uint) error {
	return s.repository.MarkAllRead(ctx, userID)
}

// Delete removes one notification after checking ownership
func (s *Service) Delete(ctx context.Context, id, userID uint) error {
	notification, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.UserID != userID {
		return ErrForbidden
	}
	return s.repository.Delete(ctx, id)
}
