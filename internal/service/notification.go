package service

import (
	"context"

	"bloodbank-backend/internal/domain"
	"bloodbank-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID int32, limit int32) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.noteRepo.ListByUser(ctx, userID, limit)
}

func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	return s.noteRepo.MarkAsRead(ctx, notificationID, userID)
}
