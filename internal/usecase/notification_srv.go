package usecase

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const notificationPageSize = 50

type NotificationService interface {
	// Notify never fails the caller; write errors are logged.
	Notify(ctx context.Context, userID uuid.UUID, message string)
	NotifyProfessional(ctx context.Context, professionalID uuid.UUID, message string)
	// GetNotifications returns the newest notices and marks those returned as read.
	GetNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error)
}

type notificationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewNotificationService(repo *repository.Repository, log *zap.Logger) NotificationService {
	return &notificationService{
		repo: repo,
		log:  log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, message string) {
	notification := &entity.Notification{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  userID,
		Message: message,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.log.Warn("Failed to write notification", zap.Error(err), zap.String("user_id", userID.String()))
	}
}

func (s *notificationService) NotifyProfessional(ctx context.Context, professionalID uuid.UUID, message string) {
	pro, err := s.repo.Professional.FindByID(ctx, professionalID)
	if err != nil || pro == nil {
		s.log.Warn("Failed to resolve professional for notification",
			zap.Error(err),
			zap.String("professional_id", professionalID.String()))
		return
	}

	s.Notify(ctx, pro.UserID, message)
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID) ([]response.NotificationResponse, error) {
	notifications, err := s.repo.Notification.FindByUserID(ctx, userID, notificationPageSize)
	if err != nil {
		s.log.Error("Failed to get notifications", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get notifications")
	}

	var unread []uuid.UUID
	for _, n := range notifications {
		if !n.IsRead {
			unread = append(unread, n.ID)
		}
	}

	if err := s.repo.Notification.MarkRead(ctx, userID, unread); err != nil {
		s.log.Warn("Failed to mark notifications read", zap.Error(err), zap.String("user_id", userID.String()))
	}

	return response.NotificationsToResponse(notifications), nil
}
