package usecase

import (
	"context"
	"errors"
	"testing"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotificationService_GetNotifications(t *testing.T) {
	repo, set := mocks.New()
	svc := NewNotificationService(repo, zap.NewNop())
	userID := uuid.New()

	unread := uuid.New()

	set.Notification.On("FindByUserID", mock.Anything, userID, notificationPageSize).Return([]*entity.Notification{
		{BaseSimple: entity.BaseSimple{ID: unread}, UserID: userID, Message: "Booking confirmed"},
		{BaseSimple: entity.BaseSimple{ID: uuid.New()}, UserID: userID, Message: "Booking received", IsRead: true},
	}, nil)
	set.Notification.On("MarkRead", mock.Anything, userID, []uuid.UUID{unread}).Return(nil)

	got, err := svc.GetNotifications(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Booking confirmed", got[0].Message)
	set.AssertExpectations(t)
}

func TestNotificationService_NotifySwallowsErrors(t *testing.T) {
	repo, set := mocks.New()
	svc := NewNotificationService(repo, zap.NewNop())
	proID := uuid.New()

	set.Professional.On("FindByID", mock.Anything, proID).Return(nil, errors.New("db down"))

	assert.NotPanics(t, func() {
		svc.NotifyProfessional(context.Background(), proID, "hello")
	})
	set.Notification.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
