package usecase

import (
	"context"
	"fmt"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bookingGuard loads a booking and checks who may act on it.
type bookingGuard struct {
	repo *repository.Repository
	log  *zap.Logger
}

func (g bookingGuard) load(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID")
	}

	booking, err := g.repo.Booking.FindByID(ctx, id)
	if err != nil {
		g.log.Error("Failed to load booking", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to get booking")
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	return booking, nil
}

// ownsBooking reports whether userID is the professional assigned to the booking.
func (g bookingGuard) ownsBooking(ctx context.Context, booking *entity.Booking, userID uuid.UUID) (bool, error) {
	pro, err := g.repo.Professional.FindByUserID(ctx, userID)
	if err != nil {
		g.log.Error("Failed to load professional", zap.Error(err), zap.String("user_id", userID.String()))
		return false, fmt.Errorf("failed to check booking access")
	}
	return pro != nil && pro.ID == booking.ProfessionalID, nil
}

// forParticipant admits the booking's customer or its professional.
func (g bookingGuard) forParticipant(ctx context.Context, bookingID string, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := g.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID == userID {
		return booking, nil
	}

	owner, err := g.ownsBooking(ctx, booking, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		g.log.Warn("Booking access denied",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("permission denied: not a participant of this booking")
	}

	return booking, nil
}

func (g bookingGuard) forCustomer(ctx context.Context, bookingID string, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := g.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.CustomerID != userID {
		g.log.Warn("Customer access denied",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("permission denied: only the customer can do this")
	}
	return booking, nil
}

func (g bookingGuard) forOwner(ctx context.Context, bookingID string, userID uuid.UUID) (*entity.Booking, error) {
	booking, err := g.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	owner, err := g.ownsBooking(ctx, booking, userID)
	if err != nil {
		return nil, err
	}
	if !owner {
		g.log.Warn("Professional access denied",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("permission denied: you do not have permission to update this booking")
	}

	return booking, nil
}

// amount is the service base price, or 0 for bookings without a service.
func (g bookingGuard) amount(ctx context.Context, booking *entity.Booking) (float64, error) {
	if booking.ServiceID == nil {
		return 0, nil
	}

	service, err := g.repo.Service.FindByID(ctx, *booking.ServiceID)
	if err != nil {
		g.log.Error("Failed to load booking service", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return 0, fmt.Errorf("failed to get service")
	}
	if service == nil {
		return 0, nil
	}

	return service.BasePrice, nil
}
