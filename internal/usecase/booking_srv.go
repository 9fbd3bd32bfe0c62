package usecase

import (
	"context"
	"fmt"
	"time"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"
	"home-fixture/internal/dto/request"
	"home-fixture/internal/dto/response"
	"home-fixture/pkg/cache"
	"home-fixture/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, professionalID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListCustomerBookings(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListProfessionalBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, bookingID, status string) (*response.BookingResponse, error)
	UpdateJob(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateJobRequest) (*response.BookingResponse, error)
	GetJobDetails(ctx context.Context, userID uuid.UUID, bookingID string) (*response.JobDetailsResponse, error)
	GetInvoice(ctx context.Context, userID uuid.UUID, bookingID string) (*response.InvoiceResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	notify    NotificationService
	guard     bookingGuard
	directory directoryCache
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, c cache.Cache, notify NotificationService, log *zap.Logger) BookingService {
	log = log.With(zap.String("service", "booking"))
	return &bookingService{
		repo:      repo,
		notify:    notify,
		guard:     bookingGuard{repo: repo, log: log},
		directory: directoryCache{repo: repo, cache: c, log: log},
		log:       log,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID uuid.UUID, professionalID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	proID, err := uuid.Parse(professionalID)
	if err != nil {
		return nil, fmt.Errorf("invalid professional ID")
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID")
	}

	bookingDate, err := time.Parse(time.DateOnly, req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date")
	}
	if !utils.IsFutureDate(bookingDate, time.Now()) {
		return nil, fmt.Errorf("invalid booking date: must be after today")
	}

	// 2. Professional and service must match
	pro, err := s.repo.Professional.FindByID(ctx, proID)
	if err != nil {
		s.log.Error("Failed to get professional", zap.Error(err), zap.String("professional_id", professionalID))
		return nil, fmt.Errorf("failed to get professional")
	}
	if pro == nil {
		return nil, fmt.Errorf("professional not found")
	}

	service, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to get service", zap.Error(err), zap.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("failed to get service")
	}
	if service == nil {
		return nil, fmt.Errorf("service not found")
	}
	if !pro.InCategory(service.CategoryID) {
		return nil, fmt.Errorf("invalid service: not offered by this professional")
	}

	timeSlot := req.TimeSlot
	if timeSlot == "" {
		timeSlot = entity.TimeSlotMorning
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:     customerID,
		ProfessionalID: pro.ID,
		ServiceID:      &service.ID,
		BookingDate:    bookingDate.UTC(),
		TimeSlot:       timeSlot,
		ServiceAddress: req.ServiceAddress,
		Requirements:   req.Requirements,
		Status:         entity.BookingStatusPending,
	}

	// 3. Reject an identical pending request
	exists, err := s.repo.Booking.ExistsPendingDuplicate(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing bookings")
	}
	if exists {
		return nil, fmt.Errorf("booking already exists for this professional, service and slot")
	}

	// 4. Save
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking")
	}

	s.notify.Notify(ctx, pro.UserID, fmt.Sprintf("New booking request for %s on %s (%s).",
		service.Name, req.BookingDate, timeSlot))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("professional_id", pro.ID.String()))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListCustomerBookings(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	normalizePage(req)

	bookings, err := s.repo.Booking.FindByCustomerID(ctx, customerID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Booking.CountByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings")
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) ListProfessionalBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	normalizePage(req)

	pro, err := s.repo.Professional.GetOrCreate(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get professional profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get professional profile")
	}

	bookings, err := s.repo.Booking.FindByProfessionalID(ctx, pro.ID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings")
	}

	total, err := s.repo.Booking.CountByProfessionalID(ctx, pro.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings")
	}

	return response.NewPaginatedResponse(response.BookingsToResponse(bookings), req.Page, req.PerPage, total), nil
}

// UpdateStatus accepts any known status regardless of the current one.
func (s *bookingService) UpdateStatus(ctx context.Context, userID uuid.UUID, bookingID, rawStatus string) (*response.BookingResponse, error) {
	status, ok := entity.ParseBookingStatus(rawStatus)
	if !ok {
		s.log.Warn("Rejected booking status", zap.String("status", rawStatus))
		return nil, fmt.Errorf("invalid status update: must be one of PENDING, CONFIRMED, COMPLETED, CANCELLED")
	}

	booking, err := s.guard.forOwner(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, status); err != nil {
		s.log.Error("Failed to update booking status", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update booking status")
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()

	if status == entity.BookingStatusCompleted {
		if err := s.complete(ctx, booking); err != nil {
			return nil, err
		}
	}

	s.notifyCustomer(ctx, booking)

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", string(status)))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateJob(ctx context.Context, userID uuid.UUID, bookingID string, req *request.UpdateJobRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update job validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		s.log.Warn("Rejected booking status", zap.String("status", req.Status))
		return nil, fmt.Errorf("invalid status update: must be one of PENDING, CONFIRMED, COMPLETED, CANCELLED")
	}

	booking, err := s.guard.forOwner(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	booking.Status = status
	if req.Requirements != nil {
		booking.Requirements = req.Requirements
	}
	if req.ServiceAddress != nil {
		booking.ServiceAddress = req.ServiceAddress
	}
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update job", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("failed to update job")
	}

	if status == entity.BookingStatusCompleted {
		if err := s.complete(ctx, booking); err != nil {
			return nil, err
		}
		if err := s.repo.Tracking.MarkArrived(ctx, booking.ID); err != nil {
			s.log.Warn("Failed to update tracking after completion", zap.Error(err), zap.String("booking_id", bookingID))
		}
	}

	if previous != status {
		s.notifyCustomer(ctx, booking)
	}

	s.log.Info("Job updated", zap.String("booking_id", bookingID), zap.String("status", string(status)))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetJobDetails(ctx context.Context, userID uuid.UUID, bookingID string) (*response.JobDetailsResponse, error) {
	booking, err := s.guard.forParticipant(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment")
	}
	review, err := s.repo.Review.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review")
	}
	invoice, err := s.repo.Invoice.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice")
	}

	resp := response.NewJobDetailsResponse(booking, payment, review, invoice)
	return &resp, nil
}

func (s *bookingService) GetInvoice(ctx context.Context, userID uuid.UUID, bookingID string) (*response.InvoiceResponse, error) {
	booking, err := s.guard.forParticipant(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.repo.Invoice.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice")
	}
	if invoice == nil {
		return nil, fmt.Errorf("invoice not found")
	}

	resp := response.InvoiceToResponse(invoice)
	return &resp, nil
}

// complete writes the invoice once and refreshes the professional's aggregates.
func (s *bookingService) complete(ctx context.Context, booking *entity.Booking) error {
	total, err := s.guard.amount(ctx, booking)
	if err != nil {
		return err
	}

	invoice := &entity.Invoice{
		ID:            uuid.New(),
		BookingID:     booking.ID,
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		TotalAmount:   total,
		GeneratedAt:   time.Now(),
	}

	created, err := s.repo.Invoice.CreateIfAbsent(ctx, invoice)
	if err != nil {
		s.log.Error("Failed to generate invoice", zap.Error(err), zap.String("booking_id", booking.ID.String()))
		return fmt.Errorf("failed to generate invoice")
	}
	if created {
		s.log.Info("Invoice generated",
			zap.String("booking_id", booking.ID.String()),
			zap.String("invoice_number", invoice.InvoiceNumber))
	}

	s.directory.refreshReputation(ctx, booking.ProfessionalID)

	return nil
}

func (s *bookingService) notifyCustomer(ctx context.Context, booking *entity.Booking) {
	s.notify.Notify(ctx, booking.CustomerID, fmt.Sprintf("Your booking on %s is now %s.",
		booking.BookingDate.UTC().Format(time.DateOnly), booking.Status))
}

func normalizePage(req *request.PaginatedRequest) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = 10
	}
	if req.PerPage > 100 {
		req.PerPage = 100
	}
}
