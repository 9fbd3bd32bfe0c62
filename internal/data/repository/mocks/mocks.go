// Package mocks holds testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"home-fixture/internal/data/entity"
	"home-fixture/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// New returns a Repository whose fields are all fresh mocks.
func New() (*repository.Repository, *Set) {
	set := &Set{
		User:         new(UserRepository),
		Session:      new(SessionRepository),
		Profile:      new(ProfileRepository),
		Category:     new(CategoryRepository),
		Service:      new(ServiceRepository),
		Professional: new(ProfessionalRepository),
		Document:     new(DocumentRepository),
		Booking:      new(BookingRepository),
		Tracking:     new(TrackingRepository),
		Payment:      new(PaymentRepository),
		Invoice:      new(InvoiceRepository),
		Review:       new(ReviewRepository),
		Complaint:    new(ComplaintRepository),
		Notification: new(NotificationRepository),
	}

	return &repository.Repository{
		User:         set.User,
		Session:      set.Session,
		Profile:      set.Profile,
		Category:     set.Category,
		Service:      set.Service,
		Professional: set.Professional,
		Document:     set.Document,
		Booking:      set.Booking,
		Tracking:     set.Tracking,
		Payment:      set.Payment,
		Invoice:      set.Invoice,
		Review:       set.Review,
		Complaint:    set.Complaint,
		Notification: set.Notification,
	}, set
}

// Set exposes the concrete mocks behind a Repository built by New.
type Set struct {
	User         *UserRepository
	Session      *SessionRepository
	Profile      *ProfileRepository
	Category     *CategoryRepository
	Service      *ServiceRepository
	Professional *ProfessionalRepository
	Document     *DocumentRepository
	Booking      *BookingRepository
	Tracking     *TrackingRepository
	Payment      *PaymentRepository
	Invoice      *InvoiceRepository
	Review       *ReviewRepository
	Complaint    *ComplaintRepository
	Notification *NotificationRepository
}

// AssertExpectations checks every mock in the set.
func (s *Set) AssertExpectations(t mock.TestingT) {
	mock.AssertExpectationsForObjects(t,
		s.User, s.Session, s.Profile, s.Category, s.Service, s.Professional, s.Document,
		s.Booking, s.Tracking, s.Payment, s.Invoice, s.Review, s.Complaint, s.Notification,
	)
}

func ptr[T any](args mock.Arguments, i int) *T {
	if v := args.Get(i); v != nil {
		return v.(*T)
	}
	return nil
}

func slice[T any](args mock.Arguments, i int) []*T {
	if v := args.Get(i); v != nil {
		return v.([]*T)
	}
	return nil
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	return ptr[entity.User](args, 0), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	return ptr[entity.User](args, 0), args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	return ptr[entity.User](args, 0), args.Error(1)
}

type SessionRepository struct{ mock.Mock }

func (m *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	args := m.Called(ctx, token)
	return ptr[entity.Session](args, 0), args.Error(1)
}

func (m *SessionRepository) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type ProfileRepository struct{ mock.Mock }

func (m *ProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	return ptr[entity.UserProfile](args, 0), args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type CategoryRepository struct{ mock.Mock }

func (m *CategoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	return slice[entity.Category](args, 0), args.Error(1)
}

func (m *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	return ptr[entity.Category](args, 0), args.Error(1)
}

type ServiceRepository struct{ mock.Mock }

func (m *ServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	return ptr[entity.Service](args, 0), args.Error(1)
}

func (m *ServiceRepository) FindActive(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	return slice[entity.Service](args, 0), args.Error(1)
}

func (m *ServiceRepository) Search(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error) {
	args := m.Called(ctx, filter)
	return slice[entity.Service](args, 0), args.Error(1)
}

type ProfessionalRepository struct{ mock.Mock }

func (m *ProfessionalRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.Professional, error) {
	args := m.Called(ctx, userID)
	return ptr[entity.Professional](args, 0), args.Error(1)
}

func (m *ProfessionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Professional, error) {
	args := m.Called(ctx, id)
	return ptr[entity.Professional](args, 0), args.Error(1)
}

func (m *ProfessionalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Professional, error) {
	args := m.Called(ctx, userID)
	return ptr[entity.Professional](args, 0), args.Error(1)
}

func (m *ProfessionalRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Professional, error) {
	args := m.Called(ctx, categoryID)
	return slice[entity.Professional](args, 0), args.Error(1)
}

func (m *ProfessionalRepository) FindTop(ctx context.Context, limit uint) ([]*entity.Professional, error) {
	args := m.Called(ctx, limit)
	return slice[entity.Professional](args, 0), args.Error(1)
}

func (m *ProfessionalRepository) Update(ctx context.Context, pro *entity.Professional) error {
	return m.Called(ctx, pro).Error(0)
}

func (m *ProfessionalRepository) RefreshReputation(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type DocumentRepository struct{ mock.Mock }

func (m *DocumentRepository) Create(ctx context.Context, doc *entity.ProfessionalDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *DocumentRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID) ([]*entity.ProfessionalDocument, error) {
	args := m.Called(ctx, professionalID)
	return slice[entity.ProfessionalDocument](args, 0), args.Error(1)
}

type BookingRepository struct{ mock.Mock }

func (m *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	return ptr[entity.Booking](args, 0), args.Error(1)
}

func (m *BookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, customerID, limit, offset)
	return slice[entity.Booking](args, 0), args.Error(1)
}

func (m *BookingRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) FindByProfessionalID(ctx context.Context, professionalID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, professionalID, limit, offset)
	return slice[entity.Booking](args, 0), args.Error(1)
}

func (m *BookingRepository) CountByProfessionalID(ctx context.Context, professionalID uuid.UUID) (int64, error) {
	args := m.Called(ctx, professionalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *BookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	return m.Called(ctx, bookingID, status).Error(0)
}

func (m *BookingRepository) ExistsPendingDuplicate(ctx context.Context, booking *entity.Booking) (bool, error) {
	args := m.Called(ctx, booking)
	return args.Bool(0), args.Error(1)
}

type TrackingRepository struct{ mock.Mock }

func (m *TrackingRepository) GetOrCreate(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error) {
	args := m.Called(ctx, bookingID)
	return ptr[entity.JobTracking](args, 0), args.Error(1)
}

func (m *TrackingRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.JobTracking, error) {
	args := m.Called(ctx, bookingID)
	return ptr[entity.JobTracking](args, 0), args.Error(1)
}

func (m *TrackingRepository) Upsert(ctx context.Context, tracking *entity.JobTracking) error {
	return m.Called(ctx, tracking).Error(0)
}

func (m *TrackingRepository) MarkArrived(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

type PaymentRepository struct{ mock.Mock }

func (m *PaymentRepository) GetOrCreate(ctx context.Context, bookingID uuid.UUID, amount float64) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID, amount)
	return ptr[entity.Payment](args, 0), args.Error(1)
}

func (m *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, bookingID)
	return ptr[entity.Payment](args, 0), args.Error(1)
}

func (m *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type InvoiceRepository struct{ mock.Mock }

func (m *InvoiceRepository) CreateIfAbsent(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	args := m.Called(ctx, invoice)
	return args.Bool(0), args.Error(1)
}

func (m *InvoiceRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, bookingID)
	return ptr[entity.Invoice](args, 0), args.Error(1)
}

type ReviewRepository struct{ mock.Mock }

func (m *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *ReviewRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, bookingID)
	return ptr[entity.Review](args, 0), args.Error(1)
}

type ComplaintRepository struct{ mock.Mock }

func (m *ComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	return m.Called(ctx, complaint).Error(0)
}

func (m *ComplaintRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Complaint, error) {
	args := m.Called(ctx, bookingID)
	return slice[entity.Complaint](args, 0), args.Error(1)
}

type NotificationRepository struct{ mock.Mock }

func (m *NotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *NotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error) {
	args := m.Called(ctx, userID, limit)
	return slice[entity.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	return m.Called(ctx, userID, ids).Error(0)
}
