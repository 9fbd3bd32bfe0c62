package repository

import (
	"errors"

	"home-fixture/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicate wraps unique constraint violations.
var ErrDuplicate = errors.New("duplicate row")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Profile      ProfileRepository
	Category     CategoryRepository
	Service      ServiceRepository
	Professional ProfessionalRepository
	Document     DocumentRepository
	Booking      BookingRepository
	Tracking     TrackingRepository
	Payment      PaymentRepository
	Invoice      InvoiceRepository
	Review       ReviewRepository
	Complaint    ComplaintRepository
	Notification NotificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Profile:      NewProfileRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Professional: NewProfessionalRepository(db, log),
		Document:     NewDocumentRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Tracking:     NewTrackingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Invoice:      NewInvoiceRepository(db, log),
		Review:       NewReviewRepository(db, log),
		Complaint:    NewComplaintRepository(db, log),
		Notification: NewNotificationRepository(db, log),
	}
}
