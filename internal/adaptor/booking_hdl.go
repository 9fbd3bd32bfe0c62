package adaptor

import (
	"encoding/json"
	"net/http"

	"home-fixture/internal/dto/request"
	"home-fixture/internal/usecase"
	"home-fixture/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/book/{proID} (customer)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, chi.URLParam(r, "proID"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// ListCustomerBookings handles GET /api/bookings/customer (customer)
func (h *BookingHandler) ListCustomerBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListCustomerBookings(r.Context(), userID, pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list customer bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ListProfessionalBookings handles GET /api/bookings/professional (professional)
func (h *BookingHandler) ListProfessionalBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListProfessionalBookings(r.Context(), userID, pageRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list professional bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PUT /api/bookings/{id}/status/{status} and the
// link-style GET /api/bookings/update/{id}/{status} (professional)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), userID, chi.URLParam(r, "id"), chi.URLParam(r, "status"))
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// UpdateJob handles PUT /api/bookings/{id}/job (professional)
func (h *BookingHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateJob(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update job")
		return
	}

	utils.ResponseSuccess(w, "Job updated", booking)
}

// GetJobDetails handles GET /api/bookings/{id}/details
func (h *BookingHandler) GetJobDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	details, err := h.service.GetJobDetails(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get job details")
		return
	}

	utils.ResponseSuccess(w, "success", details)
}

// GetInvoice handles GET /api/bookings/{id}/invoice
func (h *BookingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	invoice, err := h.service.GetInvoice(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get invoice")
		return
	}

	utils.ResponseSuccess(w, "success", invoice)
}

func pageRequest(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
