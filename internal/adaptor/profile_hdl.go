package adaptor

import (
	"encoding/json"
	"net/http"

	"home-fixture/internal/dto/request"
	"home-fixture/internal/usecase"
	"home-fixture/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	customer      usecase.ProfileService
	professional  usecase.ProfessionalService
	maxUploadSize int64
	log           *zap.Logger
}

func NewProfileHandler(customer usecase.ProfileService, professional usecase.ProfessionalService, maxUploadSize int64, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		customer:      customer,
		professional:  professional,
		maxUploadSize: maxUploadSize,
		log:           log.With(zap.String("handler", "profile")),
	}
}

// GetCustomerProfile handles GET /api/customer/profile
func (h *ProfileHandler) GetCustomerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.customer.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateCustomerProfile handles PUT /api/customer/profile
func (h *ProfileHandler) UpdateCustomerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateCustomerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.customer.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update customer profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// GetProfessionalProfile handles GET /api/professional/profile
func (h *ProfileHandler) GetProfessionalProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.professional.GetProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get professional profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfessionalProfile handles PUT /api/professional/profile
func (h *ProfileHandler) UpdateProfessionalProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateProfessionalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.professional.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update professional profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

// ListDocuments handles GET /api/professional/documents
func (h *ProfileHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	docs, err := h.professional.ListDocuments(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list documents")
		return
	}

	utils.ResponseSuccess(w, "success", docs)
}

// UploadDocument handles POST /api/professional/documents as multipart
// with fields document_type and document_file.
func (h *ProfileHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.log.Warn("Invalid upload", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid multipart form or file too large", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("document_file")
	if err != nil {
		utils.ResponseBadRequest(w, "document_file is required", nil)
		return
	}
	defer file.Close()

	req := &request.UploadDocumentRequest{DocumentType: r.FormValue("document_type")}

	doc, err := h.professional.UploadDocument(r.Context(), userID, req, header.Filename, file)
	if err != nil {
		handleServiceError(w, h.log, err, "upload document")
		return
	}

	utils.ResponseCreated(w, "Document uploaded", doc)
}
