package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upb/biztime/middleware"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// CreateCompanyRequest represents a request to create a company
type CreateCompanyRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// UpdateCompanyRequest represents a partial update of a company.
// Omitted fields keep their stored value.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

// CompanyService defines the interface for company operations
type CompanyService interface {
	List(ctx context.Context) ([]*models.CompanySummary, error)
	Get(ctx context.Context, code string) (*models.CompanyDetail, error)
	Create(ctx context.Context, name, description string) (*models.Company, error)
	Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error)
	Delete(ctx context.Context, code string) error
}

type companyListResponse struct {
	Companies []*models.CompanySummary `json:"companies"`
}

type companyResponse struct {
	Company interface{} `json:"company"`
}

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	service CompanyService
	logger  *zap.Logger
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /companies
func (h *CompanyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, companyListResponse{Companies: companies})
}

// HandleGet handles GET /companies/{code}
func (h *CompanyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	company, err := h.service.Get(r.Context(), code)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, companyResponse{Company: company})
}

// HandleCreate handles POST /companies
func (h *CompanyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	company, err := h.service.Create(r.Context(), *req.Name, *req.Description)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug("company created",
		zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
		zap.String("code", company.Code))

	_ = utils.WriteCreated(w, companyResponse{Company: company})
}

// HandleUpdate handles PATCH /companies/{code}
func (h *CompanyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateCompanyRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	company, err := h.service.Update(r.Context(), code, models.CompanyUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, companyResponse{Company: company})
}

// HandleDelete handles DELETE /companies/{code}
func (h *CompanyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.service.Delete(r.Context(), code); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, deleted)
}
