package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// CreateIndustryRequest represents a request to create an industry
type CreateIndustryRequest struct {
	Code     *string `json:"code" validate:"required,min=1"`
	Industry *string `json:"industry" validate:"required"`
}

// AssociateCompanyRequest represents a request to link a company to an industry
type AssociateCompanyRequest struct {
	CompCode *string `json:"comp_code" validate:"required,min=1"`
}

// IndustryService defines the interface for industry operations
type IndustryService interface {
	List(ctx context.Context) ([]*models.IndustryCompanies, error)
	Create(ctx context.Context, code, industry string) (*models.Industry, error)
	Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error)
}

type industryListResponse struct {
	Industries []*models.IndustryCompanies `json:"industries"`
}

type industryResponse struct {
	Industry *models.Industry `json:"industry"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// IndustryHandler handles industry-related HTTP requests
type IndustryHandler struct {
	service IndustryService
	logger  *zap.Logger
}

// NewIndustryHandler creates a new IndustryHandler
func NewIndustryHandler(service IndustryService, logger *zap.Logger) *IndustryHandler {
	return &IndustryHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /industries
func (h *IndustryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	industries, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, industryListResponse{Industries: industries})
}

// HandleCreate handles POST /industries
func (h *IndustryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	industry, err := h.service.Create(r.Context(), *req.Code, *req.Industry)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, industryResponse{Industry: industry})
}

// HandleAssociate handles POST /industries/{code}/companies
func (h *IndustryHandler) HandleAssociate(w http.ResponseWriter, r *http.Request) {
	indCode := chi.URLParam(r, "code")

	var req AssociateCompanyRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	assoc, err := h.service.Associate(r.Context(), indCode, *req.CompCode)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteCreated(w, messageResponse{
		Message: fmt.Sprintf("Associated %s with %s", assoc.CompCode, assoc.IndCode),
	})
}
