package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/upb/biztime/middleware"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/services"
	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// CreateInvoiceRequest represents a request to create an invoice.
// amt accepts a JSON number or a numeric string.
type CreateInvoiceRequest struct {
	CompCode *string          `json:"comp_code" validate:"required,min=1"`
	Amt      *decimal.Decimal `json:"amt" validate:"required,gt=0"`
}

// UpdateInvoiceRequest represents a partial update of an invoice
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" validate:"omitempty,gt=0"`
	Paid *bool            `json:"paid"`
}

// InvoiceService defines the interface for invoice operations
type InvoiceService interface {
	List(ctx context.Context) ([]*models.InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*models.InvoiceDetail, error)
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error)
	Update(ctx context.Context, id int64, amt *decimal.Decimal, paid *bool) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type invoiceListResponse struct {
	Invoices []*models.InvoiceSummary `json:"invoices"`
}

type invoiceResponse struct {
	Invoice interface{} `json:"invoice"`
}

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	service InvoiceService
	logger  *zap.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(service InvoiceService, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /invoices
func (h *InvoiceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, invoiceListResponse{Invoices: invoices})
}

// HandleGet handles GET /invoices/{id}
func (h *InvoiceHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	invoice, err := h.service.Get(r.Context(), id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, invoiceResponse{Invoice: invoice})
}

// HandleCreate handles POST /invoices
func (h *InvoiceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	invoice, err := h.service.Create(r.Context(), *req.CompCode, *req.Amt)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug("invoice created",
		zap.String("request_id", middleware.GetRequestIDFromContext(r.Context())),
		zap.Int64("id", invoice.ID))

	_ = utils.WriteCreated(w, invoiceResponse{Invoice: invoice})
}

// HandleUpdate handles PATCH /invoices/{id}
func (h *InvoiceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	var req UpdateInvoiceRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	invoice, err := h.service.Update(r.Context(), id, req.Amt, req.Paid)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, invoiceResponse{Invoice: invoice})
}

// HandleDelete handles DELETE /invoices/{id}
func (h *InvoiceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, deleted)
}

// invoiceID parses the {id} URL param. An id that is not an integer, or
// falls outside the int4 range of invoices.id, cannot match any invoice
// and is answered with the usual 404.
func (h *InvoiceHandler) invoiceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		HandleServiceError(w, services.InvoiceNotFound(raw), h.logger)
		return 0, false
	}
	return id, true
}
