package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"go.uber.org/zap"
)

// InvoiceService handles invoice business logic
type InvoiceService struct {
	invoices repositories.InvoiceRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoices repositories.InvoiceRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// List returns every invoice as (id, comp_code)
func (s *InvoiceService) List(ctx context.Context) ([]*models.InvoiceSummary, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, WrapInternal("Error listing invoices.", err)
	}
	return invoices, nil
}

// Get returns an invoice with its company embedded
func (s *InvoiceService) Get(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	detail, err := s.invoices.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, InvoiceNotFound(formatID(id))
		}
		return nil, WrapInternal("Error retrieving invoice.", err)
	}
	return detail, nil
}

// Create stores an unpaid invoice billed to compCode
func (s *InvoiceService) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error) {
	if !amt.IsPositive() {
		return nil, NewDomainError(ErrorTypeValidation, "Invoice amount must be greater than 0", nil).
			WithDetail("amt", "amt must be greater than 0")
	}

	created, err := s.invoices.Create(ctx, compCode, amt)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrForeignKey):
			return nil, CompanyNotFound(compCode)
		case errors.Is(err, repositories.ErrInvalidValue):
			return nil, NewDomainError(ErrorTypeValidation, "Invoice amount is out of range", err)
		}
		return nil, WrapInternal("Error creating new invoice.", err)
	}
	if created == nil {
		return nil, WrapInternal("Error creating new invoice.", nil)
	}

	s.logger.Info("invoice created",
		zap.Int64("id", created.ID),
		zap.String("comp_code", created.CompCode))
	return created, nil
}

// Update changes the amount and/or payment state of an invoice.
// Paying stamps paid_date with the current time; unpaying clears it.
// When paid is nil the payment state is left as stored.
func (s *InvoiceService) Update(ctx context.Context, id int64, amt *decimal.Decimal, paid *bool) (*models.Invoice, error) {
	if amt == nil && paid == nil {
		return nil, NothingToUpdate()
	}
	if amt != nil && !amt.IsPositive() {
		return nil, NewDomainError(ErrorTypeValidation, "Invoice amount must be greater than 0", nil).
			WithDetail("amt", "amt must be greater than 0")
	}

	updated, err := s.invoices.Update(ctx, id, models.NewInvoiceUpdate(amt, paid, s.now()))
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, InvoiceNotFound(formatID(id))
		case errors.Is(err, repositories.ErrInvalidValue):
			return nil, NewDomainError(ErrorTypeValidation, "Invalid invoice update", err)
		}
		return nil, WrapInternal("Error updating invoice.", err)
	}

	s.logger.Info("invoice updated",
		zap.Int64("id", id),
		zap.Bool("paid", updated.Paid))
	return updated, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	if err := s.invoices.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return InvoiceNotFound(formatID(id))
		}
		return WrapInternal("Error deleting invoice.", err)
	}

	s.logger.Info("invoice deleted", zap.Int64("id", id))
	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
