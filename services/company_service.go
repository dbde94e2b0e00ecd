package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"github.com/upb/biztime/utils"
	"go.uber.org/zap"
)

// CompanyService handles company business logic
type CompanyService struct {
	companies repositories.CompanyRepository
	txMgr     repositories.TransactionManager
	logger    *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(companies repositories.CompanyRepository, txMgr repositories.TransactionManager, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies: companies,
		txMgr:     txMgr,
		logger:    logger,
	}
}

// List returns every company as (code, name)
func (s *CompanyService) List(ctx context.Context) ([]*models.CompanySummary, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, WrapInternal("Error listing companies.", err)
	}
	return companies, nil
}

// Get returns a company with the ids of its invoices and the names of its
// industries. The three reads share one read-only snapshot.
func (s *CompanyService) Get(ctx context.Context, code string) (*models.CompanyDetail, error) {
	return WithTransactionResult(ctx, s.txMgr, repositories.TxOptions{ReadOnly: true},
		func(ctx context.Context, _ repositories.Transaction) (*models.CompanyDetail, error) {
			company, err := s.companies.GetByCode(ctx, code)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, CompanyNotFound(code)
				}
				return nil, WrapInternal("Error retrieving company.", err)
			}

			invoiceIDs, err := s.companies.ListInvoiceIDs(ctx, code)
			if err != nil {
				return nil, WrapInternal("Error retrieving company invoices.", err)
			}

			industries, err := s.companies.ListIndustryNames(ctx, code)
			if err != nil {
				return nil, WrapInternal("Error retrieving company industries.", err)
			}

			return models.NewCompanyDetail(company, invoiceIDs, industries), nil
		})
}

// Create stores a company whose code is the slug of its name
func (s *CompanyService) Create(ctx context.Context, name, description string) (*models.Company, error) {
	code := utils.Slugify(name)
	if code == "" {
		return nil, NewDomainError(ErrorTypeValidation, "Company name must contain at least one letter or digit", nil).
			WithDetail("name", "name must contain at least one letter or digit")
	}

	created, err := s.companies.Create(ctx, &models.Company{
		Code:        code,
		Name:        name,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, NewDomainError(ErrorTypeConflict, fmt.Sprintf("Company code '%s' already exists", code), err)
		}
		return nil, WrapInternal("Error creating new company.", err)
	}
	if created == nil {
		return nil, WrapInternal("Error creating new company.", nil)
	}

	s.logger.Info("company created", zap.String("code", created.Code))
	return created, nil
}

// Update changes the name and/or description of a company. Omitted fields keep their value.
func (s *CompanyService) Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error) {
	if upd.IsEmpty() {
		return nil, NothingToUpdate()
	}

	updated, err := s.companies.Update(ctx, code, upd)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, CompanyNotFound(code)
		case errors.Is(err, repositories.ErrDuplicate) && upd.Name != nil:
			return nil, NewDomainError(ErrorTypeConflict, fmt.Sprintf("Company name '%s' already exists", *upd.Name), err)
		}
		return nil, WrapInternal("Error updating company.", err)
	}

	s.logger.Info("company updated", zap.String("code", code))
	return updated, nil
}

// Delete removes a company together with its invoices and associations
func (s *CompanyService) Delete(ctx context.Context, code string) error {
	if err := s.companies.Delete(ctx, code); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return CompanyNotFound(code)
		}
		return WrapInternal("Error deleting company.", err)
	}

	s.logger.Info("company deleted", zap.String("code", code))
	return nil
}
