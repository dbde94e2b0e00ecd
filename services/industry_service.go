package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"go.uber.org/zap"
)

// IndustryService handles industries and company associations
type IndustryService struct {
	industries repositories.IndustryRepository
	companies  repositories.CompanyRepository
	txMgr      repositories.TransactionManager
	logger     *zap.Logger
}

// NewIndustryService creates a new industry service
func NewIndustryService(
	industries repositories.IndustryRepository,
	companies repositories.CompanyRepository,
	txMgr repositories.TransactionManager,
	logger *zap.Logger,
) *IndustryService {
	return &IndustryService{
		industries: industries,
		companies:  companies,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// List returns every industry with the codes of its companies,
// in the order the store first returns each industry.
func (s *IndustryService) List(ctx context.Context) ([]*models.IndustryCompanies, error) {
	rows, err := s.industries.ListWithCompanies(ctx)
	if err != nil {
		return nil, WrapInternal("Error listing industries.", err)
	}
	return models.GroupIndustryRows(rows), nil
}

// Create stores an industry
func (s *IndustryService) Create(ctx context.Context, code, industry string) (*models.Industry, error) {
	created, err := s.industries.Create(ctx, &models.Industry{Code: code, Industry: industry})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, NewDomainError(ErrorTypeConflict, fmt.Sprintf("Industry code '%s' already exists", code), err)
		}
		return nil, WrapInternal("Error creating new industry.", err)
	}
	if created == nil {
		return nil, WrapInternal("Error creating new industry.", nil)
	}

	s.logger.Info("industry created", zap.String("code", created.Code))
	return created, nil
}

// Associate links company compCode to industry indCode
func (s *IndustryService) Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error) {
	assoc, err := WithTransactionResult(ctx, s.txMgr, repositories.TxOptions{},
		func(ctx context.Context, _ repositories.Transaction) (*models.CompanyIndustry, error) {
			if _, err := s.industries.GetByCode(ctx, indCode); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, IndustryNotFound(indCode)
				}
				return nil, WrapInternal("Error retrieving industry.", err)
			}

			if _, err := s.companies.GetByCode(ctx, compCode); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, CompanyNotFound(compCode)
				}
				return nil, WrapInternal("Error retrieving company.", err)
			}

			assoc, err := s.industries.Associate(ctx, indCode, compCode)
			if err != nil {
				switch {
				case errors.Is(err, repositories.ErrDuplicate):
					return nil, NewDomainError(ErrorTypeConflict,
						fmt.Sprintf("Company '%s' is already associated with industry '%s'", compCode, indCode), err)
				case errors.Is(err, repositories.ErrForeignKey):
					return nil, NewDomainError(ErrorTypeNotFound,
						"Error creating new association. Check company code and industry code.", err)
				}
				return nil, WrapInternal("Error creating new association.", err)
			}
			if assoc == nil {
				return nil, NewDomainError(ErrorTypeNotFound,
					"Error creating new association. Check company code and industry code.", nil)
			}
			return assoc, nil
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("company associated with industry",
		zap.String("comp_code", assoc.CompCode),
		zap.String("ind_code", assoc.IndCode))
	return assoc, nil
}
