package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/upb/biztime/models"
)

// withURLParams attaches chi route params to a request built outside a router
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MockCompanyService is a mock implementation of CompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) List(ctx context.Context) ([]*models.CompanySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CompanySummary), args.Error(1)
}

func (m *MockCompanyService) Get(ctx context.Context, code string) (*models.CompanyDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyDetail), args.Error(1)
}

func (m *MockCompanyService) Create(ctx context.Context, name, description string) (*models.Company, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error) {
	args := m.Called(ctx, code, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyService) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// MockInvoiceService is a mock implementation of InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context) ([]*models.InvoiceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, id int64, amt *decimal.Decimal, paid *bool) (*models.Invoice, error) {
	args := m.Called(ctx, id, amt, paid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIndustryService is a mock implementation of IndustryService
type MockIndustryService struct {
	mock.Mock
}

func (m *MockIndustryService) List(ctx context.Context) ([]*models.IndustryCompanies, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndustryCompanies), args.Error(1)
}

func (m *MockIndustryService) Create(ctx context.Context, code, industry string) (*models.Industry, error) {
	args := m.Called(ctx, code, industry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Industry), args.Error(1)
}

func (m *MockIndustryService) Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error) {
	args := m.Called(ctx, indCode, compCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompanyIndustry), args.Error(1)
}
