package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
)

// MockTransactionManager is a mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Begin(ctx context.Context, opts repositories.TxOptions) (repositories.Transaction, error) {
	args := m.Called(ctx, opts)
	if tx := args.Get(0); tx != nil {
		return tx.(repositories.Transaction), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTransaction is a mock implementation of Transaction
type MockTransaction struct {
	mock.Mock
	ctx        context.Context
	committed  bool
	rolledback bool
}

func newMockTransaction() *MockTransaction {
	return &MockTransaction{ctx: context.WithValue(context.Background(), txMarker{}, true)}
}

type txMarker struct{}

func (m *MockTransaction) Commit() error {
	args := m.Called()
	m.committed = true
	return args.Error(0)
}

func (m *MockTransaction) Rollback() error {
	args := m.Called()
	m.rolledback = true
	return args.Error(0)
}

func (m *MockTransaction) Context() context.Context {
	return m.ctx
}

// inTx matches contexts handed out by a MockTransaction
var inTx = mock.MatchedBy(func(ctx context.Context) bool {
	v, _ := ctx.Value(txMarker{}).(bool)
	return v
})

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*models.CompanySummary, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*models.CompanySummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanyRepository) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	args := m.Called(ctx, company)
	if v := args.Get(0); v != nil {
		return v.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanyRepository) Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error) {
	args := m.Called(ctx, code, upd)
	if v := args.Get(0); v != nil {
		return v.(*models.Company), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockCompanyRepository) ListInvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.([]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanyRepository) ListIndustryNames(ctx context.Context, code string) ([]string, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) List(ctx context.Context) ([]*models.InvoiceSummary, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*models.InvoiceSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) GetDetail(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.InvoiceDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if v := args.Get(0); v != nil {
		return v.(*models.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id int64, upd models.InvoiceUpdate) (*models.Invoice, error) {
	args := m.Called(ctx, id, upd)
	if v := args.Get(0); v != nil {
		return v.(*models.Invoice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIndustryRepository is a mock implementation of IndustryRepository
type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) Create(ctx context.Context, industry *models.Industry) (*models.Industry, error) {
	args := m.Called(ctx, industry)
	if v := args.Get(0); v != nil {
		return v.(*models.Industry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIndustryRepository) GetByCode(ctx context.Context, code string) (*models.Industry, error) {
	args := m.Called(ctx, code)
	if v := args.Get(0); v != nil {
		return v.(*models.Industry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIndustryRepository) ListWithCompanies(ctx context.Context) ([]models.IndustryCompanyRow, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.IndustryCompanyRow), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIndustryRepository) Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error) {
	args := m.Called(ctx, indCode, compCode)
	if v := args.Get(0); v != nil {
		return v.(*models.CompanyIndustry), args.Error(1)
	}
	return nil, args.Error(1)
}
