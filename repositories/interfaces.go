package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/upb/biztime/models"
)

// TxOptions configures a transaction started by a TransactionManager
type TxOptions struct {
	// ReadOnly requests a read-only snapshot; writes inside it fail.
	ReadOnly bool
}

// TransactionManager starts database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context, opts TxOptions) (Transaction, error)
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns a context bound to the transaction. Repository
	// calls made with it run inside the transaction.
	Context() context.Context
}

// CompanyRepository handles company data operations
type CompanyRepository interface {
	// List retrieves every company in store order
	List(ctx context.Context) ([]*models.CompanySummary, error)

	// GetByCode retrieves a company by code
	GetByCode(ctx context.Context, code string) (*models.Company, error)

	// Create inserts a company and returns the stored row
	Create(ctx context.Context, company *models.Company) (*models.Company, error)

	// Update applies the non-nil fields of upd and returns the stored row
	Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error)

	// Delete deletes a company
	Delete(ctx context.Context, code string) error

	// ListInvoiceIDs retrieves the ids of the company's invoices
	ListInvoiceIDs(ctx context.Context, code string) ([]int64, error)

	// ListIndustryNames retrieves the display names of the company's industries
	ListIndustryNames(ctx context.Context, code string) ([]string, error)
}

// InvoiceRepository handles invoice data operations
type InvoiceRepository interface {
	// List retrieves every invoice as (id, comp_code)
	List(ctx context.Context) ([]*models.InvoiceSummary, error)

	// GetDetail retrieves an invoice joined with its company
	GetDetail(ctx context.Context, id int64) (*models.InvoiceDetail, error)

	// Create inserts an unpaid invoice and returns the stored row
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error)

	// Update applies upd and returns the stored row
	Update(ctx context.Context, id int64, upd models.InvoiceUpdate) (*models.Invoice, error)

	// Delete deletes an invoice
	Delete(ctx context.Context, id int64) error
}

// IndustryRepository handles industry and association data operations
type IndustryRepository interface {
	// Create inserts an industry and returns the stored row
	Create(ctx context.Context, industry *models.Industry) (*models.Industry, error)

	// GetByCode retrieves an industry by code
	GetByCode(ctx context.Context, code string) (*models.Industry, error)

	// ListWithCompanies retrieves the industries left-joined with their companies
	ListWithCompanies(ctx context.Context) ([]models.IndustryCompanyRow, error)

	// Associate links a company to an industry and returns the stored row
	Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error)
}

// Repositories aggregates all repository interfaces
type Repositories struct {
	Companies  CompanyRepository
	Invoices   InvoiceRepository
	Industries IndustryRepository
}
