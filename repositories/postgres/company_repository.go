package postgres

import (
	"context"
	"fmt"

	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"go.uber.org/zap"
)

// CompanyRepository implements the repositories.CompanyRepository interface
type CompanyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *DB, logger *zap.Logger) repositories.CompanyRepository {
	return &CompanyRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves every company
func (r *CompanyRepository) List(ctx context.Context) ([]*models.CompanySummary, error) {
	query := `SELECT code, name FROM companies`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapError("list companies", err)
	}
	defer rows.Close()

	companies := []*models.CompanySummary{}
	for rows.Next() {
		company := &models.CompanySummary{}
		if err := rows.Scan(&company.Code, &company.Name); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// GetByCode retrieves a company by code
func (r *CompanyRepository) GetByCode(ctx context.Context, code string) (*models.Company, error) {
	query := `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`

	executor := GetExecutor(ctx, r.db)
	company := &models.Company{}

	err := executor.QueryRowContext(ctx, query, code).Scan(
		&company.Code,
		&company.Name,
		&company.Description,
	)
	if err != nil {
		return nil, wrapError("get company", err)
	}

	return company, nil
}

// Create inserts a company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`

	executor := GetExecutor(ctx, r.db)
	created := &models.Company{}

	err := executor.QueryRowContext(ctx, query,
		company.Code,
		company.Name,
		company.Description,
	).Scan(
		&created.Code,
		&created.Name,
		&created.Description,
	)
	if err != nil {
		return nil, wrapError("create company", err)
	}

	r.logger.Debug("company created", zap.String("code", created.Code))
	return created, nil
}

// Update overwrites the fields set in upd; nil fields keep their stored value
func (r *CompanyRepository) Update(ctx context.Context, code string, upd models.CompanyUpdate) (*models.Company, error) {
	query := `
		UPDATE companies
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description)
		WHERE code = $1
		RETURNING code, name, description
	`

	executor := GetExecutor(ctx, r.db)
	updated := &models.Company{}

	err := executor.QueryRowContext(ctx, query, code, upd.Name, upd.Description).Scan(
		&updated.Code,
		&updated.Name,
		&updated.Description,
	)
	if err != nil {
		return nil, wrapError("update company", err)
	}

	r.logger.Debug("company updated", zap.String("code", code))
	return updated, nil
}

// Delete deletes a company; its invoices and associations cascade
func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	query := `DELETE FROM companies WHERE code = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, code)
	if err != nil {
		return wrapError("delete company", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("company %q: %w", code, repositories.ErrNotFound)
	}

	r.logger.Debug("company deleted", zap.String("code", code))
	return nil
}

// ListInvoiceIDs retrieves the ids of the invoices billed to a company
func (r *CompanyRepository) ListInvoiceIDs(ctx context.Context, code string) ([]int64, error) {
	query := `SELECT id FROM invoices WHERE comp_code = $1`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, code)
	if err != nil {
		return nil, wrapError("list company invoices", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return ids, nil
}

// ListIndustryNames retrieves the display names of a company's industries
func (r *CompanyRepository) ListIndustryNames(ctx context.Context, code string) ([]string, error) {
	query := `
		SELECT i.industry
		FROM industries AS i
		INNER JOIN companies_industries AS ci
		ON i.code = ci.ind_code
		WHERE ci.comp_code = $1
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, code)
	if err != nil {
		return nil, wrapError("list company industries", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan industry name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industry rows: %w", err)
	}

	return names, nil
}
