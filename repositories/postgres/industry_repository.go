package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"go.uber.org/zap"
)

// IndustryRepository implements the repositories.IndustryRepository interface
type IndustryRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewIndustryRepository creates a new industry repository
func NewIndustryRepository(db *DB, logger *zap.Logger) repositories.IndustryRepository {
	return &IndustryRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts an industry
func (r *IndustryRepository) Create(ctx context.Context, industry *models.Industry) (*models.Industry, error) {
	query := `
		INSERT INTO industries (code, industry)
		VALUES ($1, $2)
		RETURNING code, industry
	`

	executor := GetExecutor(ctx, r.db)
	created := &models.Industry{}

	err := executor.QueryRowContext(ctx, query, industry.Code, industry.Industry).Scan(
		&created.Code,
		&created.Industry,
	)
	if err != nil {
		return nil, wrapError("create industry", err)
	}

	r.logger.Debug("industry created", zap.String("code", created.Code))
	return created, nil
}

// GetByCode retrieves an industry by code
func (r *IndustryRepository) GetByCode(ctx context.Context, code string) (*models.Industry, error) {
	query := `SELECT code, industry FROM industries WHERE code = $1`

	executor := GetExecutor(ctx, r.db)
	industry := &models.Industry{}

	err := executor.QueryRowContext(ctx, query, code).Scan(&industry.Code, &industry.Industry)
	if err != nil {
		return nil, wrapError("get industry", err)
	}

	return industry, nil
}

// ListWithCompanies retrieves one row per (industry, company) pair, and a
// single row with a nil company for industries nobody is associated with.
func (r *IndustryRepository) ListWithCompanies(ctx context.Context) ([]models.IndustryCompanyRow, error) {
	query := `
		SELECT i.code, i.industry, c.code
		FROM industries AS i
		LEFT JOIN companies_industries AS ci
		ON i.code = ci.ind_code
		LEFT JOIN companies AS c
		ON ci.comp_code = c.code
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapError("list industries", err)
	}
	defer rows.Close()

	var result []models.IndustryCompanyRow
	for rows.Next() {
		var (
			row      models.IndustryCompanyRow
			compCode sql.NullString
		)
		if err := rows.Scan(&row.IndCode, &row.Industry, &compCode); err != nil {
			return nil, fmt.Errorf("failed to scan industry row: %w", err)
		}
		if compCode.Valid {
			code := compCode.String
			row.CompCode = &code
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating industry rows: %w", err)
	}

	return result, nil
}

// Associate links a company to an industry
func (r *IndustryRepository) Associate(ctx context.Context, indCode, compCode string) (*models.CompanyIndustry, error) {
	query := `
		INSERT INTO companies_industries (comp_code, ind_code)
		VALUES ($1, $2)
		RETURNING comp_code, ind_code
	`

	executor := GetExecutor(ctx, r.db)
	assoc := &models.CompanyIndustry{}

	err := executor.QueryRowContext(ctx, query, compCode, indCode).Scan(&assoc.CompCode, &assoc.IndCode)
	if err != nil {
		return nil, wrapError("associate company with industry", err)
	}

	r.logger.Debug("company associated with industry",
		zap.String("comp_code", assoc.CompCode),
		zap.String("ind_code", assoc.IndCode))
	return assoc, nil
}
