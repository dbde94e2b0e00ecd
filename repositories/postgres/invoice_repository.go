package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/upb/biztime/models"
	"github.com/upb/biztime/repositories"
	"go.uber.org/zap"
)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// InvoiceRepository implements the repositories.InvoiceRepository interface
type InvoiceRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *DB, logger *zap.Logger) repositories.InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// List retrieves every invoice as (id, comp_code)
func (r *InvoiceRepository) List(ctx context.Context) ([]*models.InvoiceSummary, error) {
	query := `SELECT id, comp_code FROM invoices`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapError("list invoices", err)
	}
	defer rows.Close()

	invoices := []*models.InvoiceSummary{}
	for rows.Next() {
		inv := &models.InvoiceSummary{}
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	return invoices, nil
}

// GetDetail retrieves an invoice joined with the company it is billed to
func (r *InvoiceRepository) GetDetail(ctx context.Context, id int64) (*models.InvoiceDetail, error) {
	query := `
		SELECT i.id, i.amt, i.paid, i.add_date, i.paid_date, c.code, c.name, c.description
		FROM invoices AS i
		INNER JOIN companies AS c
		ON i.comp_code = c.code
		WHERE i.id = $1
	`

	executor := GetExecutor(ctx, r.db)
	detail := &models.InvoiceDetail{}
	var paidDate sql.NullTime

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Amt,
		&detail.Paid,
		&detail.AddDate,
		&paidDate,
		&detail.Company.Code,
		&detail.Company.Name,
		&detail.Company.Description,
	)
	if err != nil {
		return nil, wrapError("get invoice", err)
	}

	if paidDate.Valid {
		detail.PaidDate = &paidDate.Time
	}
	return detail, nil
}

// Create inserts an unpaid invoice; id and add_date are assigned by the database
func (r *InvoiceRepository) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*models.Invoice, error) {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING ` + invoiceColumns

	executor := GetExecutor(ctx, r.db)
	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, compCode, amt))
	if err != nil {
		return nil, wrapError("create invoice", err)
	}

	r.logger.Debug("invoice created", zap.Int64("id", inv.ID), zap.String("comp_code", inv.CompCode))
	return inv, nil
}

// Update applies upd. Only the columns upd asks for are written.
func (r *InvoiceRepository) Update(ctx context.Context, id int64, upd models.InvoiceUpdate) (*models.Invoice, error) {
	var (
		query string
		args  []interface{}
	)

	switch {
	case upd.SetPaid && upd.Amt != nil:
		query = `UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1 RETURNING ` + invoiceColumns
		args = []interface{}{id, *upd.Amt, upd.Paid, upd.PaidDate}
	case upd.SetPaid:
		query = `UPDATE invoices SET paid = $2, paid_date = $3 WHERE id = $1 RETURNING ` + invoiceColumns
		args = []interface{}{id, upd.Paid, upd.PaidDate}
	case upd.Amt != nil:
		query = `UPDATE invoices SET amt = $2 WHERE id = $1 RETURNING ` + invoiceColumns
		args = []interface{}{id, *upd.Amt}
	default:
		return nil, fmt.Errorf("update invoice %d: nothing to update: %w", id, repositories.ErrInvalidValue)
	}

	executor := GetExecutor(ctx, r.db)
	inv, err := scanInvoice(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapError("update invoice", err)
	}

	r.logger.Debug("invoice updated", zap.Int64("id", id), zap.Bool("paid", inv.Paid))
	return inv, nil
}

// Delete deletes an invoice
func (r *InvoiceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invoices WHERE id = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return wrapError("delete invoice", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("invoice %d: %w", id, repositories.ErrNotFound)
	}

	r.logger.Debug("invoice deleted", zap.Int64("id", id))
	return nil
}

func scanInvoice(row *sql.Row) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var paidDate sql.NullTime

	err := row.Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&paidDate,
	)
	if err != nil {
		return nil, err
	}

	if paidDate.Valid {
		inv.PaidDate = &paidDate.Time
	}
	return inv, nil
}
