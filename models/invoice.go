package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// amt is emitted as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// Invoice is a row of the invoices table.
// PaidDate is non-nil exactly when Paid is true.
type Invoice struct {
	ID       int64           `json:"id" db:"id"`
	CompCode string          `json:"comp_code" db:"comp_code"`
	Amt      decimal.Decimal `json:"amt" db:"amt"`
	Paid     bool            `json:"paid" db:"paid"`
	AddDate  time.Time       `json:"add_date" db:"add_date"`
	PaidDate *time.Time      `json:"paid_date" db:"paid_date"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceSummary is the listing shape of an invoice
type InvoiceSummary struct {
	ID       int64  `json:"id" db:"id"`
	CompCode string `json:"comp_code" db:"comp_code"`
}

// InvoiceDetail embeds the owning company in place of comp_code
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  Company         `json:"company"`
}

// InvoiceUpdate describes a PATCH. A nil Amt keeps the stored amount.
// When SetPaid is false, Paid and PaidDate are left untouched.
type InvoiceUpdate struct {
	Amt      *decimal.Decimal
	SetPaid  bool
	Paid     bool
	PaidDate *time.Time
}

// NewInvoiceUpdate derives paid_date from paid: now when paid, nil otherwise
func NewInvoiceUpdate(amt *decimal.Decimal, paid *bool, now time.Time) InvoiceUpdate {
	upd := InvoiceUpdate{Amt: amt}
	if paid == nil {
		return upd
	}
	upd.SetPaid = true
	upd.Paid = *paid
	if *paid {
		upd.PaidDate = &now
	}
	return upd
}
