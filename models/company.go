package models

// Company is a row of the companies table.
// Code is derived from Name at creation and never changes afterwards.
type Company struct {
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// CompanySummary is the listing shape of a company (no description)
type CompanySummary struct {
	Code string `json:"code" db:"code"`
	Name string `json:"name" db:"name"`
}

// CompanyDetail is a company together with its invoice ids and industry names
type CompanyDetail struct {
	Company
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industries"`
}

// NewCompanyDetail builds a detail record, normalizing nil lists to empty ones
func NewCompanyDetail(company *Company, invoiceIDs []int64, industries []string) *CompanyDetail {
	if invoiceIDs == nil {
		invoiceIDs = []int64{}
	}
	if industries == nil {
		industries = []string{}
	}
	return &CompanyDetail{
		Company:    *company,
		Invoices:   invoiceIDs,
		Industries: industries,
	}
}

// CompanyUpdate carries the mutable company fields; nil leaves a field unchanged
type CompanyUpdate struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the update touches no field
func (u CompanyUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}
