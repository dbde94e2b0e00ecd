package models

// Industry is a row of the industries table
type Industry struct {
	Code     string `json:"code" db:"code"`
	Industry string `json:"industry" db:"industry"`
}

// TableName returns the table name for the Industry model
func (Industry) TableName() string {
	return "industries"
}

// CompanyIndustry is one association row linking a company to an industry
type CompanyIndustry struct {
	CompCode string `json:"comp_code" db:"comp_code"`
	IndCode  string `json:"ind_code" db:"ind_code"`
}

// TableName returns the table name for the CompanyIndustry model
func (CompanyIndustry) TableName() string {
	return "companies_industries"
}

// IndustryCompanyRow is one row of the industries ⟕ associations ⟕ companies join.
// CompCode is nil for an industry without companies.
type IndustryCompanyRow struct {
	IndCode  string
	Industry string
	CompCode *string
}

// IndustryCompanies is an industry with the codes of its companies
type IndustryCompanies struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	Companies []string `json:"companies"`
}

// GroupIndustryRows folds join rows into one entry per industry code,
// keeping the order in which each code first appears.
func GroupIndustryRows(rows []IndustryCompanyRow) []*IndustryCompanies {
	grouped := make([]*IndustryCompanies, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.IndCode]
		if !ok {
			i = len(grouped)
			index[row.IndCode] = i
			grouped = append(grouped, &IndustryCompanies{
				Code:      row.IndCode,
				Industry:  row.Industry,
				Companies: []string{},
			})
		}
		if row.CompCode != nil {
			grouped[i].Companies = append(grouped[i].Companies, *row.CompCode)
		}
	}

	return grouped
}
