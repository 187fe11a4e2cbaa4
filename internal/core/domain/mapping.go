package domain

// AccountTypeMapping resolves an abstract account-type code (CAJA,
// PROVEEDORES, ...) to a concrete ledger account for one company. At most one
// active mapping may exist per (company, tipoCuenta).
type AccountTypeMapping struct {
	MappingID  string            `json:"mappingID"`
	CompanyID  int64             `json:"companyID"`
	TipoCuenta string            `json:"tipoCuenta"`
	AccountID  string            `json:"accountID"`
	Config     map[string]string `json:"config"`
	Activo     bool              `json:"activo"`
	AuditFields
}

// MappingSuggestion is a confidence-scored candidate account for an unmapped
// account type. Score is in [0,100].
type MappingSuggestion struct {
	AccountID   string `json:"accountID"`
	AccountCode string `json:"accountCode"`
	AccountName string `json:"accountName"`
	Score       int    `json:"score"`
}
