package models

// AccountTypeMapping is a row of the mapeos table. A partial unique index on
// (company_id, tipo_cuenta) WHERE activo enforces at most one active mapping.
type AccountTypeMapping struct {
	MappingID  string            `db:"mapping_id"`
	CompanyID  int64             `db:"company_id"`
	TipoCuenta string            `db:"tipo_cuenta"`
	AccountID  string            `db:"account_id"`
	Config     map[string]string `db:"config"`
	Activo     bool              `db:"activo"`
	AuditFields
}
