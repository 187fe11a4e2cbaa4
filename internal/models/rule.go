package models

// Rule is a row of the reglas table. Config is stored as JSONB.
type Rule struct {
	RuleID     string            `db:"rule_id"`
	EventID    string            `db:"event_id"`
	CompanyID  int64             `db:"company_id"`
	Condicion  string            `db:"condicion"`
	Lado       string            `db:"lado"`
	TipoCuenta string            `db:"tipo_cuenta"`
	TipoMonto  string            `db:"tipo_monto"`
	Orden      int               `db:"orden"`
	Config     map[string]string `db:"config"`
	Activo     bool              `db:"activo"`
	AuditFields
}
