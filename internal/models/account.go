package models

// Account is a read-only row of the cuentas table (chart of accounts). The
// chart is maintained by the accounts module; this core only resolves and
// scores against it.
type Account struct {
	AccountID string `db:"account_id"`
	CompanyID int64  `db:"company_id"`
	Code      string `db:"code"`
	Name      string `db:"name"`
	Activo    bool   `db:"activo"`
}
