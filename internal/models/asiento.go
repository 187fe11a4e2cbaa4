package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asiento is a row of the asientos table, the journal-entry header the ledger
// store writes in PERSIST mode.
type Asiento struct {
	AsientoID  int64           `db:"asiento_id"`
	CompanyID  int64           `db:"company_id"`
	EventoTipo string          `db:"evento_tipo"`
	Fecha      time.Time       `db:"fecha"`
	Glosa      string          `db:"glosa"`
	TotalDebe  decimal.Decimal `db:"total_debe"`
	TotalHaber decimal.Decimal `db:"total_haber"`
	CreatedAt  time.Time       `db:"created_at"`
	CreatedBy  string          `db:"created_by"`
}

// AsientoLinea is a row of the asiento_lineas table.
type AsientoLinea struct {
	LineaID   int64           `db:"linea_id"`
	AsientoID int64           `db:"asiento_id"`
	AccountID string          `db:"account_id"`
	Lado      string          `db:"lado"`
	Monto     decimal.Decimal `db:"monto"`
	Memo      string          `db:"memo"`
	Orden     int             `db:"orden"`
}

// Periodo is a row of the periodos table. The ledger store refuses to persist
// into a closed period.
type Periodo struct {
	PeriodoID   int64     `db:"periodo_id"`
	CompanyID   int64     `db:"company_id"`
	FechaInicio time.Time `db:"fecha_inicio"`
	FechaFin    time.Time `db:"fecha_fin"`
	Cerrado     bool      `db:"cerrado"`
}
