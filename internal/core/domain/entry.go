package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerationMode selects whether a generated entry is only returned for
// inspection or handed to the ledger store.
type GenerationMode string

const (
	ModeSimulate GenerationMode = "SIMULATE"
	ModePersist  GenerationMode = "PERSIST"
)

// BalanceTolerance is the maximum absolute difference between total debits and
// credits for an entry to be considered balanced.
var BalanceTolerance = decimal.RequireFromString("0.01")

// GeneratedLine is one line of a candidate journal entry. AccountID is kept
// for persistence but is not part of the wire shape.
type GeneratedLine struct {
	AccountID   string          `json:"-"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Lado        EntrySide       `json:"lado"`
	Amount      decimal.Decimal `json:"amount"`
	Memo        string          `json:"memo,omitempty"`
}

// GeneratedEntry is the ephemeral result of running the rule engine over one
// event occurrence. It is never persisted by the generator itself; in PERSIST
// mode it is handed to the ledger store, which assigns AsientoID.
type GeneratedEntry struct {
	CompanyID    int64           `json:"companyID"`
	EventoTipo   string          `json:"eventoTipo"`
	EventoNombre string          `json:"eventoNombre"`
	Fecha        time.Time       `json:"fecha"`
	Glosa        string          `json:"glosa"`
	Lines        []GeneratedLine `json:"lines"`
	TotalDebe    decimal.Decimal `json:"totalDebe"`
	TotalHaber   decimal.Decimal `json:"totalHaber"`
	Cuadra       bool            `json:"cuadra"`
	Mode         GenerationMode  `json:"mode"`
	AsientoID    int64           `json:"asientoID,omitempty"`
}
