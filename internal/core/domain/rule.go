package domain

// EntrySide is the side of a journal line.
type EntrySide string

const (
	Debe  EntrySide = "DEBE"
	Haber EntrySide = "HABER"
)

// AmountType selects which numeric field of the event's input data a rule's
// line amount comes from.
type AmountType string

const (
	MontoBase      AmountType = "BASE"
	MontoIGV       AmountType = "IGV"
	MontoTotal     AmountType = "TOTAL"
	MontoDescuento AmountType = "DESCUENTO"
	MontoCosto     AmountType = "COSTO"
	MontoCantidad  AmountType = "CANTIDAD"
)

// DatoKey returns the key under which this amount type is looked up in the
// event's datos map.
func (t AmountType) DatoKey() string {
	switch t {
	case MontoBase:
		return "base"
	case MontoIGV:
		return "igv"
	case MontoTotal:
		return "total"
	case MontoDescuento:
		return "descuento"
	case MontoCosto:
		return "costo"
	case MontoCantidad:
		return "cantidad"
	}
	return ""
}

// ValidAmountType reports whether t is one of the known amount types.
func ValidAmountType(t AmountType) bool {
	return t.DatoKey() != ""
}

// Rule is one line-generation instruction belonging to an event. Condicion is
// an optional boolean expression over the event's datos; an empty condition is
// always true. Orden defines emission order within the event; ties are broken
// by creation order.
type Rule struct {
	RuleID     string            `json:"ruleID"`
	EventID    string            `json:"eventID"`
	CompanyID  int64             `json:"companyID"`
	Condicion  string            `json:"condicion"`
	Lado       EntrySide         `json:"lado"`
	TipoCuenta string            `json:"tipoCuenta"`
	TipoMonto  AmountType        `json:"tipoMonto"`
	Orden      int               `json:"orden"`
	Config     map[string]string `json:"config"`
	Activo     bool              `json:"activo"`
	AuditFields
}

// Memo returns the optional line memo configured on the rule.
func (r Rule) Memo() string {
	if r.Config == nil {
		return ""
	}
	return r.Config["memo"]
}
