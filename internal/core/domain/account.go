package domain

// AccountNature is the fundamental class of a ledger account, derived from its
// code range in the chart of accounts (PCGE element digit).
type AccountNature string

const (
	NatureActivo     AccountNature = "ACTIVO"
	NaturePasivo     AccountNature = "PASIVO"
	NaturePatrimonio AccountNature = "PATRIMONIO"
	NatureGasto      AccountNature = "GASTO"
	NatureIngreso    AccountNature = "INGRESO"
)

// Account is a concrete ledger account from the company's chart of accounts.
// The chart itself is maintained elsewhere; this core only reads it.
type Account struct {
	AccountID string `json:"accountID"`
	CompanyID int64  `json:"companyID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Activo    bool   `json:"activo"`
}

// Nature derives the account's class from the leading digit of its code.
// PCGE ranges: elements 1-3 assets, 4 liabilities, 5 equity, 6 expenses,
// 7 income, 9 cost accounts (treated as expense-natured).
func (a Account) Nature() (AccountNature, bool) {
	if a.Code == "" {
		return "", false
	}
	switch a.Code[0] {
	case '1', '2', '3':
		return NatureActivo, true
	case '4':
		return NaturePasivo, true
	case '5':
		return NaturePatrimonio, true
	case '6', '9':
		return NatureGasto, true
	case '7':
		return NatureIngreso, true
	}
	return "", false
}
