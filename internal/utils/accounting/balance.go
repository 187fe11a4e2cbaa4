package accounting

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals sums the debit and credit sides of a set of generated lines.
func Totals(lines []domain.GeneratedLine) (totalDebe, totalHaber decimal.Decimal) {
	totalDebe = decimal.Zero
	totalHaber = decimal.Zero
	for _, line := range lines {
		if line.Lado == domain.Debe {
			totalDebe = totalDebe.Add(line.Amount)
		} else {
			totalHaber = totalHaber.Add(line.Amount)
		}
	}
	return totalDebe, totalHaber
}

// Balanced reports whether debits and credits match within the balance
// tolerance. This is the "cuadra" check applied to every generated entry.
func Balanced(totalDebe, totalHaber decimal.Decimal) bool {
	return totalDebe.Sub(totalHaber).Abs().LessThan(domain.BalanceTolerance)
}
