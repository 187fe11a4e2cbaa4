package accounting_test

import (
	"testing"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(lado domain.EntrySide, amount string) domain.GeneratedLine {
	return domain.GeneratedLine{Lado: lado, Amount: decimal.RequireFromString(amount)}
}

func TestTotals(t *testing.T) {
	lines := []domain.GeneratedLine{
		line(domain.Debe, "1000"),
		line(domain.Debe, "180"),
		line(domain.Haber, "1180"),
	}

	debe, haber := accounting.Totals(lines)
	assert.True(t, debe.Equal(decimal.RequireFromString("1180")))
	assert.True(t, haber.Equal(decimal.RequireFromString("1180")))
}

func TestBalanced(t *testing.T) {
	testCases := []struct {
		name     string
		debe     string
		haber    string
		expected bool
	}{
		{"exact match", "1180", "1180", true},
		{"within tolerance", "100.005", "100.00", true},
		{"at tolerance boundary", "100.01", "100.00", false},
		{"clearly unbalanced", "1180", "1000", false},
		{"both zero", "0", "0", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := accounting.Balanced(
				decimal.RequireFromString(tc.debe),
				decimal.RequireFromString(tc.haber),
			)
			assert.Equal(t, tc.expected, got)
		})
	}
}
