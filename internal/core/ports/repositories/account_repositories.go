package repositories

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// AccountReader is the chart-of-accounts collaborator. The chart itself is
// maintained by the accounts module; this core only reads it.
type AccountReader interface {
	// ListActiveAccounts retrieves the active accounts of a company ordered
	// by code.
	ListActiveAccounts(ctx context.Context, companyID int64) ([]domain.Account, error)

	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}
