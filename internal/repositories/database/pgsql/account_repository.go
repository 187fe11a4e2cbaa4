package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository is a read-only adapter over the cuentas table. The
// chart of accounts is owned by the accounts module.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new read-only chart-of-accounts adapter.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountReader {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, company_id, code, name, activo`

func scanAccount(row pgx.CollectableRow) (models.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.CompanyID, &m.Code, &m.Name, &m.Activo)
	return m, err
}

// ListActiveAccounts retrieves the active accounts of a company ordered by code.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context, companyID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM cuentas WHERE company_id = $1 AND activo ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}

	accounts := make([]domain.Account, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// FindAccountByID retrieves a single account.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM cuentas WHERE account_id = $1;`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanAccount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}
