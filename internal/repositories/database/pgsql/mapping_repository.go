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

type PgxMappingRepository struct {
	BaseRepository
}

// newPgxMappingRepository creates a new repository for account-type mapping data.
func newPgxMappingRepository(pool *pgxpool.Pool) portsrepo.MappingRepositoryFacade {
	return &PgxMappingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MappingRepositoryFacade = (*PgxMappingRepository)(nil)

const mappingColumns = `mapping_id, company_id, tipo_cuenta, account_id, config, activo, created_at, created_by, last_updated_at, last_updated_by`

func scanMapping(row pgx.CollectableRow) (models.AccountTypeMapping, error) {
	var m models.AccountTypeMapping
	err := row.Scan(
		&m.MappingID,
		&m.CompanyID,
		&m.TipoCuenta,
		&m.AccountID,
		&m.Config,
		&m.Activo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindActiveMappingByTipo retrieves the single active mapping for a
// (company, tipoCuenta) pair.
func (r *PgxMappingRepository) FindActiveMappingByTipo(ctx context.Context, companyID int64, tipoCuenta string) (*domain.AccountTypeMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM mapeos WHERE company_id = $1 AND tipo_cuenta = $2 AND activo;`
	rows, err := r.Pool.Query(ctx, query, companyID, tipoCuenta)
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping for %s: %w", tipoCuenta, err)
	}
	m, err := pgx.CollectOneRow(rows, scanMapping)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find mapping for %s: %w", tipoCuenta, err)
	}
	result := mapping.ToDomainMapping(m)
	return &result, nil
}

// ListActiveMappingsByCompany retrieves all active mappings of a company in
// one query, providing the generator its per-request snapshot.
func (r *PgxMappingRepository) ListActiveMappingsByCompany(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM mapeos WHERE company_id = $1 AND activo ORDER BY tipo_cuenta;`
	return r.queryMappings(ctx, query, companyID)
}

// ListMappings retrieves all mappings of a company, active or not.
func (r *PgxMappingRepository) ListMappings(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error) {
	query := `SELECT ` + mappingColumns + ` FROM mapeos WHERE company_id = $1 ORDER BY tipo_cuenta, activo DESC, created_at DESC;`
	return r.queryMappings(ctx, query, companyID)
}

func (r *PgxMappingRepository) queryMappings(ctx context.Context, query string, args ...any) ([]domain.AccountTypeMapping, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}
	modelMappings, err := pgx.CollectRows(rows, scanMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to scan mappings: %w", err)
	}

	mappings := make([]domain.AccountTypeMapping, len(modelMappings))
	for i, m := range modelMappings {
		mappings[i] = mapping.ToDomainMapping(m)
	}
	return mappings, nil
}

// UpsertMapping deactivates any active mapping for the same (company,
// tipoCuenta) and inserts the new one in a single transaction. The partial
// unique index on (company_id, tipo_cuenta) WHERE activo makes concurrent
// upserts for the same type serialize instead of both succeeding.
func (r *PgxMappingRepository) UpsertMapping(ctx context.Context, m domain.AccountTypeMapping) error {
	modelMapping := mapping.ToModelMapping(m)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	deactivate := `
		UPDATE mapeos
		SET activo = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND tipo_cuenta = $2 AND activo;
	`
	if _, err := tx.Exec(ctx, deactivate,
		modelMapping.CompanyID, modelMapping.TipoCuenta, modelMapping.LastUpdatedAt, modelMapping.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to deactivate prior mapping for %s: %w", modelMapping.TipoCuenta, err)
	}

	insert := `
		INSERT INTO mapeos (` + mappingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, insert,
		modelMapping.MappingID, modelMapping.CompanyID, modelMapping.TipoCuenta, modelMapping.AccountID,
		modelMapping.Config, modelMapping.Activo,
		modelMapping.CreatedAt, modelMapping.CreatedBy, modelMapping.LastUpdatedAt, modelMapping.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert mapping for %s: %w", modelMapping.TipoCuenta, err)
	}

	return r.Commit(ctx, tx)
}
