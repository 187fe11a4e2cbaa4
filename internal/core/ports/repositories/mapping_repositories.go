package repositories

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// MappingReader defines read operations for account-type mapping data.
type MappingReader interface {
	// FindActiveMappingByTipo retrieves the single active mapping for a
	// (company, tipoCuenta) pair. Returns apperrors.ErrNotFound if none.
	FindActiveMappingByTipo(ctx context.Context, companyID int64, tipoCuenta string) (*domain.AccountTypeMapping, error)

	// ListActiveMappingsByCompany retrieves all active mappings of a company
	// in one query, for use as a per-generation snapshot.
	ListActiveMappingsByCompany(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error)

	// ListMappings retrieves all mappings of a company, active or not.
	ListMappings(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error)
}

// MappingWriter defines write operations for account-type mapping data.
type MappingWriter interface {
	// UpsertMapping deactivates any active mapping for the same
	// (company, tipoCuenta) and inserts the new one, both inside a single
	// database transaction. Combined with the partial unique index this
	// serializes concurrent writers per type.
	UpsertMapping(ctx context.Context, m domain.AccountTypeMapping) error
}

// MappingRepositoryFacade combines all mapping repository interfaces.
type MappingRepositoryFacade interface {
	MappingReader
	MappingWriter
}
