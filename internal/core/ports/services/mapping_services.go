package services

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
)

// MappingSvcFacade exposes account-type mapping resolution, suggestion and
// bulk auto-mapping.
type MappingSvcFacade interface {
	// ListMappings lists all mappings of a company.
	ListMappings(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error)

	// CreateMapping maps an account type to a concrete account, replacing any
	// previously active mapping for the same type.
	CreateMapping(ctx context.Context, companyID int64, req dto.CreateMappingRequest, creatorUserID string) (*domain.AccountTypeMapping, error)

	// ResolveAccount resolves an account type to its mapped account. Fails
	// with an UnmappedAccountType generation error if no active mapping exists.
	ResolveAccount(ctx context.Context, companyID int64, tipoCuenta string) (*domain.Account, error)

	// Suggest scores every active account of the company against the account
	// type's affinities and returns the top candidates, best first.
	Suggest(ctx context.Context, companyID int64, tipoCuenta string, topN int) ([]domain.MappingSuggestion, error)

	// AutoMapOne maps the type automatically when the best candidate scores
	// at or above the auto-map threshold, otherwise returns the suggestions
	// for human confirmation.
	AutoMapOne(ctx context.Context, companyID int64, tipoCuenta string, userID string) (*dto.AutoMapResult, error)

	// AutoMapAll runs AutoMapOne over every unmapped type in the known-type
	// catalog. Idempotent: a second run creates nothing.
	AutoMapAll(ctx context.Context, companyID int64, userID string) (*dto.AutoMapSummary, error)
}
