package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
)

// Scoring weights and decision thresholds for mapping suggestions. Scores are
// capped at 100.
const (
	scorePrefix  = 50
	scoreKeyword = 30
	scoreNature  = 20
	scoreCap     = 100

	// autoMapThreshold is the minimum top score for AutoMapOne to create the
	// mapping without human confirmation.
	autoMapThreshold = 80

	// reviewThreshold is the minimum top score for a type to be counted as
	// "requiere revisión" rather than "no encontrado" in AutoMapAll.
	reviewThreshold = 50

	defaultTopN = 5
)

// mappingService provides account-type mapping resolution, suggestion scoring
// and bulk auto-mapping.
type mappingService struct {
	mappingRepo portsrepo.MappingRepositoryFacade
	accountRepo portsrepo.AccountReader
	catalog     *catalog.Catalog
}

// NewMappingService creates a new MappingService.
func NewMappingService(mappingRepo portsrepo.MappingRepositoryFacade, accountRepo portsrepo.AccountReader, cat *catalog.Catalog) portssvc.MappingSvcFacade {
	return &mappingService{
		mappingRepo: mappingRepo,
		accountRepo: accountRepo,
		catalog:     cat,
	}
}

var _ portssvc.MappingSvcFacade = (*mappingService)(nil)

// ListMappings lists all mappings of a company.
func (s *mappingService) ListMappings(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error) {
	mappings, err := s.mappingRepo.ListMappings(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	if mappings == nil {
		mappings = []domain.AccountTypeMapping{}
	}
	return mappings, nil
}

// CreateMapping maps an account type to a concrete ledger account. The upsert
// deactivates any prior active mapping in the same transaction, so at most one
// active mapping per (company, tipoCuenta) survives concurrent writers.
func (s *mappingService) CreateMapping(ctx context.Context, companyID int64, req dto.CreateMappingRequest, creatorUserID string) (*domain.AccountTypeMapping, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID || !account.Activo {
		return nil, fmt.Errorf("%w: la cuenta %s no pertenece a la empresa o está inactiva", apperrors.ErrValidation, req.AccountID)
	}

	mapping := s.newMapping(companyID, req.TipoCuenta, req.AccountID, req.Config, creatorUserID)
	if err := s.mappingRepo.UpsertMapping(ctx, mapping); err != nil {
		return nil, fmt.Errorf("failed to upsert mapping for %s: %w", req.TipoCuenta, err)
	}
	return &mapping, nil
}

// ResolveAccount resolves an account type to its concrete mapped account.
func (s *mappingService) ResolveAccount(ctx context.Context, companyID int64, tipoCuenta string) (*domain.Account, error) {
	mapping, err := s.mappingRepo.FindActiveMappingByTipo(ctx, companyID, tipoCuenta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnmappedAccountType(tipoCuenta)
		}
		return nil, fmt.Errorf("failed to resolve mapping for %s: %w", tipoCuenta, err)
	}
	return s.accountRepo.FindAccountByID(ctx, mapping.AccountID)
}

// Suggest scores every active account of the company against the type's
// affinities and returns the top candidates.
func (s *mappingService) Suggest(ctx context.Context, companyID int64, tipoCuenta string, topN int) ([]domain.MappingSuggestion, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	suggestions := s.scoreCandidates(tipoCuenta, accounts)
	if topN > 0 && len(suggestions) > topN {
		suggestions = suggestions[:topN]
	}
	return suggestions, nil
}

// scoreCandidates computes the confidence score of every account against the
// type's affinities. Zero-scored accounts are dropped. Result ordering is
// deterministic: score descending, account code ascending on ties.
func (s *mappingService) scoreCandidates(tipoCuenta string, accounts []domain.Account) []domain.MappingSuggestion {
	def, known := s.catalog.AccountType(tipoCuenta)

	var suggestions []domain.MappingSuggestion
	for _, account := range accounts {
		score := 0
		if known {
			score = scoreAccount(def, account)
		}
		if score == 0 {
			continue
		}
		suggestions = append(suggestions, domain.MappingSuggestion{
			AccountID:   account.AccountID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Score:       score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].AccountCode < suggestions[j].AccountCode
	})
	return suggestions
}

// scoreAccount implements the weighted affinity score: code prefix (largest
// weight), name keyword, and account-nature compatibility, capped at 100.
func scoreAccount(def catalog.AccountTypeDef, account domain.Account) int {
	score := 0

	for _, prefix := range def.Prefijos {
		if strings.HasPrefix(account.Code, prefix) {
			score += scorePrefix
			break
		}
	}

	nameLower := strings.ToLower(account.Name)
	for _, keyword := range def.Palabras {
		if strings.Contains(nameLower, strings.ToLower(keyword)) {
			score += scoreKeyword
			break
		}
	}

	if nature, ok := account.Nature(); ok && nature == def.Naturaleza {
		score += scoreNature
	}

	if score > scoreCap {
		score = scoreCap
	}
	return score
}

// AutoMapOne maps a type automatically when the best candidate is confident
// enough, otherwise returns the ranked suggestions for human confirmation.
func (s *mappingService) AutoMapOne(ctx context.Context, companyID int64, tipoCuenta string, userID string) (*dto.AutoMapResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	suggestions, err := s.Suggest(ctx, companyID, tipoCuenta, defaultTopN)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return &dto.AutoMapResult{Success: false, TipoCuenta: tipoCuenta}, nil
	}

	top := suggestions[0]
	if top.Score < autoMapThreshold {
		topResp := dto.ToSuggestionResponses(suggestions[:1])[0]
		return &dto.AutoMapResult{
			Success:        false,
			TipoCuenta:     tipoCuenta,
			Score:          top.Score,
			CuentaSugerida: &topResp,
			Sugerencias:    dto.ToSuggestionResponses(suggestions),
		}, nil
	}

	mapping := s.newMapping(companyID, tipoCuenta, top.AccountID, nil, userID)
	if err := s.mappingRepo.UpsertMapping(ctx, mapping); err != nil {
		return nil, fmt.Errorf("failed to auto-map %s: %w", tipoCuenta, err)
	}
	logger.Info("Auto-mapped account type",
		slog.String("tipo_cuenta", tipoCuenta),
		slog.String("account_code", top.AccountCode),
		slog.Int("score", top.Score),
	)
	return &dto.AutoMapResult{Success: true, TipoCuenta: tipoCuenta, Score: top.Score}, nil
}

// AutoMapAll runs AutoMapOne for every unmapped type in the known-type
// catalog and aggregates the outcome counts. Already-mapped types are left
// untouched, which makes the operation idempotent. Cross-type atomicity is
// not needed: a partial failure just leaves fewer types mapped.
func (s *mappingService) AutoMapAll(ctx context.Context, companyID int64, userID string) (*dto.AutoMapSummary, error) {
	active, err := s.mappingRepo.ListActiveMappingsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active mappings: %w", err)
	}
	mapped := make(map[string]bool, len(active))
	for _, m := range active {
		mapped[m.TipoCuenta] = true
	}

	summary := &dto.AutoMapSummary{}
	for _, tipoCuenta := range s.catalog.KnownAccountTypes() {
		if mapped[tipoCuenta] {
			summary.YaExistian++
			continue
		}

		result, err := s.AutoMapOne(ctx, companyID, tipoCuenta, userID)
		if err != nil {
			return nil, err
		}
		switch {
		case result.Success:
			summary.Creados++
		case result.Score >= reviewThreshold:
			summary.RequierenRevision++
			summary.TiposPendientes = append(summary.TiposPendientes, tipoCuenta)
		default:
			summary.NoEncontrados++
			summary.TiposPendientes = append(summary.TiposPendientes, tipoCuenta)
		}
	}
	return summary, nil
}

func (s *mappingService) newMapping(companyID int64, tipoCuenta, accountID string, config map[string]string, userID string) domain.AccountTypeMapping {
	now := time.Now().UTC()
	return domain.AccountTypeMapping{
		MappingID:  uuid.NewString(),
		CompanyID:  companyID,
		TipoCuenta: tipoCuenta,
		AccountID:  accountID,
		Config:     config,
		Activo:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}
