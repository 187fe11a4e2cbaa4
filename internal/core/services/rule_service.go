package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/expr"
)

// ruleService provides the rule-set operations.
type ruleService struct {
	ruleRepo  portsrepo.RuleRepositoryFacade
	eventRepo portsrepo.EventRepositoryFacade
	catalog   *catalog.Catalog
}

// NewRuleService creates a new RuleService.
func NewRuleService(ruleRepo portsrepo.RuleRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade, cat *catalog.Catalog) portssvc.RuleSvcFacade {
	return &ruleService{
		ruleRepo:  ruleRepo,
		eventRepo: eventRepo,
		catalog:   cat,
	}
}

var _ portssvc.RuleSvcFacade = (*ruleService)(nil)

// ListRules lists a company's rules in generation order.
func (s *ruleService) ListRules(ctx context.Context, companyID int64, eventID *string) ([]domain.Rule, error) {
	rules, err := s.ruleRepo.ListRulesByCompany(ctx, companyID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	if rules == nil {
		rules = []domain.Rule{}
	}
	return rules, nil
}

// CreateRule creates a new rule. The condition expression is parsed up front
// so a broken expression is rejected at configuration time, not silently
// skipped at generation time.
func (s *ruleService) CreateRule(ctx context.Context, companyID int64, req dto.CreateRuleRequest, creatorUserID string) (*domain.Rule, error) {
	event, err := s.eventRepo.FindEventByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	if err := validateCondition(req.Condicion); err != nil {
		return nil, err
	}
	if !domain.ValidAmountType(req.TipoMonto) {
		return nil, fmt.Errorf("%w: tipo_monto %q desconocido", apperrors.ErrValidation, req.TipoMonto)
	}

	now := time.Now().UTC()
	rule := domain.Rule{
		RuleID:     uuid.NewString(),
		EventID:    req.EventID,
		CompanyID:  companyID,
		Condicion:  req.Condicion,
		Lado:       req.Lado,
		TipoCuenta: req.TipoCuenta,
		TipoMonto:  req.TipoMonto,
		Orden:      req.Orden,
		Config:     req.Config,
		Activo:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save rule: %w", err)
	}
	return &rule, nil
}

// UpdateRule updates the mutable fields of a rule.
func (s *ruleService) UpdateRule(ctx context.Context, companyID int64, ruleID string, req dto.UpdateRuleRequest, updaterUserID string) (*domain.Rule, error) {
	rule, err := s.findCompanyRule(ctx, companyID, ruleID)
	if err != nil {
		return nil, err
	}

	if req.Condicion != nil {
		if err := validateCondition(*req.Condicion); err != nil {
			return nil, err
		}
		rule.Condicion = *req.Condicion
	}
	if req.Lado != nil {
		rule.Lado = *req.Lado
	}
	if req.TipoCuenta != nil {
		if *req.TipoCuenta == "" {
			return nil, fmt.Errorf("%w: tipo_cuenta no puede ser vacío", apperrors.ErrValidation)
		}
		rule.TipoCuenta = *req.TipoCuenta
	}
	if req.TipoMonto != nil {
		if !domain.ValidAmountType(*req.TipoMonto) {
			return nil, fmt.Errorf("%w: tipo_monto %q desconocido", apperrors.ErrValidation, *req.TipoMonto)
		}
		rule.TipoMonto = *req.TipoMonto
	}
	if req.Orden != nil {
		rule.Orden = *req.Orden
	}
	if req.Config != nil {
		rule.Config = req.Config
	}
	if req.Activo != nil {
		rule.Activo = *req.Activo
	}
	rule.LastUpdatedAt = time.Now().UTC()
	rule.LastUpdatedBy = updaterUserID

	if err := s.ruleRepo.UpdateRule(ctx, *rule); err != nil {
		return nil, fmt.Errorf("failed to update rule %s: %w", ruleID, err)
	}
	return rule, nil
}

// DeleteRule removes a rule immediately. Rules are pure configuration with no
// downstream state, so no dependency checks are needed.
func (s *ruleService) DeleteRule(ctx context.Context, companyID int64, ruleID string) error {
	if _, err := s.findCompanyRule(ctx, companyID, ruleID); err != nil {
		return err
	}
	if err := s.ruleRepo.DeleteRule(ctx, ruleID); err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	return nil
}

// InitDefaultRules seeds the catalog's default rule set for an event that has
// no rules yet.
func (s *ruleService) InitDefaultRules(ctx context.Context, companyID int64, eventoTipo string, creatorUserID string) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event, err := s.eventRepo.FindEventByTipo(ctx, companyID, eventoTipo)
	if err != nil {
		return 0, err
	}

	existing, err := s.ruleRepo.ListRulesByCompany(ctx, companyID, &event.EventID)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing rules: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Event already has rules, skipping default seed",
			slog.String("tipo", eventoTipo), slog.Int("existing", len(existing)))
		return 0, nil
	}

	defs, ok := s.catalog.DefaultRules(eventoTipo)
	if !ok {
		return 0, fmt.Errorf("%w: el evento %q no tiene reglas por defecto en el catálogo", apperrors.ErrNotFound, eventoTipo)
	}

	now := time.Now().UTC()
	rules := make([]domain.Rule, len(defs))
	for i, def := range defs {
		rules[i] = domain.Rule{
			RuleID:     uuid.NewString(),
			EventID:    event.EventID,
			CompanyID:  companyID,
			Condicion:  def.Condicion,
			Lado:       def.Lado,
			TipoCuenta: def.TipoCuenta,
			TipoMonto:  def.TipoMonto,
			Orden:      def.Orden,
			Activo:     true,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.ruleRepo.SaveRules(ctx, rules); err != nil {
		return 0, fmt.Errorf("failed to seed default rules for %s: %w", eventoTipo, err)
	}
	return len(rules), nil
}

func (s *ruleService) findCompanyRule(ctx context.Context, companyID int64, ruleID string) (*domain.Rule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		return nil, err
	}
	if rule.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return rule, nil
}

// validateCondition parses a condition expression, mapping parse failures to
// a validation error. An empty condition means "always applies".
func validateCondition(condicion string) error {
	if condicion == "" {
		return nil
	}
	if _, err := expr.Parse(condicion); err != nil {
		return fmt.Errorf("%w: condición inválida: %v", apperrors.ErrValidation, err)
	}
	return nil
}
