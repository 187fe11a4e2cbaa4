package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/accounting"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/expr"
	"github.com/shopspring/decimal"
)

// generatorService turns one event occurrence into a balanced candidate
// journal entry by interpreting the company's configured rules.
type generatorService struct {
	eventRepo        portsrepo.EventReader
	ruleRepo         portsrepo.RuleReader
	mappingRepo      portsrepo.MappingReader
	accountRepo      portsrepo.AccountReader
	ledgerRepo       portsrepo.LedgerRepositoryFacade
	unitCostFallback decimal.Decimal
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(
	eventRepo portsrepo.EventReader,
	ruleRepo portsrepo.RuleReader,
	mappingRepo portsrepo.MappingReader,
	accountRepo portsrepo.AccountReader,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	unitCostFallback decimal.Decimal,
) portssvc.GeneratorSvcFacade {
	return &generatorService{
		eventRepo:        eventRepo,
		ruleRepo:         ruleRepo,
		mappingRepo:      mappingRepo,
		accountRepo:      accountRepo,
		ledgerRepo:       ledgerRepo,
		unitCostFallback: unitCostFallback,
	}
}

var _ portssvc.GeneratorSvcFacade = (*generatorService)(nil)

// Generate runs the generation pipeline: resolve event, load rules, apply
// per-event preconditions, evaluate each rule in order, resolve amounts and
// accounts, balance-check, and in PERSIST mode hand the entry to the ledger
// store. The pipeline holds no shared state; concurrent generations are
// independent.
func (s *generatorService) Generate(ctx context.Context, req dto.GenerateRequest, userID string) (*domain.GeneratedEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.Int64("company_id", req.CompanyID),
		slog.String("evento_tipo", req.EventoTipo),
		slog.String("mode", string(req.Mode)),
	)

	// 1. Resolve event.
	event, err := s.eventRepo.FindEventByTipo(ctx, req.CompanyID, req.EventoTipo)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewEventNotFound(req.EventoTipo)
		}
		return nil, fmt.Errorf("failed to resolve event: %w", err)
	}
	if !event.Activo {
		return nil, apperrors.NewEventNotFound(req.EventoTipo)
	}

	// 2. Load active rules in generation order (single read, one snapshot).
	rules, err := s.ruleRepo.ListRulesByEvent(ctx, event.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, apperrors.NewNoRulesConfigured(req.EventoTipo)
	}

	// 3. Per-event preconditions and derived fields.
	datos, err := s.applyPreconditions(event.Tipo, req.Datos)
	if err != nil {
		return nil, err
	}
	env := expr.FromDecimals(datos)

	// Mapping snapshot for the whole generation, one query.
	mappings, err := s.mappingRepo.ListActiveMappingsByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping snapshot: %w", err)
	}
	mappingByTipo := make(map[string]string, len(mappings))
	for _, m := range mappings {
		mappingByTipo[m.TipoCuenta] = m.AccountID
	}
	accountCache := make(map[string]*domain.Account)

	// 4..7. Evaluate rules in order, emitting lines.
	var lines []domain.GeneratedLine
	for _, rule := range rules {
		applies, err := evaluateCondition(rule, env)
		if err != nil {
			// Undefined fields and stale expressions skip the rule rather
			// than failing the whole generation.
			logger.Warn("Condition evaluation failed, skipping rule",
				slog.String("rule_id", rule.RuleID),
				slog.String("condicion", rule.Condicion),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !applies {
			continue
		}

		// 5. Resolve amount.
		amount, ok := datos[rule.TipoMonto.DatoKey()]
		if !ok {
			return nil, apperrors.NewMissingAmountField(string(rule.TipoMonto))
		}
		if amount.IsZero() {
			continue // no zero-amount lines
		}

		// 6. Resolve account.
		account, err := s.resolveLineAccount(ctx, rule.TipoCuenta, mappingByTipo, accountCache)
		if err != nil {
			return nil, err
		}

		// 7. Emit line in rule order.
		lines = append(lines, domain.GeneratedLine{
			AccountID:   account.AccountID,
			AccountCode: account.Code,
			AccountName: account.Name,
			Lado:        rule.Lado,
			Amount:      amount,
			Memo:        rule.Memo(),
		})
	}

	// 8. Balance check.
	totalDebe, totalHaber := accounting.Totals(lines)
	entry := &domain.GeneratedEntry{
		CompanyID:    req.CompanyID,
		EventoTipo:   event.Tipo,
		EventoNombre: event.Nombre,
		Fecha:        req.Fecha.Time,
		Glosa:        req.Glosa,
		Lines:        lines,
		TotalDebe:    totalDebe,
		TotalHaber:   totalHaber,
		Cuadra:       accounting.Balanced(totalDebe, totalHaber),
		Mode:         req.Mode,
	}

	if req.Mode == domain.ModeSimulate {
		// Simulation never fails on imbalance; the caller inspects cuadra.
		return entry, nil
	}

	// 9. Persist.
	if !entry.Cuadra {
		return nil, apperrors.NewUnbalancedEntry(totalDebe, totalHaber)
	}
	asientoID, err := s.ledgerRepo.PersistEntry(ctx, *entry)
	if err != nil {
		// Ledger errors (e.g. closed period) are surfaced unchanged.
		return nil, err
	}
	entry.AsientoID = asientoID
	logger.Info("Entry persisted", slog.Int64("asiento_id", asientoID))
	return entry, nil
}

// GetEntry reads back a persisted entry with its lines.
func (s *generatorService) GetEntry(ctx context.Context, companyID int64, asientoID int64) (*domain.GeneratedEntry, error) {
	return s.ledgerRepo.FindEntryByID(ctx, companyID, asientoID)
}

// applyPreconditions validates event-specific required fields and derives the
// fields the event's rules read. The input map is never mutated.
func (s *generatorService) applyPreconditions(eventoTipo string, in map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	datos := make(map[string]decimal.Decimal, len(in)+4)
	for k, v := range in {
		datos[k] = v
	}

	switch eventoTipo {
	case "AJUSTE_INVENTARIO":
		cantidad, ok := datos["cantidad"]
		if !ok {
			return nil, apperrors.NewMissingAmountField("cantidad")
		}
		// Positive cantidad is a surplus, negative a shortage. Without an
		// explicit total, value the adjustment at the fallback unit cost.
		if _, ok := datos["total"]; !ok {
			datos["total"] = cantidad.Abs().Mul(s.unitCostFallback)
		}

	case "PLANILLA_PROVISION":
		required := []string{"total_gasto", "neto_trabajador", "descuentos_trabajador", "aportes_empleador"}
		for _, field := range required {
			if _, ok := datos[field]; !ok {
				return nil, apperrors.NewMissingAmountField(field)
			}
		}
		declared := datos["total_gasto"]
		computed := datos["neto_trabajador"].
			Add(datos["descuentos_trabajador"]).
			Add(datos["aportes_empleador"])
		if declared.Sub(computed).Abs().GreaterThanOrEqual(domain.BalanceTolerance) {
			return nil, apperrors.NewInvalidPayrollTotals(declared, computed)
		}
		// Alias the payroll components onto the standard amount-type keys so
		// the default rule set can address them.
		aliases := map[string]string{
			"total":     "total_gasto",
			"base":      "neto_trabajador",
			"descuento": "descuentos_trabajador",
			"costo":     "aportes_empleador",
		}
		for key, source := range aliases {
			if _, ok := datos[key]; !ok {
				datos[key] = datos[source]
			}
		}
	}

	return datos, nil
}

// evaluateCondition reports whether a rule applies. An absent condition is
// always true.
func evaluateCondition(rule domain.Rule, env expr.Env) (bool, error) {
	if rule.Condicion == "" {
		return true, nil
	}
	parsed, err := expr.Parse(rule.Condicion)
	if err != nil {
		return false, err
	}
	return parsed.Eval(env)
}

// resolveLineAccount resolves a rule's account type against the mapping
// snapshot, caching account lookups per generation.
func (s *generatorService) resolveLineAccount(ctx context.Context, tipoCuenta string, mappingByTipo map[string]string, cache map[string]*domain.Account) (*domain.Account, error) {
	if account, ok := cache[tipoCuenta]; ok {
		return account, nil
	}
	accountID, ok := mappingByTipo[tipoCuenta]
	if !ok {
		return nil, apperrors.NewUnmappedAccountType(tipoCuenta)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapped account for %s: %w", tipoCuenta, err)
	}
	cache[tipoCuenta] = account
	return account, nil
}
