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

type PgxRuleRepository struct {
	BaseRepository
}

// newPgxRuleRepository creates a new repository for rule data.
func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleRepositoryFacade {
	return &PgxRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RuleRepositoryFacade = (*PgxRuleRepository)(nil)

const ruleColumns = `rule_id, event_id, company_id, condicion, lado, tipo_cuenta, tipo_monto, orden, config, activo, created_at, created_by, last_updated_at, last_updated_by`

// Generation order: orden ascending, creation time ascending on ties, id as a
// final stable tiebreak for rules created in the same instant.
const ruleOrderBy = ` ORDER BY orden ASC, created_at ASC, rule_id ASC`

func scanRule(row pgx.CollectableRow) (models.Rule, error) {
	var m models.Rule
	err := row.Scan(
		&m.RuleID,
		&m.EventID,
		&m.CompanyID,
		&m.Condicion,
		&m.Lado,
		&m.TipoCuenta,
		&m.TipoMonto,
		&m.Orden,
		&m.Config,
		&m.Activo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindRuleByID retrieves a rule by its unique identifier.
func (r *PgxRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reglas WHERE rule_id = $1;`
	rows, err := r.Pool.Query(ctx, query, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule %s: %w", ruleID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanRule)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule %s: %w", ruleID, err)
	}
	rule := mapping.ToDomainRule(m)
	return &rule, nil
}

// ListRulesByEvent retrieves the active rules of an event in generation order.
func (r *PgxRuleRepository) ListRulesByEvent(ctx context.Context, eventID string) ([]domain.Rule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reglas WHERE event_id = $1 AND activo` + ruleOrderBy + `;`
	return r.queryRules(ctx, query, eventID)
}

// ListRulesByCompany retrieves all rules of a company, optionally filtered by
// event, in generation order.
func (r *PgxRuleRepository) ListRulesByCompany(ctx context.Context, companyID int64, eventID *string) ([]domain.Rule, error) {
	if eventID != nil {
		query := `SELECT ` + ruleColumns + ` FROM reglas WHERE company_id = $1 AND event_id = $2` + ruleOrderBy + `;`
		return r.queryRules(ctx, query, companyID, *eventID)
	}
	query := `SELECT ` + ruleColumns + ` FROM reglas WHERE company_id = $1` + ruleOrderBy + `;`
	return r.queryRules(ctx, query, companyID)
}

func (r *PgxRuleRepository) queryRules(ctx context.Context, query string, args ...any) ([]domain.Rule, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	modelRules, err := pgx.CollectRows(rows, scanRule)
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}

	rules := make([]domain.Rule, len(modelRules))
	for i, m := range modelRules {
		rules[i] = mapping.ToDomainRule(m)
	}
	return rules, nil
}

// SaveRule inserts a new rule.
func (r *PgxRuleRepository) SaveRule(ctx context.Context, rule domain.Rule) error {
	m := mapping.ToModelRule(rule)
	query := `
		INSERT INTO reglas (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RuleID, m.EventID, m.CompanyID, m.Condicion, m.Lado, m.TipoCuenta, m.TipoMonto,
		m.Orden, m.Config, m.Activo, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save rule %s: %w", m.RuleID, err)
	}
	return nil
}

// SaveRules inserts several rules in one batch.
func (r *PgxRuleRepository) SaveRules(ctx context.Context, rules []domain.Rule) error {
	if len(rules) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO reglas (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	for _, rule := range rules {
		m := mapping.ToModelRule(rule)
		batch.Queue(query,
			m.RuleID, m.EventID, m.CompanyID, m.Condicion, m.Lado, m.TipoCuenta, m.TipoMonto,
			m.Orden, m.Config, m.Activo, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range rules {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to batch-insert rules: %w", err)
		}
	}
	return nil
}

// UpdateRule updates the mutable fields of a rule.
func (r *PgxRuleRepository) UpdateRule(ctx context.Context, rule domain.Rule) error {
	m := mapping.ToModelRule(rule)
	query := `
		UPDATE reglas
		SET condicion = $2, lado = $3, tipo_cuenta = $4, tipo_monto = $5, orden = $6,
		    config = $7, activo = $8, last_updated_at = $9, last_updated_by = $10
		WHERE rule_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RuleID, m.Condicion, m.Lado, m.TipoCuenta, m.TipoMonto, m.Orden,
		m.Config, m.Activo, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update rule %s: %w", m.RuleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteRule removes a rule.
func (r *PgxRuleRepository) DeleteRule(ctx context.Context, ruleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM reglas WHERE rule_id = $1;`, ruleID)
	if err != nil {
		return fmt.Errorf("failed to delete rule %s: %w", ruleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
