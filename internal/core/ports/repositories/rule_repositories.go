package repositories

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// RuleReader defines read operations for rule data.
type RuleReader interface {
	// FindRuleByID retrieves a rule by its unique identifier.
	FindRuleByID(ctx context.Context, ruleID string) (*domain.Rule, error)

	// ListRulesByEvent retrieves the active rules of an event in generation
	// order: orden ascending, creation time ascending on ties. A single query
	// so a generation sees one consistent snapshot of the rule set.
	ListRulesByEvent(ctx context.Context, eventID string) ([]domain.Rule, error)

	// ListRulesByCompany retrieves all rules of a company (active or not),
	// optionally filtered by event, in generation order.
	ListRulesByCompany(ctx context.Context, companyID int64, eventID *string) ([]domain.Rule, error)
}

// RuleWriter defines write operations for rule data.
type RuleWriter interface {
	// SaveRule inserts a new rule.
	SaveRule(ctx context.Context, rule domain.Rule) error

	// SaveRules inserts several rules at once (default rule-set seeding).
	SaveRules(ctx context.Context, rules []domain.Rule) error

	// UpdateRule updates the mutable fields of a rule.
	UpdateRule(ctx context.Context, rule domain.Rule) error

	// DeleteRule removes a rule. Rules are pure configuration, so deletion is
	// immediate and unguarded.
	DeleteRule(ctx context.Context, ruleID string) error
}

// RuleRepositoryFacade combines all rule repository interfaces.
type RuleRepositoryFacade interface {
	RuleReader
	RuleWriter
}
