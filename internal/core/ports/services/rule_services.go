package services

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
)

// RuleSvcFacade exposes the rule-set operations.
type RuleSvcFacade interface {
	// ListRules lists a company's rules, optionally for one event, in
	// generation order.
	ListRules(ctx context.Context, companyID int64, eventID *string) ([]domain.Rule, error)

	// CreateRule creates a new rule after validating its condition expression
	// and amount type.
	CreateRule(ctx context.Context, companyID int64, req dto.CreateRuleRequest, creatorUserID string) (*domain.Rule, error)

	// UpdateRule updates the mutable fields of a rule.
	UpdateRule(ctx context.Context, companyID int64, ruleID string, req dto.UpdateRuleRequest, updaterUserID string) (*domain.Rule, error)

	// DeleteRule removes a rule immediately; no dependency checks.
	DeleteRule(ctx context.Context, companyID int64, ruleID string) error

	// InitDefaultRules seeds the catalog's default rule set for an event that
	// has no rules yet. Idempotent: an event with any rules is left alone.
	InitDefaultRules(ctx context.Context, companyID int64, eventoTipo string, creatorUserID string) (int, error)
}
