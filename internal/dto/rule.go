package dto

import (
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// CreateRuleRequest defines the data needed to create a new rule.
type CreateRuleRequest struct {
	EventID    string            `json:"event_id" binding:"required"`
	Condicion  string            `json:"condicion"`
	Lado       domain.EntrySide  `json:"lado" binding:"required,oneof=DEBE HABER"`
	TipoCuenta string            `json:"tipo_cuenta" binding:"required"`
	TipoMonto  domain.AmountType `json:"tipo_monto" binding:"required,oneof=BASE IGV TOTAL DESCUENTO COSTO CANTIDAD"`
	Orden      int               `json:"orden"`
	Config     map[string]string `json:"config"`
}

// UpdateRuleRequest defines the fields that may be changed on a rule.
type UpdateRuleRequest struct {
	Condicion  *string            `json:"condicion"`
	Lado       *domain.EntrySide  `json:"lado" binding:"omitempty,oneof=DEBE HABER"`
	TipoCuenta *string            `json:"tipo_cuenta"`
	TipoMonto  *domain.AmountType `json:"tipo_monto" binding:"omitempty,oneof=BASE IGV TOTAL DESCUENTO COSTO CANTIDAD"`
	Orden      *int               `json:"orden"`
	Config     map[string]string  `json:"config"`
	Activo     *bool              `json:"activo"`
}

// RuleResponse defines the data returned for a rule.
type RuleResponse struct {
	RuleID     string            `json:"rule_id"`
	EventID    string            `json:"event_id"`
	Condicion  string            `json:"condicion"`
	Lado       domain.EntrySide  `json:"lado"`
	TipoCuenta string            `json:"tipo_cuenta"`
	TipoMonto  domain.AmountType `json:"tipo_monto"`
	Orden      int               `json:"orden"`
	Config     map[string]string `json:"config"`
	Activo     bool              `json:"activo"`
	CreatedAt  time.Time         `json:"created_at"`
}

// InitDefaultRulesResponse reports how many default rules were seeded.
type InitDefaultRulesResponse struct {
	EventoTipo string `json:"evento_tipo"`
	Creadas    int    `json:"creadas"`
}

// ToRuleResponse converts a domain.Rule to its response DTO.
func ToRuleResponse(r *domain.Rule) RuleResponse {
	return RuleResponse{
		RuleID:     r.RuleID,
		EventID:    r.EventID,
		Condicion:  r.Condicion,
		Lado:       r.Lado,
		TipoCuenta: r.TipoCuenta,
		TipoMonto:  r.TipoMonto,
		Orden:      r.Orden,
		Config:     r.Config,
		Activo:     r.Activo,
		CreatedAt:  r.CreatedAt,
	}
}

// ToRuleResponses converts a slice of domain rules.
func ToRuleResponses(rules []domain.Rule) []RuleResponse {
	responses := make([]RuleResponse, len(rules))
	for i := range rules {
		responses[i] = ToRuleResponse(&rules[i])
	}
	return responses
}
