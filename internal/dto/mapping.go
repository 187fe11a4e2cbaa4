package dto

import (
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// CreateMappingRequest defines the data needed to map an account type to a
// concrete ledger account. Any previously active mapping for the same type is
// deactivated in the same transaction.
type CreateMappingRequest struct {
	TipoCuenta string            `json:"tipo_cuenta" binding:"required"`
	AccountID  string            `json:"account_id" binding:"required"`
	Config     map[string]string `json:"config"`
}

// MappingResponse defines the data returned for a mapping.
type MappingResponse struct {
	MappingID  string    `json:"mapping_id"`
	CompanyID  int64     `json:"company_id"`
	TipoCuenta string    `json:"tipo_cuenta"`
	AccountID  string    `json:"account_id"`
	Activo     bool      `json:"activo"`
	CreatedAt  time.Time `json:"created_at"`
}

// SuggestionResponse is one scored candidate account.
type SuggestionResponse struct {
	AccountID   string `json:"account_id"`
	AccountCode string `json:"account_code"`
	AccountName string `json:"account_name"`
	Score       int    `json:"score"`
}

// AutoMapResult is the outcome of autoMapOne for a single account type.
// When Success is false, CuentaSugerida holds the best candidate (if any) so
// a human can confirm it.
type AutoMapResult struct {
	Success        bool                 `json:"success"`
	TipoCuenta     string               `json:"tipo_cuenta"`
	Score          int                  `json:"score"`
	CuentaSugerida *SuggestionResponse  `json:"cuenta_sugerida,omitempty"`
	Sugerencias    []SuggestionResponse `json:"sugerencias,omitempty"`
}

// AutoMapSummary aggregates an autoMapAll run over the known-type catalog.
type AutoMapSummary struct {
	Creados           int      `json:"creados"`
	YaExistian        int      `json:"ya_existian"`
	RequierenRevision int      `json:"requieren_revision"`
	NoEncontrados     int      `json:"no_encontrados"`
	TiposPendientes   []string `json:"tipos_pendientes,omitempty"`
}

// ToMappingResponse converts a domain mapping to its response DTO.
func ToMappingResponse(m *domain.AccountTypeMapping) MappingResponse {
	return MappingResponse{
		MappingID:  m.MappingID,
		CompanyID:  m.CompanyID,
		TipoCuenta: m.TipoCuenta,
		AccountID:  m.AccountID,
		Activo:     m.Activo,
		CreatedAt:  m.CreatedAt,
	}
}

// ToMappingResponses converts a slice of domain mappings.
func ToMappingResponses(mappings []domain.AccountTypeMapping) []MappingResponse {
	responses := make([]MappingResponse, len(mappings))
	for i := range mappings {
		responses[i] = ToMappingResponse(&mappings[i])
	}
	return responses
}

// ToSuggestionResponses converts scored suggestions to their wire shape.
func ToSuggestionResponses(suggestions []domain.MappingSuggestion) []SuggestionResponse {
	responses := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = SuggestionResponse{
			AccountID:   s.AccountID,
			AccountCode: s.AccountCode,
			AccountName: s.AccountName,
			Score:       s.Score,
		}
	}
	return responses
}
