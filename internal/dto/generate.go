package dto

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateRequest is the wire shape of a generation request.
type GenerateRequest struct {
	CompanyID  int64                      `json:"company_id" binding:"required"`
	EventoTipo string                     `json:"evento_tipo" binding:"required"`
	Datos      map[string]decimal.Decimal `json:"datos" binding:"required"`
	Fecha      Date                       `json:"fecha" binding:"required"`
	Glosa      string                     `json:"glosa"`
	Mode       domain.GenerationMode      `json:"mode" binding:"required,oneof=SIMULATE PERSIST"`
}

// GeneratedLineResponse is one journal line on the wire, split into debit and
// credit columns as accounting consumers expect.
type GeneratedLineResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        *string         `json:"memo"`
}

// GenerateResponse is the success wire shape.
type GenerateResponse struct {
	Success      bool                    `json:"success"`
	EventoNombre string                  `json:"evento_nombre"`
	AsientoID    *int64                  `json:"asiento_id,omitempty"`
	TotalDebit   decimal.Decimal         `json:"total_debit"`
	TotalCredit  decimal.Decimal         `json:"total_credit"`
	Cuadra       bool                    `json:"cuadra"`
	Lineas       []GeneratedLineResponse `json:"lineas"`
}

// GenerateErrorDetail carries the structured pointer at the fix: the offending
// account type, amount field or the unbalanced totals.
type GenerateErrorDetail struct {
	TipoCuenta  *string          `json:"tipo_cuenta,omitempty"`
	TipoMonto   *string          `json:"tipo_monto,omitempty"`
	TotalDebit  *decimal.Decimal `json:"total_debit,omitempty"`
	TotalCredit *decimal.Decimal `json:"total_credit,omitempty"`
}

// GenerateErrorResponse is the failure wire shape.
type GenerateErrorResponse struct {
	Success bool                 `json:"success"`
	Kind    string               `json:"kind"`
	Message string               `json:"message"`
	Detail  *GenerateErrorDetail `json:"detail,omitempty"`
}

// ToGenerateResponse converts a generated entry to the success wire shape.
func ToGenerateResponse(entry *domain.GeneratedEntry) GenerateResponse {
	lineas := make([]GeneratedLineResponse, len(entry.Lines))
	for i, line := range entry.Lines {
		lineaResp := GeneratedLineResponse{
			AccountCode: line.AccountCode,
			AccountName: line.AccountName,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if line.Lado == domain.Debe {
			lineaResp.Debit = line.Amount
		} else {
			lineaResp.Credit = line.Amount
		}
		if line.Memo != "" {
			memo := line.Memo
			lineaResp.Memo = &memo
		}
		lineas[i] = lineaResp
	}

	resp := GenerateResponse{
		Success:      true,
		EventoNombre: entry.EventoNombre,
		TotalDebit:   entry.TotalDebe,
		TotalCredit:  entry.TotalHaber,
		Cuadra:       entry.Cuadra,
		Lineas:       lineas,
	}
	if entry.Mode == domain.ModePersist {
		asientoID := entry.AsientoID
		resp.AsientoID = &asientoID
	}
	return resp
}

// ToGenerateErrorResponse converts a GenerationError to the failure wire shape.
func ToGenerateErrorResponse(genErr *apperrors.GenerationError) GenerateErrorResponse {
	resp := GenerateErrorResponse{
		Success: false,
		Kind:    string(genErr.Kind),
		Message: genErr.Message,
	}

	detail := &GenerateErrorDetail{}
	hasDetail := false
	if genErr.TipoCuenta != "" {
		tipoCuenta := genErr.TipoCuenta
		detail.TipoCuenta = &tipoCuenta
		hasDetail = true
	}
	if genErr.TipoMonto != "" {
		tipoMonto := genErr.TipoMonto
		detail.TipoMonto = &tipoMonto
		hasDetail = true
	}
	if genErr.Kind == apperrors.KindUnbalancedEntry {
		totalDebit := genErr.TotalDebe
		totalCredit := genErr.TotalHaber
		detail.TotalDebit = &totalDebit
		detail.TotalCredit = &totalCredit
		hasDetail = true
	}
	if hasDetail {
		resp.Detail = detail
	}
	return resp
}
