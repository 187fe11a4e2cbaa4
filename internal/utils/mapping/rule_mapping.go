package mapping

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
)

// ToModelRule converts a domain Rule to its database model.
func ToModelRule(r domain.Rule) models.Rule {
	return models.Rule{
		RuleID:      r.RuleID,
		EventID:     r.EventID,
		CompanyID:   r.CompanyID,
		Condicion:   r.Condicion,
		Lado:        string(r.Lado),
		TipoCuenta:  r.TipoCuenta,
		TipoMonto:   string(r.TipoMonto),
		Orden:       r.Orden,
		Config:      r.Config,
		Activo:      r.Activo,
		AuditFields: ToModelAuditFields(r.AuditFields),
	}
}

// ToDomainRule converts a database Rule model to its domain representation.
func ToDomainRule(m models.Rule) domain.Rule {
	return domain.Rule{
		RuleID:      m.RuleID,
		EventID:     m.EventID,
		CompanyID:   m.CompanyID,
		Condicion:   m.Condicion,
		Lado:        domain.EntrySide(m.Lado),
		TipoCuenta:  m.TipoCuenta,
		TipoMonto:   domain.AmountType(m.TipoMonto),
		Orden:       m.Orden,
		Config:      m.Config,
		Activo:      m.Activo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
