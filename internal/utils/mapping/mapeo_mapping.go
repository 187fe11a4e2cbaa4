package mapping

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
)

// ToModelMapping converts a domain AccountTypeMapping to its database model.
func ToModelMapping(m domain.AccountTypeMapping) models.AccountTypeMapping {
	return models.AccountTypeMapping{
		MappingID:   m.MappingID,
		CompanyID:   m.CompanyID,
		TipoCuenta:  m.TipoCuenta,
		AccountID:   m.AccountID,
		Config:      m.Config,
		Activo:      m.Activo,
		AuditFields: ToModelAuditFields(m.AuditFields),
	}
}

// ToDomainMapping converts a database mapping model to its domain representation.
func ToDomainMapping(m models.AccountTypeMapping) domain.AccountTypeMapping {
	return domain.AccountTypeMapping{
		MappingID:   m.MappingID,
		CompanyID:   m.CompanyID,
		TipoCuenta:  m.TipoCuenta,
		AccountID:   m.AccountID,
		Config:      m.Config,
		Activo:      m.Activo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccount converts a database Account model to its domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		CompanyID: m.CompanyID,
		Code:      m.Code,
		Name:      m.Name,
		Activo:    m.Activo,
	}
}
