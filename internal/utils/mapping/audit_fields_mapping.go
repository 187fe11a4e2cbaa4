package mapping

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
)

// ToModelAuditFields converts domain audit fields to the model representation.
func ToModelAuditFields(f domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     f.CreatedAt,
		CreatedBy:     f.CreatedBy,
		LastUpdatedAt: f.LastUpdatedAt,
		LastUpdatedBy: f.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts model audit fields to the domain representation.
func ToDomainAuditFields(f models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     f.CreatedAt,
		CreatedBy:     f.CreatedBy,
		LastUpdatedAt: f.LastUpdatedAt,
		LastUpdatedBy: f.LastUpdatedBy,
	}
}
