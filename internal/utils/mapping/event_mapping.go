package mapping

import (
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
)

// ToModelEvent converts a domain Event to its database model.
func ToModelEvent(e domain.Event) models.Event {
	return models.Event{
		EventID:     e.EventID,
		CompanyID:   e.CompanyID,
		Tipo:        e.Tipo,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		Categoria:   string(e.Categoria),
		Activo:      e.Activo,
		AuditFields: ToModelAuditFields(e.AuditFields),
	}
}

// ToDomainEvent converts a database Event model to its domain representation.
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:     m.EventID,
		CompanyID:   m.CompanyID,
		Tipo:        m.Tipo,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Categoria:   domain.EventCategory(m.Categoria),
		Activo:      m.Activo,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
