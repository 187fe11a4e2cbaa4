package dto

import (
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// CreateEventRequest defines the data needed to create a new event.
type CreateEventRequest struct {
	Tipo        string               `json:"tipo" binding:"required"`
	Nombre      string               `json:"nombre" binding:"required"`
	Descripcion string               `json:"descripcion"`
	Categoria   domain.EventCategory `json:"categoria" binding:"required,oneof=GENERAL TESORERIA INVENTARIO COMPRAS VENTAS"`
}

// UpdateEventRequest defines the fields that may be changed on an event.
// Pointers distinguish "not provided" from zero values; Tipo is immutable.
type UpdateEventRequest struct {
	Nombre      *string               `json:"nombre"`
	Descripcion *string               `json:"descripcion"`
	Categoria   *domain.EventCategory `json:"categoria" binding:"omitempty,oneof=GENERAL TESORERIA INVENTARIO COMPRAS VENTAS"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID     string               `json:"event_id"`
	CompanyID   int64                `json:"company_id"`
	Tipo        string               `json:"tipo"`
	Nombre      string               `json:"nombre"`
	Descripcion string               `json:"descripcion"`
	Categoria   domain.EventCategory `json:"categoria"`
	Activo      bool                 `json:"activo"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToEventResponse converts a domain.Event to its response DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:     e.EventID,
		CompanyID:   e.CompanyID,
		Tipo:        e.Tipo,
		Nombre:      e.Nombre,
		Descripcion: e.Descripcion,
		Categoria:   e.Categoria,
		Activo:      e.Activo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ToEventResponses converts a slice of domain events.
func ToEventResponses(events []domain.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}
