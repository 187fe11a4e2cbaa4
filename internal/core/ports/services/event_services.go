package services

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
)

// EventSvcFacade exposes the event catalog operations.
type EventSvcFacade interface {
	// ListEvents lists a company's events. With autoInit the default catalog
	// is first seeded idempotently: missing events are inserted, existing
	// ones are never touched.
	ListEvents(ctx context.Context, companyID int64, autoInit bool) ([]domain.Event, error)

	// CreateEvent creates a new event. Fails with apperrors.ErrDuplicate when
	// the tipo already exists for the company.
	CreateEvent(ctx context.Context, companyID int64, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error)

	// UpdateEvent updates nombre/descripcion/categoria of an event.
	UpdateEvent(ctx context.Context, companyID int64, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error)

	// ToggleEventActive flips the activo flag and returns the updated event.
	ToggleEventActive(ctx context.Context, companyID int64, eventID string, updaterUserID string) (*domain.Event, error)
}
