package repositories

import (
	"context"
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// EventReader defines read operations for event catalog data.
type EventReader interface {
	// FindEventByID retrieves an event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// FindEventByTipo retrieves an event by its (company, tipo) key.
	// Returns apperrors.ErrNotFound when no such event exists.
	FindEventByTipo(ctx context.Context, companyID int64, tipo string) (*domain.Event, error)

	// ListEvents retrieves all events of a company ordered by tipo.
	ListEvents(ctx context.Context, companyID int64) ([]domain.Event, error)
}

// EventWriter defines write operations for event catalog data.
type EventWriter interface {
	// SaveEvent inserts a new event. Returns apperrors.ErrDuplicate when the
	// (company, tipo) key already exists.
	SaveEvent(ctx context.Context, event domain.Event) error

	// InsertEventIfAbsent inserts an event unless its (company, tipo) key
	// already exists, reporting whether a row was inserted. Existing rows are
	// never modified, so user edits survive re-initialization.
	InsertEventIfAbsent(ctx context.Context, event domain.Event) (bool, error)

	// UpdateEvent updates the mutable fields of an event.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// SetEventActive flips the activo flag of an event.
	SetEventActive(ctx context.Context, eventID string, activo bool, updatedBy string, updatedAt time.Time) error
}

// EventRepositoryFacade combines all event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
