package services

import (
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/google/uuid"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/middleware"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
)

// eventService provides the event catalog operations.
type eventService struct {
	eventRepo portsrepo.EventRepositoryFacade
	catalog   *catalog.Catalog
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, cat *catalog.Catalog) portssvc.EventSvcFacade {
	return &eventService{
		eventRepo: eventRepo,
		catalog:   cat,
	}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// ListEvents lists a company's events, seeding the default catalog first when
// autoInit is set. Seeding only inserts events whose tipo is absent; existing
// rows, including user-edited nombre/descripcion/categoria, are never touched.
func (s *eventService) ListEvents(ctx context.Context, companyID int64, autoInit bool) ([]domain.Event, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if autoInit {
		now := time.Now().UTC()
		for _, def := range s.catalog.Eventos {
			event := domain.Event{
				EventID:     uuid.NewString(),
				CompanyID:   companyID,
				Tipo:        def.Tipo,
				Nombre:      def.Nombre,
				Descripcion: def.Descripcion,
				Categoria:   def.Categoria,
				Activo:      true,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     "catalog-init",
					LastUpdatedAt: now,
					LastUpdatedBy: "catalog-init",
				},
			}
			inserted, err := s.eventRepo.InsertEventIfAbsent(ctx, event)
			if err != nil {
				return nil, fmt.Errorf("failed to seed default event %s: %w", def.Tipo, err)
			}
			if inserted {
				logger.Info("Seeded default event", slog.String("tipo", def.Tipo), slog.Int64("company_id", companyID))
			}
		}
	}

	events, err := s.eventRepo.ListEvents(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

// CreateEvent creates a new event for the company.
func (s *eventService) CreateEvent(ctx context.Context, companyID int64, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	now := time.Now().UTC()
	event := domain.Event{
		EventID:     uuid.NewString(),
		CompanyID:   companyID,
		Tipo:        req.Tipo,
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Activo:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, err // repo reports ErrDuplicate for a taken tipo
	}
	return &event, nil
}

// UpdateEvent updates nombre/descripcion/categoria of an event.
func (s *eventService) UpdateEvent(ctx context.Context, companyID int64, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error) {
	event, err := s.findCompanyEvent(ctx, companyID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		event.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		event.Descripcion = *req.Descripcion
	}
	if req.Categoria != nil {
		event.Categoria = *req.Categoria
	}
	event.LastUpdatedAt = time.Now().UTC()
	event.LastUpdatedBy = updaterUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}
	return event, nil
}

// ToggleEventActive flips the activo flag. Events are never hard-deleted.
func (s *eventService) ToggleEventActive(ctx context.Context, companyID int64, eventID string, updaterUserID string) (*domain.Event, error) {
	event, err := s.findCompanyEvent(ctx, companyID, eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event.Activo = !event.Activo
	event.LastUpdatedAt = now
	event.LastUpdatedBy = updaterUserID

	if err := s.eventRepo.SetEventActive(ctx, eventID, event.Activo, updaterUserID, now); err != nil {
		return nil, fmt.Errorf("failed to toggle event %s: %w", eventID, err)
	}
	return event, nil
}

// findCompanyEvent loads an event and verifies it belongs to the company.
// Cross-tenant IDs are indistinguishable from missing ones.
func (s *eventService) findCompanyEvent(ctx context.Context, companyID int64, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return event, nil
}
