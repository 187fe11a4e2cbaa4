package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/models"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event catalog data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, company_id, tipo, nombre, descripcion, categoria, activo, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.CollectableRow) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.CompanyID,
		&m.Tipo,
		&m.Nombre,
		&m.Descripcion,
		&m.Categoria,
		&m.Activo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEventByID retrieves an event by its unique identifier.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM eventos WHERE event_id = $1;`
	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event %s: %w", eventID, err)
	}
	m, err := pgx.CollectOneRow(rows, scanEvent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// FindEventByTipo retrieves an event by its (company, tipo) key.
func (r *PgxEventRepository) FindEventByTipo(ctx context.Context, companyID int64, tipo string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM eventos WHERE company_id = $1 AND tipo = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, tipo)
	if err != nil {
		return nil, fmt.Errorf("failed to query event %s: %w", tipo, err)
	}
	m, err := pgx.CollectOneRow(rows, scanEvent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", tipo, err)
	}
	event := mapping.ToDomainEvent(m)
	return &event, nil
}

// ListEvents retrieves all events of a company ordered by tipo.
func (r *PgxEventRepository) ListEvents(ctx context.Context, companyID int64) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM eventos WHERE company_id = $1 ORDER BY tipo;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	modelEvents, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}

	events := make([]domain.Event, len(modelEvents))
	for i, m := range modelEvents {
		events[i] = mapping.ToDomainEvent(m)
	}
	return events, nil
}

// SaveEvent inserts a new event, reporting ErrDuplicate on a taken tipo.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO eventos (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.CompanyID, m.Tipo, m.Nombre, m.Descripcion, m.Categoria, m.Activo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: evento %q ya existe", apperrors.ErrDuplicate, m.Tipo)
		}
		return fmt.Errorf("failed to save event %s: %w", m.Tipo, err)
	}
	return nil
}

// InsertEventIfAbsent inserts an event unless its (company, tipo) key exists.
// Existing rows are never modified, so user edits survive re-initialization.
func (r *PgxEventRepository) InsertEventIfAbsent(ctx context.Context, event domain.Event) (bool, error) {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO eventos (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (company_id, tipo) DO NOTHING;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EventID, m.CompanyID, m.Tipo, m.Nombre, m.Descripcion, m.Categoria, m.Activo,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert event %s: %w", m.Tipo, err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateEvent updates the mutable fields of an event.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		UPDATE eventos
		SET nombre = $2, descripcion = $3, categoria = $4, last_updated_at = $5, last_updated_by = $6
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Nombre, m.Descripcion, m.Categoria, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetEventActive flips the activo flag of an event.
func (r *PgxEventRepository) SetEventActive(ctx context.Context, eventID string, activo bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE eventos
		SET activo = $2, last_updated_at = $3, last_updated_by = $4
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, eventID, activo, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set event %s active=%t: %w", eventID, activo, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
