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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository writes balanced entries to the asientos tables. It is
// the PERSIST-mode collaborator of the generator; the generator never hands it
// an unbalanced entry.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new ledger store adapter.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// PersistEntry writes the entry header and its lines in one transaction,
// refusing entries dated inside a closed period.
func (r *PgxLedgerRepository) PersistEntry(ctx context.Context, entry domain.GeneratedEntry) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	closed, err := r.isPeriodClosed(ctx, tx, entry.CompanyID, entry.Fecha)
	if err != nil {
		return 0, err
	}
	if closed {
		return 0, fmt.Errorf("%w: fecha %s", apperrors.ErrPeriodClosed, entry.Fecha.Format("2006-01-02"))
	}

	var asientoID int64
	headerQuery := `
		INSERT INTO asientos (company_id, evento_tipo, fecha, glosa, total_debe, total_haber, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING asiento_id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		entry.CompanyID, entry.EventoTipo, entry.Fecha, entry.Glosa,
		entry.TotalDebe, entry.TotalHaber, time.Now().UTC(), "motor-asientos",
	).Scan(&asientoID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert asiento: %w", err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO asiento_lineas (asiento_id, account_id, lado, monto, memo, orden)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for i, line := range entry.Lines {
		batch.Queue(lineQuery, asientoID, line.AccountID, string(line.Lado), line.Amount, line.Memo, i+1)
	}
	results := tx.SendBatch(ctx, batch)
	for range entry.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return 0, fmt.Errorf("failed to insert asiento lines: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close line batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return asientoID, nil
}

// FindEntryByID retrieves a persisted entry with its lines, joined with the
// chart of accounts for the line account code and name.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, companyID int64, asientoID int64) (*domain.GeneratedEntry, error) {
	headerQuery := `
		SELECT asiento_id, company_id, evento_tipo, fecha, glosa, total_debe, total_haber, created_at, created_by
		FROM asientos
		WHERE asiento_id = $1 AND company_id = $2;
	`
	rows, err := r.Pool.Query(ctx, headerQuery, asientoID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query asiento %d: %w", asientoID, err)
	}
	header, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Asiento])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asiento %d: %w", asientoID, err)
	}

	lineQuery := `
		SELECT l.linea_id, l.asiento_id, l.account_id, l.lado, l.monto, l.memo, l.orden,
		       c.code AS account_code, c.name AS account_name
		FROM asiento_lineas l
		JOIN cuentas c ON c.account_id = l.account_id
		WHERE l.asiento_id = $1
		ORDER BY l.orden;
	`
	lineRows, err := r.Pool.Query(ctx, lineQuery, asientoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of asiento %d: %w", asientoID, err)
	}
	type lineWithAccount struct {
		models.AsientoLinea
		AccountCode string `db:"account_code"`
		AccountName string `db:"account_name"`
	}
	lineModels, err := pgx.CollectRows(lineRows, pgx.RowToStructByName[lineWithAccount])
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of asiento %d: %w", asientoID, err)
	}

	lines := make([]domain.GeneratedLine, len(lineModels))
	for i, lm := range lineModels {
		lines[i] = domain.GeneratedLine{
			AccountID:   lm.AccountID,
			AccountCode: lm.AccountCode,
			AccountName: lm.AccountName,
			Lado:        domain.EntrySide(lm.Lado),
			Amount:      lm.Monto,
			Memo:        lm.Memo,
		}
	}

	var eventoNombre string
	nombreQuery := `SELECT nombre FROM eventos WHERE company_id = $1 AND tipo = $2;`
	if err := r.Pool.QueryRow(ctx, nombreQuery, companyID, header.EventoTipo).Scan(&eventoNombre); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to resolve event name for asiento %d: %w", asientoID, err)
	}

	return &domain.GeneratedEntry{
		CompanyID:    header.CompanyID,
		EventoTipo:   header.EventoTipo,
		EventoNombre: eventoNombre,
		Fecha:        header.Fecha,
		Glosa:        header.Glosa,
		Lines:        lines,
		TotalDebe:    header.TotalDebe,
		TotalHaber:   header.TotalHaber,
		Cuadra:       header.TotalDebe.Sub(header.TotalHaber).Abs().LessThan(domain.BalanceTolerance),
		Mode:         domain.ModePersist,
		AsientoID:    header.AsientoID,
	}, nil
}

// isPeriodClosed reports whether a closed period covers the entry date.
// Companies without period rows accept any date.
func (r *PgxLedgerRepository) isPeriodClosed(ctx context.Context, tx pgx.Tx, companyID int64, fecha time.Time) (bool, error) {
	query := `
		SELECT periodo_id, company_id, fecha_inicio, fecha_fin, cerrado
		FROM periodos
		WHERE company_id = $1 AND $2 BETWEEN fecha_inicio AND fecha_fin
		ORDER BY periodo_id DESC
		LIMIT 1;
	`
	rows, err := tx.Query(ctx, query, companyID, fecha)
	if err != nil {
		return false, fmt.Errorf("failed to query period for %s: %w", fecha.Format("2006-01-02"), err)
	}
	periodo, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Periodo])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check period for %s: %w", fecha.Format("2006-01-02"), err)
	}
	return periodo.Cerrado, nil
}
