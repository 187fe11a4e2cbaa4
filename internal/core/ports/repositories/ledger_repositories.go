package repositories

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
)

// LedgerWriter is the ledger-store collaborator used in PERSIST mode. The
// generator only ever hands over entries that already balance.
type LedgerWriter interface {
	// PersistEntry writes the entry header and its lines in one database
	// transaction and returns the assigned asiento ID. Returns
	// apperrors.ErrPeriodClosed when the entry date falls in a closed period;
	// such errors are surfaced to the caller unchanged.
	PersistEntry(ctx context.Context, entry domain.GeneratedEntry) (int64, error)
}

// LedgerReader reads back persisted entries.
type LedgerReader interface {
	// FindEntryByID retrieves a persisted entry with its lines. Returns
	// apperrors.ErrNotFound when the entry does not exist or belongs to
	// another company.
	FindEntryByID(ctx context.Context, companyID int64, asientoID int64) (*domain.GeneratedEntry, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerWriter
	LedgerReader
}
