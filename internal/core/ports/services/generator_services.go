package services

import (
	"context"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
)

// GeneratorSvcFacade exposes the event-to-journal-entry generation pipeline.
type GeneratorSvcFacade interface {
	// Generate transforms one event occurrence into a balanced candidate
	// journal entry. In SIMULATE mode the entry is returned regardless of
	// whether it balances; in PERSIST mode an unbalanced entry fails before
	// the ledger store is touched.
	Generate(ctx context.Context, req dto.GenerateRequest, userID string) (*domain.GeneratedEntry, error)

	// GetEntry reads back a persisted entry with its lines.
	GetEntry(ctx context.Context, companyID int64, asientoID int64) (*domain.GeneratedEntry, error)
}
