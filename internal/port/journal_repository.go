package port

import (
	"context"

	"github.com/tokenfund/crowdfund/internal/core/domain"
)

// JournalRepository persists confirmed ledger transfers for out-of-band
// reconciliation. Writes are best-effort: a failed insert is logged by the
// worker, never retried, and never rolls back the settlement it records.
type JournalRepository interface {
	InsertSettlement(ctx context.Context, rec domain.SettlementRecord) error

	// ListByProject returns the journal rows for a project, oldest first.
	ListByProject(ctx context.Context, projectID string) ([]domain.SettlementRecord, error)
}
