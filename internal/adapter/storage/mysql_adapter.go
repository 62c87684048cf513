package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/port"
)

// MySQLAdapter persists the settlement journal: one row per confirmed
// ledger transfer. The journal is reconciliation data, not a second source
// of truth; the schema is append-only.
//
//	CREATE TABLE settlements (
//	    id          VARCHAR(36)  PRIMARY KEY,
//	    project_id  VARCHAR(64)  NOT NULL,
//	    kind        VARCHAR(16)  NOT NULL,
//	    actor       VARCHAR(128) NOT NULL,
//	    amount      BIGINT UNSIGNED NOT NULL,
//	    block_index BIGINT UNSIGNED NOT NULL,
//	    created_at  DATETIME(6)  NOT NULL,
//	    INDEX idx_settlements_project (project_id, created_at)
//	);
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) InsertSettlement(ctx context.Context, rec domain.SettlementRecord) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO settlements (id, project_id, kind, actor, amount, block_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.ProjectID, string(rec.Kind), string(rec.Actor),
		rec.Amount, rec.BlockIndex, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settlement: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) ListByProject(ctx context.Context, projectID string) ([]domain.SettlementRecord, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, project_id, kind, actor, amount, block_index, created_at
		FROM settlements WHERE project_id = ? ORDER BY created_at`, projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("query settlements: %w", err)
	}
	defer rows.Close()

	var out []domain.SettlementRecord
	for rows.Next() {
		var rec domain.SettlementRecord
		var kind, actor string
		if err := rows.Scan(&rec.ID, &rec.ProjectID, &kind, &actor,
			&rec.Amount, &rec.BlockIndex, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}
		rec.Kind = domain.SettlementKind(kind)
		rec.Actor = domain.UserID(actor)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlements: %w", err)
	}
	return out, nil
}

var _ port.JournalRepository = (*MySQLAdapter)(nil)
