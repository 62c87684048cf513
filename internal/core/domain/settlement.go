package domain

import "time"

type SettlementKind string

const (
	SettlementPledge       SettlementKind = "pledge"
	SettlementDisbursement SettlementKind = "disbursement"
	SettlementRefund       SettlementKind = "refund"
)

// SettlementRecord is the audit row written after a confirmed ledger
// transfer. BlockIndex is the ledger's confirmation handle and lets an
// operator reconcile the journal against the ledger's own records.
type SettlementRecord struct {
	ID         string
	ProjectID  string
	Kind       SettlementKind
	Actor      UserID
	Amount     uint64
	BlockIndex uint64
	CreatedAt  time.Time
}
