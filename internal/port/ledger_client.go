package port

import "context"

// LedgerClient reaches the external token ledger. Transfer moves amount to
// the destination account and returns the ledger's block index as the
// confirmation handle. The memo is an opaque reconciliation tag recorded on
// the ledger side.
type LedgerClient interface {
	Transfer(ctx context.Context, amount uint64, toAccount string, memo []byte) (uint64, error)
}
