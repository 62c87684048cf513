package port

import "context"

// SettlementLock is the per-campaign busy marker. A settlement operation
// acquires it before its ledger call and releases it once the call has
// resolved, so at most one operation per campaign is ever awaiting the
// ledger.
type SettlementLock interface {
	// Acquire marks projectID busy, returning false if it already is.
	Acquire(ctx context.Context, projectID string) (bool, error)

	// Release clears the marker set by a prior Acquire.
	Release(ctx context.Context, projectID string) error
}
