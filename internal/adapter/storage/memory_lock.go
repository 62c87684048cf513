package storage

import (
	"context"
	"sync"

	"github.com/tokenfund/crowdfund/internal/port"
)

// MemoryLock is the in-process busy marker set, for single-instance
// deployments and tests.
type MemoryLock struct {
	mu   sync.Mutex
	busy map[string]bool
}

func NewMemoryLock() *MemoryLock {
	return &MemoryLock{busy: make(map[string]bool)}
}

func (l *MemoryLock) Acquire(ctx context.Context, projectID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.busy[projectID] {
		return false, nil
	}
	l.busy[projectID] = true
	return true, nil
}

func (l *MemoryLock) Release(ctx context.Context, projectID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.busy, projectID)
	return nil
}

var _ port.SettlementLock = (*MemoryLock)(nil)
