package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/port"
)

// MemoryAdapter is the authoritative in-process campaign table: a keyed map
// plus a monotonic id counter. Every read hands out a deep copy, so callers
// only ever hold snapshots and the sole way to mutate stored state is
// Replace.
type MemoryAdapter struct {
	mu       sync.Mutex
	projects map[string]domain.Campaign
	counter  uint64
	now      func() time.Time
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		projects: make(map[string]domain.Campaign),
		now:      time.Now,
	}
}

// NewMemoryAdapterWithClock is for tests that need a deterministic clock.
func NewMemoryAdapterWithClock(now func() time.Time) *MemoryAdapter {
	a := NewMemoryAdapter()
	a.now = now
	return a
}

func (a *MemoryAdapter) Create(ctx context.Context, owner domain.UserID, title, description string, goal uint64, duration time.Duration) (domain.Campaign, error) {
	if err := domain.ValidateNew(title, description, goal, duration); err != nil {
		return domain.Campaign{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id := fmt.Sprintf("project-%d", a.counter)
	a.counter++

	now := a.now()
	c := domain.Campaign{
		ID:          id,
		Owner:       owner,
		Title:       title,
		Description: description,
		FundingGoal: goal,
		Deadline:    now.Add(duration),
		CreatedAt:   now,
		Status:      domain.StatusActive,
	}
	a.projects[id] = c

	return copyCampaign(c), nil
}

func (a *MemoryAdapter) Get(ctx context.Context, id string) (domain.Campaign, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.projects[id]
	if !ok {
		return domain.Campaign{}, domain.ErrProjectNotFound
	}
	return copyCampaign(c), nil
}

func (a *MemoryAdapter) List(ctx context.Context) ([]domain.Campaign, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Campaign, 0, len(a.projects))
	for _, c := range a.projects {
		out = append(out, copyCampaign(c))
	}
	return out, nil
}

func (a *MemoryAdapter) ListByOwner(ctx context.Context, user domain.UserID) ([]domain.Campaign, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []domain.Campaign
	for _, c := range a.projects {
		if c.Owner == user {
			out = append(out, copyCampaign(c))
		}
	}
	return out, nil
}

func (a *MemoryAdapter) ContributionsByUser(ctx context.Context, user domain.UserID) ([]port.UserContribution, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []port.UserContribution
	for id, c := range a.projects {
		total := c.PledgedBy(user)
		if total == 0 {
			continue
		}
		out = append(out, port.UserContribution{
			ProjectID: id,
			Campaign:  copyCampaign(c),
			Total:     total,
		})
	}
	return out, nil
}

func (a *MemoryAdapter) Replace(ctx context.Context, id string, c domain.Campaign) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	a.projects[id] = copyCampaign(c)
	return nil
}

func copyCampaign(c domain.Campaign) domain.Campaign {
	out := c
	out.Pledges = make([]domain.Pledge, len(c.Pledges))
	copy(out.Pledges, c.Pledges)
	return out
}

var _ port.ProjectRepository = (*MemoryAdapter)(nil)
