package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tokenfund/crowdfund/internal/core/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAdapter() *MemoryAdapter {
	return NewMemoryAdapterWithClock(func() time.Time { return testNow })
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	for i, want := range []string{"project-0", "project-1", "project-2"} {
		c, err := store.Create(ctx, "owner", "Title", "Description", 1000, 24*time.Hour)
		if err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
		if c.ID != want {
			t.Errorf("expected id %s, got %s", want, c.ID)
		}
	}
}

func TestCreate_InitialState(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	c, err := store.Create(ctx, "owner", "Title", "Description", 1000, 24*time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if c.Status != domain.StatusActive {
		t.Errorf("expected active status, got %s", c.Status)
	}
	if c.CurrentAmount != 0 {
		t.Errorf("expected zero amount, got %d", c.CurrentAmount)
	}
	if len(c.Pledges) != 0 {
		t.Errorf("expected no pledges, got %d", len(c.Pledges))
	}
	if !c.CreatedAt.Equal(testNow) {
		t.Errorf("expected created_at %v, got %v", testNow, c.CreatedAt)
	}
	if !c.Deadline.Equal(testNow.Add(24 * time.Hour)) {
		t.Errorf("expected deadline %v, got %v", testNow.Add(24*time.Hour), c.Deadline)
	}
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	if _, err := store.Create(ctx, "owner", "  ", "Description", 1000, 24*time.Hour); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := store.Create(ctx, "owner", "Title", "", 1000, 24*time.Hour); !errors.Is(err, domain.ErrEmptyDescription) {
		t.Errorf("expected ErrEmptyDescription, got %v", err)
	}
	if _, err := store.Create(ctx, "owner", "Title", "Description", 0, 24*time.Hour); !errors.Is(err, domain.ErrZeroGoal) {
		t.Errorf("expected ErrZeroGoal, got %v", err)
	}
	if _, err := store.Create(ctx, "owner", "Title", "Description", 1000, 0); !errors.Is(err, domain.ErrZeroDuration) {
		t.Errorf("expected ErrZeroDuration, got %v", err)
	}

	// Nothing should have been inserted.
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d campaigns", len(all))
	}
}

func TestGet_NotFound(t *testing.T) {
	store := newTestAdapter()

	_, err := store.Get(context.Background(), "project-99")
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestGet_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	created, err := store.Create(ctx, "owner", "Title", "Description", 1000, 24*time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	snap, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}

	// Mutating the snapshot must not touch stored state.
	snap.CurrentAmount = 9999
	snap.Pledges = append(snap.Pledges, domain.Pledge{Contributor: "alice", Amount: 9999})

	stored, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.CurrentAmount != 0 || len(stored.Pledges) != 0 {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestReplace(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	created, err := store.Create(ctx, "owner", "Title", "Description", 1000, 24*time.Hour)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.CurrentAmount = 500
	created.Pledges = append(created.Pledges, domain.Pledge{Contributor: "alice", Amount: 500, Timestamp: testNow})
	if err := store.Replace(ctx, created.ID, created); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	stored, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.CurrentAmount != 500 || len(stored.Pledges) != 1 {
		t.Errorf("replace not committed: amount %d, pledges %d", stored.CurrentAmount, len(stored.Pledges))
	}
}

func TestReplace_NotFound(t *testing.T) {
	store := newTestAdapter()

	err := store.Replace(context.Background(), "project-99", domain.Campaign{ID: "project-99"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	store.Create(ctx, "alice", "A1", "Description", 1000, 24*time.Hour)
	store.Create(ctx, "bob", "B1", "Description", 1000, 24*time.Hour)
	store.Create(ctx, "alice", "A2", "Description", 1000, 24*time.Hour)

	mine, err := store.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("list by owner failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 campaigns for alice, got %d", len(mine))
	}
	for _, c := range mine {
		if c.Owner != "alice" {
			t.Errorf("unexpected owner %s", c.Owner)
		}
	}
}

func TestContributionsByUser(t *testing.T) {
	ctx := context.Background()
	store := newTestAdapter()

	first, _ := store.Create(ctx, "owner", "First", "Description", 1000, 24*time.Hour)
	second, _ := store.Create(ctx, "owner", "Second", "Description", 1000, 24*time.Hour)
	store.Create(ctx, "owner", "Third", "Description", 1000, 24*time.Hour)

	first.Pledges = []domain.Pledge{
		{Contributor: "alice", Amount: 300, Timestamp: testNow},
		{Contributor: "bob", Amount: 200, Timestamp: testNow},
		{Contributor: "alice", Amount: 100, Timestamp: testNow},
	}
	first.CurrentAmount = 600
	store.Replace(ctx, first.ID, first)

	second.Pledges = []domain.Pledge{{Contributor: "bob", Amount: 50, Timestamp: testNow}}
	second.CurrentAmount = 50
	store.Replace(ctx, second.ID, second)

	contributions, err := store.ContributionsByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("contributions failed: %v", err)
	}
	if len(contributions) != 1 {
		t.Fatalf("expected 1 campaign with alice contributions, got %d", len(contributions))
	}
	if contributions[0].ProjectID != first.ID {
		t.Errorf("expected project %s, got %s", first.ID, contributions[0].ProjectID)
	}
	if contributions[0].Total != 400 {
		t.Errorf("expected total 400, got %d", contributions[0].Total)
	}
}
