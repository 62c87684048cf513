package port

import (
	"context"
	"time"

	"github.com/tokenfund/crowdfund/internal/core/domain"
)

// UserContribution pairs a campaign with the total a single user pledged
// into it.
type UserContribution struct {
	ProjectID string
	Campaign  domain.Campaign
	Total     uint64
}

// ProjectRepository is the authoritative campaign table. Reads return
// snapshots; a snapshot is committed back with Replace. The repository does
// not serialize settlement operations, that is the SettlementLock's job.
type ProjectRepository interface {
	// Create validates the inputs, assigns the next project id and inserts
	// a new active campaign.
	Create(ctx context.Context, owner domain.UserID, title, description string, goal uint64, duration time.Duration) (domain.Campaign, error)

	// Get returns a snapshot of the campaign or ErrProjectNotFound.
	Get(ctx context.Context, id string) (domain.Campaign, error)

	// List returns snapshots of all campaigns, order unspecified.
	List(ctx context.Context) ([]domain.Campaign, error)

	// ListByOwner returns the campaigns owned by user.
	ListByOwner(ctx context.Context, user domain.UserID) ([]domain.Campaign, error)

	// ContributionsByUser returns every campaign user pledged into, with the
	// per-campaign pledged total. Campaigns with a zero total are omitted.
	ContributionsByUser(ctx context.Context, user domain.UserID) ([]UserContribution, error)

	// Replace overwrites the stored campaign with the given snapshot.
	Replace(ctx context.Context, id string, c domain.Campaign) error
}
