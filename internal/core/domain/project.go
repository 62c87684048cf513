package domain

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	StatusActive  ProjectStatus = "active"
	StatusFunded  ProjectStatus = "funded"
	StatusExpired ProjectStatus = "expired"
)

// UserID is an opaque caller identity supplied by the auth layer.
// The zero value is the anonymous caller.
type UserID string

const AnonymousUser UserID = ""

func (u UserID) IsAnonymous() bool {
	return u == AnonymousUser
}

type Pledge struct {
	Contributor UserID
	Amount      uint64
	Timestamp   time.Time
}

type Campaign struct {
	ID            string
	Owner         UserID
	Title         string
	Description   string
	FundingGoal   uint64
	CurrentAmount uint64
	Deadline      time.Time
	CreatedAt     time.Time
	Pledges       []Pledge
	Status        ProjectStatus
	// FundsReleased marks a funded campaign whose balance has been paid out
	// to the owner. The balance alone cannot encode this: it is also zero
	// before the first pledge.
	FundsReleased bool
}

// NextStatus computes the status a campaign must carry at time now. It is
// the single transition rule for both the pledge path and the expiry sweep.
// Transitions are monotonic: Funded and Expired are never left.
func NextStatus(c Campaign, now time.Time) ProjectStatus {
	if c.Status == StatusActive && now.After(c.Deadline) {
		return StatusExpired
	}
	if c.Status == StatusActive && c.CurrentAmount >= c.FundingGoal {
		return StatusFunded
	}
	return c.Status
}

// PledgedBy sums the amounts pledged by user, in contribution order.
func (c Campaign) PledgedBy(user UserID) uint64 {
	var total uint64
	for _, p := range c.Pledges {
		if p.Contributor == user {
			total += p.Amount
		}
	}
	return total
}

// ValidateNew checks the creation inputs for a campaign.
func ValidateNew(title, description string, goal uint64, duration time.Duration) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if goal == 0 {
		return ErrZeroGoal
	}
	if duration <= 0 {
		return ErrZeroDuration
	}
	return nil
}
