package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/port"
)

var (
	ErrZeroAmount      = errors.New("contribution amount must be greater than zero")
	ErrAnonymousCaller = errors.New("anonymous callers cannot contribute")
	ErrNotActive       = errors.New("project is not active")
	ErrPeriodEnded     = errors.New("project funding period has ended")
	ErrProjectBusy     = errors.New("project has a settlement in flight, retry later")
	ErrNotFunded       = errors.New("project is not funded yet")
	ErrNotOwner        = errors.New("only the project owner can release funds")
	ErrFundsReleased   = errors.New("funds have already been released")
	ErrNotExpired      = errors.New("refunds are only available for expired projects")
	ErrNoContribution  = errors.New("no contribution found for this user")
)

// SettlementService drives the three operations that pair a campaign
// mutation with an external ledger transfer, plus the plain store
// operations and the expiry sweep.
//
// Every settlement follows the same shape: validate against a snapshot,
// mark the campaign busy, issue exactly one ledger call, and only on
// confirmed success commit a freshly re-read snapshot. A ledger failure
// leaves the store untouched.
type SettlementService struct {
	projects         port.ProjectRepository
	lock             port.SettlementLock
	ledger           port.LedgerClient
	custodialAccount string
	journalQueue     chan domain.SettlementRecord
	clock            func() time.Time
	logger           *slog.Logger
}

func NewSettlementService(projects port.ProjectRepository, lock port.SettlementLock, ledger port.LedgerClient, custodialAccount string, queueSize int, logger *slog.Logger) *SettlementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettlementService{
		projects:         projects,
		lock:             lock,
		ledger:           ledger,
		custodialAccount: custodialAccount,
		journalQueue:     make(chan domain.SettlementRecord, queueSize),
		clock:            time.Now,
		logger:           logger,
	}
}

// CreateProject inserts a new active campaign and returns it.
func (s *SettlementService) CreateProject(ctx context.Context, owner domain.UserID, title, description string, goal uint64, durationDays uint64) (domain.Campaign, error) {
	duration := time.Duration(durationDays) * 24 * time.Hour
	return s.projects.Create(ctx, owner, title, description, goal, duration)
}

func (s *SettlementService) GetProject(ctx context.Context, id string) (domain.Campaign, error) {
	return s.projects.Get(ctx, id)
}

func (s *SettlementService) ListProjects(ctx context.Context) ([]domain.Campaign, error) {
	return s.projects.List(ctx)
}

func (s *SettlementService) GetUserProjects(ctx context.Context, user domain.UserID) ([]domain.Campaign, error) {
	return s.projects.ListByOwner(ctx, user)
}

func (s *SettlementService) GetUserContributions(ctx context.Context, user domain.UserID) ([]port.UserContribution, error) {
	return s.projects.ContributionsByUser(ctx, user)
}

// Contribute transfers amount from the contributor to the custodial account
// and records the pledge. It returns the ledger's block index.
func (s *SettlementService) Contribute(ctx context.Context, projectID string, contributor domain.UserID, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrZeroAmount
	}
	if contributor.IsAnonymous() {
		return 0, ErrAnonymousCaller
	}

	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if p.Status != domain.StatusActive {
		return 0, fmt.Errorf("%w: current status %s", ErrNotActive, p.Status)
	}

	now := s.clock()
	if now.After(p.Deadline) {
		// The missed deadline is itself the authoritative expiry signal,
		// so this failure path does mutate state. If the campaign is busy
		// the flip is left to the sweep.
		if ok, err := s.lock.Acquire(ctx, projectID); err == nil && ok {
			s.flipExpired(ctx, projectID)
			s.releaseLock(ctx, projectID)
		}
		return 0, ErrPeriodEnded
	}

	ok, err := s.lock.Acquire(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("acquire busy marker: %w", err)
	}
	if !ok {
		return 0, ErrProjectBusy
	}
	defer s.releaseLock(ctx, projectID)

	block, err := s.ledger.Transfer(ctx, amount, s.custodialAccount, []byte(projectID))
	if err != nil {
		return 0, err
	}

	// Commit against a fresh snapshot; the store may have changed while the
	// ledger call was in flight.
	p, err = s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	p.CurrentAmount += amount
	p.Pledges = append(p.Pledges, domain.Pledge{
		Contributor: contributor,
		Amount:      amount,
		Timestamp:   now,
	})
	p.Status = domain.NextStatus(p, now)
	if err := s.projects.Replace(ctx, projectID, p); err != nil {
		return 0, err
	}

	s.journal(domain.SettlementPledge, projectID, contributor, amount, block)
	return block, nil
}

// ReleaseFunds transfers a funded campaign's full balance to its owner.
func (s *SettlementService) ReleaseFunds(ctx context.Context, projectID string, caller domain.UserID) (uint64, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if p.Status != domain.StatusFunded {
		return 0, fmt.Errorf("%w: current status %s", ErrNotFunded, p.Status)
	}
	if p.FundsReleased {
		return 0, ErrFundsReleased
	}
	if p.Owner != caller {
		return 0, ErrNotOwner
	}

	ok, err := s.lock.Acquire(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("acquire busy marker: %w", err)
	}
	if !ok {
		return 0, ErrProjectBusy
	}
	defer s.releaseLock(ctx, projectID)

	// Re-read under the busy marker: a pledge may have committed between
	// the precondition snapshot and the acquire, and the transfer must
	// cover exactly the balance being zeroed.
	p, err = s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	amount := p.CurrentAmount

	block, err := s.ledger.Transfer(ctx, amount, string(p.Owner), []byte(projectID))
	if err != nil {
		return 0, err
	}

	p, err = s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	p.CurrentAmount = 0
	p.FundsReleased = true
	if err := s.projects.Replace(ctx, projectID, p); err != nil {
		return 0, err
	}

	s.journal(domain.SettlementDisbursement, projectID, caller, amount, block)
	return block, nil
}

// ClaimRefund returns the caller's full pledged sum for an expired campaign
// and removes the caller's pledges from it.
func (s *SettlementService) ClaimRefund(ctx context.Context, projectID string, caller domain.UserID) (uint64, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	if p.Status != domain.StatusExpired {
		return 0, fmt.Errorf("%w: current status %s", ErrNotExpired, p.Status)
	}
	if p.PledgedBy(caller) == 0 {
		return 0, ErrNoContribution
	}

	ok, err := s.lock.Acquire(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("acquire busy marker: %w", err)
	}
	if !ok {
		return 0, ErrProjectBusy
	}
	defer s.releaseLock(ctx, projectID)

	p, err = s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	total := p.PledgedBy(caller)
	if total == 0 {
		return 0, ErrNoContribution
	}

	block, err := s.ledger.Transfer(ctx, total, string(caller), []byte(projectID))
	if err != nil {
		return 0, err
	}

	p, err = s.projects.Get(ctx, projectID)
	if err != nil {
		return 0, err
	}
	kept := p.Pledges[:0]
	for _, pl := range p.Pledges {
		if pl.Contributor != caller {
			kept = append(kept, pl)
		}
	}
	p.Pledges = kept
	p.CurrentAmount -= total
	if err := s.projects.Replace(ctx, projectID, p); err != nil {
		return 0, err
	}

	s.journal(domain.SettlementRefund, projectID, caller, total, block)
	return block, nil
}

// SweepExpired flips every active campaign past its deadline to expired.
// Campaigns mid-settlement are skipped; the next sweep catches them.
func (s *SettlementService) SweepExpired(ctx context.Context) {
	now := s.clock()

	campaigns, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("expiry sweep: list projects", "error", err)
		return
	}

	for _, c := range campaigns {
		if c.Status != domain.StatusActive || !now.After(c.Deadline) {
			continue
		}

		ok, err := s.lock.Acquire(ctx, c.ID)
		if err != nil {
			s.logger.Error("expiry sweep: acquire busy marker", "project_id", c.ID, "error", err)
			continue
		}
		if !ok {
			continue
		}
		s.flipExpired(ctx, c.ID)
		s.releaseLock(ctx, c.ID)
	}
}

// JournalQueue exposes the stream of confirmed settlements for the journal
// workers.
func (s *SettlementService) JournalQueue() <-chan domain.SettlementRecord {
	return s.journalQueue
}

// Close stops accepting settlements into the journal queue.
func (s *SettlementService) Close() {
	close(s.journalQueue)
}

// flipExpired re-reads the campaign and mutates only its status, so a stale
// snapshot never overwrites concurrently committed pledges.
func (s *SettlementService) flipExpired(ctx context.Context, projectID string) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		s.logger.Error("expire project: re-read", "project_id", projectID, "error", err)
		return
	}
	if p.Status != domain.StatusActive {
		return
	}
	p.Status = domain.StatusExpired
	if err := s.projects.Replace(ctx, projectID, p); err != nil {
		s.logger.Error("expire project: commit", "project_id", projectID, "error", err)
		return
	}
	s.logger.Info("project expired", "project_id", projectID)
}

func (s *SettlementService) releaseLock(ctx context.Context, projectID string) {
	if err := s.lock.Release(ctx, projectID); err != nil {
		s.logger.Error("release busy marker", "project_id", projectID, "error", err)
	}
}

func (s *SettlementService) journal(kind domain.SettlementKind, projectID string, actor domain.UserID, amount, blockIndex uint64) {
	s.journalQueue <- domain.SettlementRecord{
		ID:         uuid.New().String(),
		ProjectID:  projectID,
		Kind:       kind,
		Actor:      actor,
		Amount:     amount,
		BlockIndex: blockIndex,
		CreatedAt:  s.clock(),
	}
}
