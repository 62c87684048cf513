package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tokenfund/crowdfund/internal/adapter/ledger"
	"github.com/tokenfund/crowdfund/internal/adapter/storage"
	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/core/service"
)

const (
	goal          = 1_000_000
	pledgeAmount  = 100
	totalRequests = 200
	queueSize     = 1024
)

// loadtest hammers a single campaign with concurrent contributions through
// a real ledger connection (run cmd/mockledger first) and checks that the
// committed amount matches the ledger-confirmed transfers exactly.
func main() {
	ledgerAddr := flag.String("ledger", "localhost:50051", "ledger grpc address")
	flag.Parse()

	ctx := context.Background()

	ledgerClient, err := ledger.NewClient(*ledgerAddr)
	if err != nil {
		log.Fatalf("connect ledger: %v", err)
	}
	defer ledgerClient.Close()

	projects := storage.NewMemoryAdapter()
	svc := service.NewSettlementService(projects, storage.NewMemoryLock(), ledgerClient, "loadtest-custodial", queueSize, nil)
	defer svc.Close()

	// Drain the journal queue in background.
	go func() {
		for range svc.JournalQueue() {
		}
	}()

	campaign, err := svc.CreateProject(ctx, "loadtest-owner", "Load Test", "concurrent contribution storm", goal, 1)
	if err != nil {
		log.Fatalf("create project: %v", err)
	}

	var successCount atomic.Int32
	var busyCount atomic.Int32
	var failCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()

			contributor := domain.UserID(fmt.Sprintf("user-%d", userID))
			_, err := svc.Contribute(ctx, campaign.ID, contributor, pledgeAmount)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, service.ErrProjectBusy):
				busyCount.Add(1)
			default:
				failCount.Add(1)
				log.Printf("contribute: %v", err)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	final, err := svc.GetProject(ctx, campaign.ID)
	if err != nil {
		log.Fatalf("get project: %v", err)
	}

	success := successCount.Load()

	fmt.Println("========== LOAD TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Busy Rejections:  %d\n", busyCount.Load())
	fmt.Printf("Failures:         %d\n", failCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Printf("Final Amount:     %d\n", final.CurrentAmount)
	fmt.Printf("Pledge Count:     %d\n", len(final.Pledges))
	fmt.Println("=======================================")

	if final.CurrentAmount == uint64(success)*pledgeAmount && len(final.Pledges) == int(success) {
		fmt.Println("PASS: committed amount matches confirmed transfers")
	} else {
		fmt.Printf("FAIL: expected amount %d with %d pledges\n", uint64(success)*pledgeAmount, success)
	}
}
