package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/tokenfund/crowdfund/internal/adapter/handler"
	"github.com/tokenfund/crowdfund/internal/adapter/ledger"
	"github.com/tokenfund/crowdfund/internal/adapter/storage"
	"github.com/tokenfund/crowdfund/internal/config"
	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/core/service"
	"github.com/tokenfund/crowdfund/internal/port"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Settlement journal storage.
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.Error("open mysql", "error", err)
		os.Exit(1)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping mysql", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to mysql")
	journal := storage.NewMySQLAdapter(db)

	// Busy markers: shared via Redis when configured, in-process otherwise.
	var lock port.SettlementLock
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("ping redis", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to redis")
		lock = storage.NewRedisLock(rdb)
	} else {
		lock = storage.NewMemoryLock()
	}

	ledgerClient, err := ledger.NewClient(cfg.LedgerAddr)
	if err != nil {
		logger.Error("connect ledger", "error", err)
		os.Exit(1)
	}

	projects := storage.NewMemoryAdapter()
	settlement := service.NewSettlementService(projects, lock, ledgerClient, cfg.CustodialAccount, cfg.QueueSize, logger)

	// Journal worker pool.
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			journalLoop(id, settlement.JournalQueue(), journal, logger)
		}(i)
	}
	logger.Info("started journal workers", "count", cfg.WorkerCount)

	// Expiry sweeper.
	sweeper := service.NewSweeper(settlement, cfg.SweepInterval, logger)
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	var sweepWg sync.WaitGroup
	sweepWg.Add(1)
	go func() {
		defer sweepWg.Done()
		sweeper.Run(sweepCtx)
	}()

	// HTTP server.
	httpHandler := handler.NewHTTPHandler(settlement)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.NewRouter(httpHandler, logger),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("http server", "error", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	logger.Info("http server stopped")

	stopSweeper()
	sweepWg.Wait()

	settlement.Close()
	wg.Wait()
	logger.Info("journal workers stopped")

	ledgerClient.Close()
	if rdb != nil {
		rdb.Close()
	}
	db.Close()
	logger.Info("connections closed")
}

func journalLoop(id int, queue <-chan domain.SettlementRecord, journal port.JournalRepository, logger *slog.Logger) {
	for rec := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := journal.InsertSettlement(ctx, rec); err != nil {
			// Best effort: the settlement already happened; the journal is
			// reconciliation data only.
			logger.Error("journal settlement",
				"worker", id,
				"settlement_id", rec.ID,
				"project_id", rec.ProjectID,
				"error", err,
			)
		} else {
			logger.Info("journaled settlement",
				"worker", id,
				"settlement_id", rec.ID,
				"project_id", rec.ProjectID,
				"kind", rec.Kind,
				"amount", rec.Amount,
				"block_index", rec.BlockIndex,
			)
		}

		cancel()
	}
}
