package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tokenfund/crowdfund/internal/adapter/ledger/ledgerpb"
)

// mockledger is a stand-in token ledger for local runs and load tests. It
// credits every transfer to an in-memory balance table and hands out
// monotonically increasing block indexes.
type ledgerServer struct {
	ledgerpb.UnimplementedLedgerServiceServer

	mu         sync.Mutex
	balances   map[string]uint64
	blockIndex uint64
	logger     *slog.Logger
}

func (s *ledgerServer) Transfer(ctx context.Context, req *ledgerpb.TransferRequest) (*ledgerpb.TransferResponse, error) {
	if req.GetAmount() == 0 {
		return nil, status.Error(codes.InvalidArgument, "transfer amount must be greater than zero")
	}
	if req.GetToAccount() == "" {
		return nil, status.Error(codes.InvalidArgument, "destination account is required")
	}

	s.mu.Lock()
	s.blockIndex++
	block := s.blockIndex
	s.balances[req.GetToAccount()] += req.GetAmount()
	balance := s.balances[req.GetToAccount()]
	s.mu.Unlock()

	s.logger.Info("transfer",
		"amount", req.GetAmount(),
		"to_account", req.GetToAccount(),
		"memo", string(req.GetMemo()),
		"block_index", block,
		"balance", balance,
	)

	return &ledgerpb.TransferResponse{BlockIndex: block}, nil
}

func main() {
	addr := flag.String("addr", ":50051", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Error("listen", "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	ledgerpb.RegisterLedgerServiceServer(grpcServer, &ledgerServer{
		balances: make(map[string]uint64),
		logger:   logger,
	})

	logger.Info("mock ledger listening", "addr", *addr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}
