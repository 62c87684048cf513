package ledger

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tokenfund/crowdfund/internal/adapter/ledger/ledgerpb"
)

type stubLedgerServer struct {
	ledgerpb.UnimplementedLedgerServiceServer

	mu       sync.Mutex
	block    uint64
	requests []*ledgerpb.TransferRequest
	failWith error
}

func (s *stubLedgerServer) Transfer(ctx context.Context, req *ledgerpb.TransferRequest) (*ledgerpb.TransferResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	s.block++
	s.requests = append(s.requests, req)
	return &ledgerpb.TransferResponse{BlockIndex: s.block}, nil
}

func startStubLedger(t *testing.T) (string, *stubLedgerServer) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	stub := &stubLedgerServer{}
	srv := grpc.NewServer()
	ledgerpb.RegisterLedgerServiceServer(srv, stub)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), stub
}

func TestTransfer(t *testing.T) {
	addr, stub := startStubLedger(t)

	client, err := NewClient(addr)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	block, err := client.Transfer(context.Background(), 500, "custodial", []byte("project-0"))
	if err != nil {
		t.Fatalf("transfer failed: %v", err)
	}
	if block != 1 {
		t.Errorf("expected block index 1, got %d", block)
	}

	stub.mu.Lock()
	defer stub.mu.Unlock()
	if len(stub.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(stub.requests))
	}
	req := stub.requests[0]
	if req.GetAmount() != 500 || req.GetToAccount() != "custodial" || string(req.GetMemo()) != "project-0" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestTransfer_Rejected(t *testing.T) {
	addr, stub := startStubLedger(t)
	stub.failWith = status.Error(codes.InvalidArgument, "amount must be positive")

	client, err := NewClient(addr)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	_, err = client.Transfer(context.Background(), 0, "custodial", nil)
	if !errors.Is(err, ErrTransferRejected) {
		t.Errorf("expected ErrTransferRejected, got %v", err)
	}
}

func TestTransfer_Unavailable(t *testing.T) {
	// Reserve an address and close it so nothing is listening there.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := lis.Addr().String()
	lis.Close()

	client, err := NewClient(addr)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = client.Transfer(ctx, 100, "custodial", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
