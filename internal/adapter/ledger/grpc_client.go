package ledger

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/tokenfund/crowdfund/internal/adapter/ledger/ledgerpb"
	"github.com/tokenfund/crowdfund/internal/port"
)

var (
	// ErrUnavailable means the ledger could not be reached at all.
	ErrUnavailable = errors.New("ledger unavailable")
	// ErrTransferRejected means the ledger processed the call and refused
	// the transfer.
	ErrTransferRejected = errors.New("ledger rejected transfer")
)

// Client is the gRPC adapter for the external token ledger.
type Client struct {
	conn   *grpc.ClientConn
	client ledgerpb.LedgerServiceClient
}

// NewClient connects to the ledger at endpoint. The connection is lazy; the
// first Transfer observes any dial problem.
func NewClient(endpoint string) (*Client, error) {
	conn, err := grpc.NewClient(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial ledger grpc: %w", err)
	}
	return &Client{conn: conn, client: ledgerpb.NewLedgerServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Transfer issues exactly one transfer call. Transport-level failures wrap
// ErrUnavailable; anything the ledger itself refused wraps
// ErrTransferRejected. Callers treat both opaquely.
func (c *Client) Transfer(ctx context.Context, amount uint64, toAccount string, memo []byte) (uint64, error) {
	resp, err := c.client.Transfer(ctx, &ledgerpb.TransferRequest{
		Amount:    amount,
		ToAccount: toAccount,
		Memo:      memo,
	})
	if err != nil {
		st, ok := status.FromError(err)
		if !ok || transportCode(st.Code()) {
			return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return 0, fmt.Errorf("%w: %s", ErrTransferRejected, st.Message())
	}
	return resp.GetBlockIndex(), nil
}

func transportCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return true
	}
	return false
}

var _ port.LedgerClient = (*Client)(nil)
