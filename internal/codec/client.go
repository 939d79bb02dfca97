package codec

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/field"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region client-struct
// Client calls a remote Comparator.
type Client struct {
	conn   *grpc.ClientConn
	invoke grpc.ClientConnInterface
}

// #endregion client-struct

// #region constructor
// NewClient connects to a comparator server.
func NewClient(addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{conn: conn, invoke: conn}, nil
}

// NewClientWithConn wraps an existing connection; Close is then a no-op.
func NewClientWithConn(cc grpc.ClientConnInterface) *Client {
	return &Client{invoke: cc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region compare
// Compare asks the server for every protocol result of a against b.
func (c *Client) Compare(ctx context.Context, a, b field.Field) (Comparison, error) {
	ea, err := Encode(a)
	if err != nil {
		return Comparison{}, fmt.Errorf("encode a: %w", err)
	}
	eb, err := Encode(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("encode b: %w", err)
	}
	req := &structpb.Struct{Fields: map[string]*structpb.Value{
		keyA: structpb.NewStructValue(ea),
		keyB: structpb.NewStructValue(eb),
	}}

	resp := new(structpb.Struct)
	if err := c.invoke.Invoke(ctx, compareMethod, req, resp); err != nil {
		return Comparison{}, fmt.Errorf("grpc compare: %w", err)
	}
	return DecodeComparison(resp)
}

// #endregion compare
