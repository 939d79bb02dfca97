package codec

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielpatrickdp/evalfield/internal/field"
	"github.com/danielpatrickdp/evalfield/internal/logging"
	"github.com/danielpatrickdp/evalfield/internal/ternary"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// #region service-desc
const (
	serviceName   = "evalfield.Comparator"
	compareMethod = "/" + serviceName + "/Compare"
)

// ComparatorServer answers remote comparison requests.
type ComparatorServer interface {
	Compare(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

func compareHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparatorServer).Compare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: compareMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ComparatorServer).Compare(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var comparatorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*ComparatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Compare", Handler: compareHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "evalfield/comparator",
}

// RegisterComparator attaches srv to a gRPC server.
func RegisterComparator(s grpc.ServiceRegistrar, srv ComparatorServer) {
	s.RegisterService(&comparatorServiceDesc, srv)
}

// #endregion service-desc

// #region metrics
// Metrics counts comparisons by left-hand kind and outcome.
type Metrics struct {
	Comparisons *prometheus.CounterVec
	Failures    *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evalfield",
			Name:      "comparisons_total",
			Help:      "Remote comparisons served, by kind of the left operand and outcome.",
		}, []string{"kind", "outcome"}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "evalfield",
			Name:      "comparison_failures_total",
			Help:      "Comparison requests rejected before evaluation.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.Comparisons, m.Failures)
	return m
}

// #endregion metrics

// #region server
// Server evaluates the dominance protocol for decoded field pairs.
type Server struct {
	metrics *Metrics
	log     *slog.Logger
}

func NewServer(metrics *Metrics) *Server {
	return &Server{metrics: metrics, log: logging.New("codec")}
}

// Compare decodes fields "a" and "b" and returns every protocol result of a against b.
func (s *Server) Compare(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, err := decodeOperand(req, keyA)
	if err != nil {
		s.fail("decode")
		return nil, status.Errorf(codes.InvalidArgument, "decode %s: %v", keyA, err)
	}
	b, err := decodeOperand(req, keyB)
	if err != nil {
		s.fail("decode")
		return nil, status.Errorf(codes.InvalidArgument, "decode %s: %v", keyB, err)
	}

	c, err := Compare(a, b)
	if err != nil {
		s.fail("compare")
		return nil, status.Errorf(codes.Internal, "compare: %v", err)
	}

	outcome := "ordered"
	if c.Uncomparable {
		outcome = "uncomparable"
	}
	if s.metrics != nil {
		s.metrics.Comparisons.WithLabelValues(a.Kind().String(), outcome).Inc()
	}
	s.log.Debug("compare", "a", a.String(), "b", b.String(), "outcome", outcome)
	return EncodeComparison(c)
}

func (s *Server) fail(reason string) {
	if s.metrics != nil {
		s.metrics.Failures.WithLabelValues(reason).Inc()
	}
}

func decodeOperand(req *structpb.Struct, key string) (field.Field, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, ErrBadMessage
	}
	return Decode(v.GetStructValue())
}

// #endregion server

// #region comparison-wire
// EncodeComparison renders c as a response message.
func EncodeComparison(c Comparison) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		keyAtLeast:      c.AtLeast.String(),
		keyAtMost:       c.AtMost.String(),
		keyEqual:        c.Equal.String(),
		keyDifferent:    c.Different.String(),
		keyOrder:        c.Order,
		keyUncomparable: c.Uncomparable,
	})
}

// DecodeComparison reads a response message produced by EncodeComparison.
func DecodeComparison(s *structpb.Struct) (Comparison, error) {
	m := s.AsMap()
	var c Comparison
	for key, dst := range map[string]*ternary.Value{
		keyAtLeast: &c.AtLeast, keyAtMost: &c.AtMost, keyEqual: &c.Equal, keyDifferent: &c.Different,
	} {
		text, _ := m[key].(string)
		v, err := ternary.Parse(text)
		if err != nil {
			return Comparison{}, fmt.Errorf("decode %s: %w", key, err)
		}
		*dst = v
	}
	order, _ := m[keyOrder].(float64)
	c.Order = int(order)
	c.Uncomparable, _ = m[keyUncomparable].(bool)
	return c, nil
}

// #endregion comparison-wire
