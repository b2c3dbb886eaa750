// Package api implements the gRPC adapter: HyperionApiServiceServer
// translating each RPC into a pkg/manager.Manager call and mapping its
// errors onto the gRPC status codes spec.md §6 specifies.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sagacious-labs/hyperion/api/proto"
	"github.com/sagacious-labs/hyperion/pkg/log"
	"github.com/sagacious-labs/hyperion/pkg/manager"
	"github.com/sagacious-labs/hyperion/pkg/metrics"
	"github.com/sagacious-labs/hyperion/pkg/types"
)

// Server implements proto.HyperionApiServiceServer over a Manager.
type Server struct {
	proto.UnimplementedHyperionApiServiceServer

	manager *manager.Manager
	grpc    *grpc.Server
	logger  zerolog.Logger
}

// NewServer returns a Server backed by mgr, with a metrics/logging unary
// interceptor installed.
func NewServer(mgr *manager.Manager) *Server {
	s := &Server{
		manager: mgr,
		logger:  log.WithComponent("api"),
	}
	s.grpc = grpc.NewServer(grpc.UnaryInterceptor(s.metricsInterceptor))
	proto.RegisterHyperionApiServiceServer(s.grpc, s)
	return s
}

// Serve listens on addr and blocks serving gRPC until Stop is called.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("api: listen: %w", err)
	}
	s.logger.Info().Str("addr", addr).Msg("gRPC server listening")
	return s.grpc.Serve(lis)
}

// Stop gracefully drains in-flight RPCs before returning.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

func (s *Server) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	timer := metrics.NewTimer()
	resp, err := handler(ctx, req)
	code := status.Code(err)
	metrics.APIRequestsTotal.WithLabelValues(info.FullMethod, code.String()).Inc()
	timer.ObserveDurationVec(metrics.APIRequestDuration, info.FullMethod)
	return resp, err
}

// Apply validates and forwards req to the Manager.
func (s *Server) Apply(ctx context.Context, req *proto.ApplyRequest) (*proto.ApplyResponse, error) {
	if req.GetModule() == nil {
		return nil, status.Error(codes.FailedPrecondition, "module is required")
	}
	msg, err := s.manager.Apply(protoToModule(req.Module))
	if err != nil {
		return nil, mapError(err)
	}
	return &proto.ApplyResponse{Msg: msg}, nil
}

// Delete validates and forwards req to the Manager.
func (s *Server) Delete(ctx context.Context, req *proto.DeleteRequest) (*proto.DeleteResponse, error) {
	if req.GetCore() == nil {
		return nil, status.Error(codes.FailedPrecondition, "core is required")
	}
	msg, err := s.manager.Delete(protoToCore(req.Core))
	if err != nil {
		return nil, mapError(err)
	}
	return &proto.DeleteResponse{Msg: msg}, nil
}

// List streams every module matching req.Filter to the caller.
func (s *Server) List(req *proto.ListRequest, stream proto.HyperionApiService_ListServer) error {
	if req.GetFilter() == nil {
		return status.Error(codes.FailedPrecondition, "filter is required")
	}

	out := make(chan types.Module, 16)
	go s.manager.List(protoToFilter(req.Filter), out)

	for m := range out {
		if err := stream.Send(moduleToProto(m)); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// Get validates and forwards req to the Manager.
func (s *Server) Get(ctx context.Context, req *proto.GetRequest) (*proto.Module, error) {
	if req.GetCore() == nil {
		return nil, status.Error(codes.FailedPrecondition, "core is required")
	}
	m, err := s.manager.Get(protoToCore(req.Core))
	if err != nil {
		return nil, mapError(err)
	}
	return moduleToProto(m), nil
}

// WatchData streams the module's data-topic payloads to the caller until
// the Manager closes the payload channel or a Send to the caller fails.
func (s *Server) WatchData(req *proto.WatchDataRequest, stream proto.HyperionApiService_WatchDataServer) error {
	if req.GetFilter() == nil {
		return status.Error(codes.FailedPrecondition, "filter is required")
	}
	core, ok := coreFromFilter(req.Filter)
	if !ok {
		return status.Error(codes.FailedPrecondition, "WatchData requires a core filter")
	}

	out := make(chan []byte, 16)
	go s.manager.WatchData(core, out)

	for data := range out {
		if err := stream.Send(&proto.WatchDataResponse{Data: data}); err != nil {
			return mapError(err)
		}
	}
	return nil
}

// WatchLog streams the module's log-topic payloads to the caller until
// the Manager closes the payload channel or a Send to the caller fails.
func (s *Server) WatchLog(req *proto.WatchLogRequest, stream proto.HyperionApiService_WatchLogServer) error {
	if req.GetFilter() == nil {
		return status.Error(codes.FailedPrecondition, "filter is required")
	}
	core, ok := coreFromFilter(req.Filter)
	if !ok {
		return status.Error(codes.FailedPrecondition, "WatchLog requires a core filter")
	}

	out := make(chan []byte, 16)
	go s.manager.WatchLog(core, out)

	for data := range out {
		if err := stream.Send(&proto.WatchLogResponse{Data: data}); err != nil {
			return mapError(err)
		}
	}
	return nil
}

func protoToFilter(f *proto.Filter) manager.Filter {
	if core := f.GetCore(); core != nil {
		c := protoToCore(core)
		return manager.Filter{Core: &c}
	}
	return manager.Filter{Label: protoToLabelSelector(f.GetLabel())}
}

// coreFromFilter extracts the ModuleCore variant of a Filter; WatchData
// and WatchLog only ever select by core, per spec.md §6.
func coreFromFilter(f *proto.Filter) (types.ModuleCore, bool) {
	core := f.GetCore()
	if core == nil {
		return types.ModuleCore{}, false
	}
	return protoToCore(core), true
}

// mapError translates a Manager error into a gRPC status per spec.md §7:
// NotFound maps to NotFound, InvalidModule maps to FailedPrecondition,
// everything else is an internal transport/command failure.
func mapError(err error) error {
	switch {
	case errors.Is(err, manager.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, manager.ErrInvalidModule):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
