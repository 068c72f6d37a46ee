// File: /rpc/server.go

// Package rpc is the remote-procedure adapter. It translates the gRPC wire
// shapes into the shared carbon service calls; internal failures map to an
// internal status with a descriptive message only.
package rpc

import (
	"context"
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"carbontrack-api/metrics"
	"carbontrack-api/models"
	"carbontrack-api/rpc/carbonpb"
	"carbontrack-api/services"
)

// CarbonServer implements carbonpb.CarbonFootprintServiceServer on top of
// the shared carbon service.
type CarbonServer struct {
	service *services.CarbonService
}

func NewCarbonServer(service *services.CarbonService) *CarbonServer {
	return &CarbonServer{service: service}
}

func (s *CarbonServer) CalculateCarbon(ctx context.Context, in *carbonpb.CalculateCarbonRequest) (*carbonpb.CalculateCarbonResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "calculate carbon request is required")
	}
	if in.UserId < 1 {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	input := activityInputFromProto(in)
	result, recordID, err := s.service.ComputeAndRecord(uint(in.UserId), "", input)
	if err != nil {
		log.Printf("grpc calculate carbon failed: %v", err)
		return nil, status.Error(codes.Internal, "failed to calculate and save carbon record")
	}
	metrics.CalculationsTotal.WithLabelValues("grpc").Inc()

	return &carbonpb.CalculateCarbonResponse{
		Total:     result.Total,
		Transport: result.Transport,
		Energy:    result.Energy,
		Food:      result.Food,
		Shopping:  result.Shopping,
		RecordId:  int64(recordID),
		Message:   "Carbon footprint calculated and saved",
	}, nil
}

func (s *CarbonServer) GetTotalCarbon(ctx context.Context, in *carbonpb.GetTotalCarbonRequest) (*carbonpb.GetTotalCarbonResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get total carbon request is required")
	}
	if in.UserId < 1 {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	total, err := s.service.TotalCarbon(uint(in.UserId), in.StartDate, in.EndDate)
	if err != nil {
		log.Printf("grpc get total carbon failed: %v", err)
		return nil, status.Error(codes.Internal, "failed to fetch total carbon")
	}

	return &carbonpb.GetTotalCarbonResponse{
		TotalCarbon: total,
		Message:     "Total carbon footprint fetched",
	}, nil
}

func (s *CarbonServer) GetBreakdown(ctx context.Context, in *carbonpb.GetBreakdownRequest) (*carbonpb.GetBreakdownResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get breakdown request is required")
	}
	if in.UserId < 1 {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}

	breakdown, err := s.service.Breakdown(uint(in.UserId), in.StartDate, in.EndDate)
	if err != nil {
		log.Printf("grpc get breakdown failed: %v", err)
		return nil, status.Error(codes.Internal, "failed to fetch carbon breakdown")
	}

	return &carbonpb.GetBreakdownResponse{
		TotalTransport: breakdown.TotalTransport,
		TotalEnergy:    breakdown.TotalEnergy,
		TotalFood:      breakdown.TotalFood,
		TotalShopping:  breakdown.TotalShopping,
		GrandTotal:     breakdown.GrandTotal,
		Message:        "Carbon breakdown fetched",
	}, nil
}

// Absent sub-messages count as zero activity, never as an error.
func activityInputFromProto(in *carbonpb.CalculateCarbonRequest) models.ActivityInput {
	var input models.ActivityInput
	if in.Transport != nil {
		input.Transport = models.TransportInput{
			CarKm:   in.Transport.CarKm,
			BusKm:   in.Transport.BusKm,
			TrainKm: in.Transport.TrainKm,
			PlaneKm: in.Transport.PlaneKm,
		}
	}
	if in.Energy != nil {
		input.Energy = models.EnergyInput{
			ElectricityHours: in.Energy.ElectricityHours,
			GasHours:         in.Energy.GasHours,
		}
	}
	if in.Food != nil {
		input.Food = models.FoodInput{
			MeatMeals:       int(in.Food.MeatMeals),
			VegetarianMeals: int(in.Food.VegetarianMeals),
		}
	}
	if in.Shopping != nil {
		input.Shopping = models.ShoppingInput{Amount: in.Shopping.Amount}
	}
	return input
}

// Server hosts the gRPC adapter on its own port.
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
}

func NewServer(port string, service *services.CarbonService) (*Server, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on grpc port %s: %w", port, err)
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(carbonpb.Codec{}))
	carbonpb.RegisterCarbonFootprintServiceServer(grpcServer, NewCarbonServer(service))

	return &Server{
		grpcServer: grpcServer,
		listener:   listener,
	}, nil
}

// Serve blocks until the server stops.
func (s *Server) Serve() error {
	log.Printf("gRPC server listening at %v", s.listener.Addr())
	return s.grpcServer.Serve(s.listener)
}

// Stop drains in-flight calls and shuts the server down.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}
