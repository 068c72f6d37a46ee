// File: /rpc/carbonpb/carbonpb.go

// Package carbonpb holds the wire types, codec and service descriptor for
// the carbonfootprint.CarbonFootprintService API described in
// proto/carbon.proto. The stubs are hand-maintained and exchanged with a
// JSON codec, so the proto file stays the contract document without a
// protoc build step.
package carbonpb

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	ServiceName = "carbonfootprint.CarbonFootprintService"

	CalculateCarbonFullMethod = "/carbonfootprint.CarbonFootprintService/CalculateCarbon"
	GetTotalCarbonFullMethod  = "/carbonfootprint.CarbonFootprintService/GetTotalCarbon"
	GetBreakdownFullMethod    = "/carbonfootprint.CarbonFootprintService/GetBreakdown"
)

// Codec serializes the wire types as JSON. It is registered under the
// "json" content subtype and forced on the server side.
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return "json"
}

func init() {
	encoding.RegisterCodec(Codec{})
}

type TransportActivity struct {
	CarKm   float64 `json:"car_km"`
	BusKm   float64 `json:"bus_km"`
	TrainKm float64 `json:"train_km"`
	PlaneKm float64 `json:"plane_km"`
}

type EnergyActivity struct {
	ElectricityHours float64 `json:"electricity_hours"`
	GasHours         float64 `json:"gas_hours"`
}

type FoodActivity struct {
	MeatMeals       int32 `json:"meat_meals"`
	VegetarianMeals int32 `json:"vegetarian_meals"`
}

type ShoppingActivity struct {
	Amount float64 `json:"amount"`
}

type CalculateCarbonRequest struct {
	UserId    int64              `json:"user_id"`
	Transport *TransportActivity `json:"transport,omitempty"`
	Energy    *EnergyActivity    `json:"energy,omitempty"`
	Food      *FoodActivity      `json:"food,omitempty"`
	Shopping  *ShoppingActivity  `json:"shopping,omitempty"`
}

type CalculateCarbonResponse struct {
	Total     float64 `json:"total"`
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
	Food      float64 `json:"food"`
	Shopping  float64 `json:"shopping"`
	RecordId  int64   `json:"record_id"`
	Message   string  `json:"message"`
}

type GetTotalCarbonRequest struct {
	UserId    int64  `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetTotalCarbonResponse struct {
	TotalCarbon float64 `json:"total_carbon"`
	Message     string  `json:"message"`
}

type GetBreakdownRequest struct {
	UserId    int64  `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type GetBreakdownResponse struct {
	TotalTransport float64 `json:"total_transport"`
	TotalEnergy    float64 `json:"total_energy"`
	TotalFood      float64 `json:"total_food"`
	TotalShopping  float64 `json:"total_shopping"`
	GrandTotal     float64 `json:"grand_total"`
	Message        string  `json:"message"`
}

// CarbonFootprintServiceServer is the server API for the carbon service.
type CarbonFootprintServiceServer interface {
	CalculateCarbon(context.Context, *CalculateCarbonRequest) (*CalculateCarbonResponse, error)
	GetTotalCarbon(context.Context, *GetTotalCarbonRequest) (*GetTotalCarbonResponse, error)
	GetBreakdown(context.Context, *GetBreakdownRequest) (*GetBreakdownResponse, error)
}

func RegisterCarbonFootprintServiceServer(s grpc.ServiceRegistrar, srv CarbonFootprintServiceServer) {
	s.RegisterService(&CarbonFootprintService_ServiceDesc, srv)
}

func _CarbonFootprintService_CalculateCarbon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateCarbonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonFootprintServiceServer).CalculateCarbon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalculateCarbonFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonFootprintServiceServer).CalculateCarbon(ctx, req.(*CalculateCarbonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonFootprintService_GetTotalCarbon_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTotalCarbonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonFootprintServiceServer).GetTotalCarbon(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetTotalCarbonFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonFootprintServiceServer).GetTotalCarbon(ctx, req.(*GetTotalCarbonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonFootprintService_GetBreakdown_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBreakdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonFootprintServiceServer).GetBreakdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetBreakdownFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonFootprintServiceServer).GetBreakdown(ctx, req.(*GetBreakdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var CarbonFootprintService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CarbonFootprintServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculateCarbon",
			Handler:    _CarbonFootprintService_CalculateCarbon_Handler,
		},
		{
			MethodName: "GetTotalCarbon",
			Handler:    _CarbonFootprintService_GetTotalCarbon_Handler,
		},
		{
			MethodName: "GetBreakdown",
			Handler:    _CarbonFootprintService_GetBreakdown_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/carbon.proto",
}

// CarbonFootprintServiceClient is the client API for the carbon service.
type CarbonFootprintServiceClient interface {
	CalculateCarbon(ctx context.Context, in *CalculateCarbonRequest, opts ...grpc.CallOption) (*CalculateCarbonResponse, error)
	GetTotalCarbon(ctx context.Context, in *GetTotalCarbonRequest, opts ...grpc.CallOption) (*GetTotalCarbonResponse, error)
	GetBreakdown(ctx context.Context, in *GetBreakdownRequest, opts ...grpc.CallOption) (*GetBreakdownResponse, error)
}

type carbonFootprintServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCarbonFootprintServiceClient(cc grpc.ClientConnInterface) CarbonFootprintServiceClient {
	return &carbonFootprintServiceClient{cc: cc}
}

func (c *carbonFootprintServiceClient) CalculateCarbon(ctx context.Context, in *CalculateCarbonRequest, opts ...grpc.CallOption) (*CalculateCarbonResponse, error) {
	out := new(CalculateCarbonResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Codec{}.Name())}, opts...)
	if err := c.cc.Invoke(ctx, CalculateCarbonFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonFootprintServiceClient) GetTotalCarbon(ctx context.Context, in *GetTotalCarbonRequest, opts ...grpc.CallOption) (*GetTotalCarbonResponse, error) {
	out := new(GetTotalCarbonResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Codec{}.Name())}, opts...)
	if err := c.cc.Invoke(ctx, GetTotalCarbonFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonFootprintServiceClient) GetBreakdown(ctx context.Context, in *GetBreakdownRequest, opts ...grpc.CallOption) (*GetBreakdownResponse, error) {
	out := new(GetBreakdownResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Codec{}.Name())}, opts...)
	if err := c.cc.Invoke(ctx, GetBreakdownFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
