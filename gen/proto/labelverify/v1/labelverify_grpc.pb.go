// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: labelverify/v1/labelverify.proto

package labelverifypb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	LabelsService_ListLabels_FullMethodName     = "/labelverify.v1.LabelsService/ListLabels"
	LabelsService_GetLabel_FullMethodName       = "/labelverify.v1.LabelsService/GetLabel"
	LabelsService_SubmitDecision_FullMethodName = "/labelverify.v1.LabelsService/SubmitDecision"
	LabelsService_ProcessLabel_FullMethodName   = "/labelverify.v1.LabelsService/ProcessLabel"
	LabelsService_ExportReport_FullMethodName   = "/labelverify.v1.LabelsService/ExportReport"
)

// LabelsServiceClient is the client API for LabelsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type LabelsServiceClient interface {
	ListLabels(ctx context.Context, in *ListLabelsRequest, opts ...grpc.CallOption) (*ListLabelsResponse, error)
	GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error)
	SubmitDecision(ctx context.Context, in *SubmitDecisionRequest, opts ...grpc.CallOption) (*SubmitDecisionResponse, error)
	ProcessLabel(ctx context.Context, in *ProcessLabelRequest, opts ...grpc.CallOption) (*ProcessLabelResponse, error)
	ExportReport(ctx context.Context, in *ExportReportRequest, opts ...grpc.CallOption) (*ExportReportResponse, error)
}

type labelsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLabelsServiceClient(cc grpc.ClientConnInterface) LabelsServiceClient {
	return &labelsServiceClient{cc}
}

func (c *labelsServiceClient) ListLabels(ctx context.Context, in *ListLabelsRequest, opts ...grpc.CallOption) (*ListLabelsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLabelsResponse)
	err := c.cc.Invoke(ctx, LabelsService_ListLabels_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) GetLabel(ctx context.Context, in *GetLabelRequest, opts ...grpc.CallOption) (*GetLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_GetLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) SubmitDecision(ctx context.Context, in *SubmitDecisionRequest, opts ...grpc.CallOption) (*SubmitDecisionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitDecisionResponse)
	err := c.cc.Invoke(ctx, LabelsService_SubmitDecision_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) ProcessLabel(ctx context.Context, in *ProcessLabelRequest, opts ...grpc.CallOption) (*ProcessLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessLabelResponse)
	err := c.cc.Invoke(ctx, LabelsService_ProcessLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *labelsServiceClient) ExportReport(ctx context.Context, in *ExportReportRequest, opts ...grpc.CallOption) (*ExportReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReportResponse)
	err := c.cc.Invoke(ctx, LabelsService_ExportReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LabelsServiceServer is the server API for LabelsService service.
// All implementations must embed UnimplementedLabelsServiceServer
// for forward compatibility.
type LabelsServiceServer interface {
	ListLabels(context.Context, *ListLabelsRequest) (*ListLabelsResponse, error)
	GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error)
	SubmitDecision(context.Context, *SubmitDecisionRequest) (*SubmitDecisionResponse, error)
	ProcessLabel(context.Context, *ProcessLabelRequest) (*ProcessLabelResponse, error)
	ExportReport(context.Context, *ExportReportRequest) (*ExportReportResponse, error)
	mustEmbedUnimplementedLabelsServiceServer()
}

// UnimplementedLabelsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedLabelsServiceServer struct{}

func (UnimplementedLabelsServiceServer) ListLabels(context.Context, *ListLabelsRequest) (*ListLabelsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLabels not implemented")
}
func (UnimplementedLabelsServiceServer) GetLabel(context.Context, *GetLabelRequest) (*GetLabelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetLabel not implemented")
}
func (UnimplementedLabelsServiceServer) SubmitDecision(context.Context, *SubmitDecisionRequest) (*SubmitDecisionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitDecision not implemented")
}
func (UnimplementedLabelsServiceServer) ProcessLabel(context.Context, *ProcessLabelRequest) (*ProcessLabelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessLabel not implemented")
}
func (UnimplementedLabelsServiceServer) ExportReport(context.Context, *ExportReportRequest) (*ExportReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportReport not implemented")
}
func (UnimplementedLabelsServiceServer) mustEmbedUnimplementedLabelsServiceServer() {}
func (UnimplementedLabelsServiceServer) testEmbeddedByValue()                       {}

// UnsafeLabelsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to LabelsServiceServer will
// result in compilation errors.
type UnsafeLabelsServiceServer interface {
	mustEmbedUnimplementedLabelsServiceServer()
}

func RegisterLabelsServiceServer(s grpc.ServiceRegistrar, srv LabelsServiceServer) {
	// If the following call panics, it indicates UnimplementedLabelsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&LabelsService_ServiceDesc, srv)
}

func _LabelsService_ListLabels_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLabelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).ListLabels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_ListLabels_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).ListLabels(ctx, req.(*ListLabelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_GetLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).GetLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_GetLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).GetLabel(ctx, req.(*GetLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_SubmitDecision_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitDecisionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).SubmitDecision(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_SubmitDecision_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).SubmitDecision(ctx, req.(*SubmitDecisionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_ProcessLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).ProcessLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_ProcessLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).ProcessLabel(ctx, req.(*ProcessLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LabelsService_ExportReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LabelsServiceServer).ExportReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: LabelsService_ExportReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LabelsServiceServer).ExportReport(ctx, req.(*ExportReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LabelsService_ServiceDesc is the grpc.ServiceDesc for LabelsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var LabelsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labelverify.v1.LabelsService",
	HandlerType: (*LabelsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListLabels",
			Handler:    _LabelsService_ListLabels_Handler,
		},
		{
			MethodName: "GetLabel",
			Handler:    _LabelsService_GetLabel_Handler,
		},
		{
			MethodName: "SubmitDecision",
			Handler:    _LabelsService_SubmitDecision_Handler,
		},
		{
			MethodName: "ProcessLabel",
			Handler:    _LabelsService_ProcessLabel_Handler,
		},
		{
			MethodName: "ExportReport",
			Handler:    _LabelsService_ExportReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "labelverify/v1/labelverify.proto",
}

const (
	BatchesService_GetBatchStatus_FullMethodName = "/labelverify.v1.BatchesService/GetBatchStatus"
)

// BatchesServiceClient is the client API for BatchesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type BatchesServiceClient interface {
	GetBatchStatus(ctx context.Context, in *GetBatchStatusRequest, opts ...grpc.CallOption) (*GetBatchStatusResponse, error)
}

type batchesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBatchesServiceClient(cc grpc.ClientConnInterface) BatchesServiceClient {
	return &batchesServiceClient{cc}
}

func (c *batchesServiceClient) GetBatchStatus(ctx context.Context, in *GetBatchStatusRequest, opts ...grpc.CallOption) (*GetBatchStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBatchStatusResponse)
	err := c.cc.Invoke(ctx, BatchesService_GetBatchStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BatchesServiceServer is the server API for BatchesService service.
// All implementations must embed UnimplementedBatchesServiceServer
// for forward compatibility.
type BatchesServiceServer interface {
	GetBatchStatus(context.Context, *GetBatchStatusRequest) (*GetBatchStatusResponse, error)
	mustEmbedUnimplementedBatchesServiceServer()
}

// UnimplementedBatchesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBatchesServiceServer struct{}

func (UnimplementedBatchesServiceServer) GetBatchStatus(context.Context, *GetBatchStatusRequest) (*GetBatchStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBatchStatus not implemented")
}
func (UnimplementedBatchesServiceServer) mustEmbedUnimplementedBatchesServiceServer() {}
func (UnimplementedBatchesServiceServer) testEmbeddedByValue()                        {}

// UnsafeBatchesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BatchesServiceServer will
// result in compilation errors.
type UnsafeBatchesServiceServer interface {
	mustEmbedUnimplementedBatchesServiceServer()
}

func RegisterBatchesServiceServer(s grpc.ServiceRegistrar, srv BatchesServiceServer) {
	// If the following call panics, it indicates UnimplementedBatchesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BatchesService_ServiceDesc, srv)
}

func _BatchesService_GetBatchStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBatchStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BatchesServiceServer).GetBatchStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BatchesService_GetBatchStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BatchesServiceServer).GetBatchStatus(ctx, req.(*GetBatchStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BatchesService_ServiceDesc is the grpc.ServiceDesc for BatchesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BatchesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "labelverify.v1.BatchesService",
	HandlerType: (*BatchesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetBatchStatus",
			Handler:    _BatchesService_GetBatchStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "labelverify/v1/labelverify.proto",
}
