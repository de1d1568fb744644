package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "seizurelog.v1.SeizureLog"

// SeizureLogServer is the server API for the SeizureLog service.
type SeizureLogServer interface {
	SignUp(context.Context, *SignUpRequest) (*TokenPairResponse, error)
	SignIn(context.Context, *SignInRequest) (*TokenPairResponse, error)
	RefreshAccessToken(context.Context, *RefreshAccessTokenRequest) (*RefreshAccessTokenResponse, error)
	SignOut(context.Context, *SignOutRequest) (*SignOutResponse, error)
	CreateProfile(context.Context, *CreateProfileRequest) (*CreateProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*UpdateProfileResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	CreateSeizure(context.Context, *CreateSeizureRequest) (*CreateSeizureResponse, error)
	DeleteSeizure(context.Context, *DeleteSeizureRequest) (*DeleteSeizureResponse, error)
	ListSeizures(context.Context, *ListSeizuresRequest) (*ListSeizuresResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	StreamProfile(*StreamProfileRequest, SeizureLog_StreamProfileServer) error
	StreamSeizures(*StreamSeizuresRequest, SeizureLog_StreamSeizuresServer) error
}

// RegisterSeizureLogServer registers srv with the gRPC server s.
func RegisterSeizureLogServer(s grpc.ServiceRegistrar, srv SeizureLogServer) {
	s.RegisterService(&SeizureLog_ServiceDesc, srv)
}

func _SeizureLog_SignUp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SignUpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).SignUp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/SignUp"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).SignUp(ctx, req.(*SignUpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_SignIn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SignInRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).SignIn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/SignIn"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).SignIn(ctx, req.(*SignInRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_RefreshAccessToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshAccessTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).RefreshAccessToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/RefreshAccessToken"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).RefreshAccessToken(ctx, req.(*RefreshAccessTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_SignOut_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SignOutRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).SignOut(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/SignOut"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).SignOut(ctx, req.(*SignOutRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_CreateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).CreateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/CreateProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).CreateProfile(ctx, req.(*CreateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_UpdateProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).UpdateProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/UpdateProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).UpdateProfile(ctx, req.(*UpdateProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_GetProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetProfile"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_CreateSeizure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSeizureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).CreateSeizure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/CreateSeizure"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).CreateSeizure(ctx, req.(*CreateSeizureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_DeleteSeizure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSeizureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).DeleteSeizure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/DeleteSeizure"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).DeleteSeizure(ctx, req.(*DeleteSeizureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_ListSeizures_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSeizuresRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).ListSeizures(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListSeizures"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).ListSeizures(ctx, req.(*ListSeizuresRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SeizureLog_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SeizureLogServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Ping"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SeizureLogServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SeizureLog_StreamProfileServer is the server side of the StreamProfile stream.
type SeizureLog_StreamProfileServer interface {
	Send(*ProfileChangeEvent) error
	grpc.ServerStream
}

type seizureLogStreamProfileServer struct {
	grpc.ServerStream
}

func (x *seizureLogStreamProfileServer) Send(m *ProfileChangeEvent) error {
	return x.ServerStream.SendMsg(m)
}

func _SeizureLog_StreamProfile_Handler(srv interface{}, stream grpc.ServerStream) error {
	in := new(StreamProfileRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(SeizureLogServer).StreamProfile(in, &seizureLogStreamProfileServer{stream})
}

// SeizureLog_StreamSeizuresServer is the server side of the StreamSeizures stream.
type SeizureLog_StreamSeizuresServer interface {
	Send(*SeizureChangeEvent) error
	grpc.ServerStream
}

type seizureLogStreamSeizuresServer struct {
	grpc.ServerStream
}

func (x *seizureLogStreamSeizuresServer) Send(m *SeizureChangeEvent) error {
	return x.ServerStream.SendMsg(m)
}

func _SeizureLog_StreamSeizures_Handler(srv interface{}, stream grpc.ServerStream) error {
	in := new(StreamSeizuresRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(SeizureLogServer).StreamSeizures(in, &seizureLogStreamSeizuresServer{stream})
}

// SeizureLog_ServiceDesc is the grpc.ServiceDesc for the SeizureLog service.
// Hand-written: the wire format is JSON, so there is no generated protobuf
// binding to derive it from.
var SeizureLog_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SeizureLogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignUp", Handler: _SeizureLog_SignUp_Handler},
		{MethodName: "SignIn", Handler: _SeizureLog_SignIn_Handler},
		{MethodName: "RefreshAccessToken", Handler: _SeizureLog_RefreshAccessToken_Handler},
		{MethodName: "SignOut", Handler: _SeizureLog_SignOut_Handler},
		{MethodName: "CreateProfile", Handler: _SeizureLog_CreateProfile_Handler},
		{MethodName: "UpdateProfile", Handler: _SeizureLog_UpdateProfile_Handler},
		{MethodName: "GetProfile", Handler: _SeizureLog_GetProfile_Handler},
		{MethodName: "CreateSeizure", Handler: _SeizureLog_CreateSeizure_Handler},
		{MethodName: "DeleteSeizure", Handler: _SeizureLog_DeleteSeizure_Handler},
		{MethodName: "ListSeizures", Handler: _SeizureLog_ListSeizures_Handler},
		{MethodName: "Ping", Handler: _SeizureLog_Ping_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "StreamProfile", Handler: _SeizureLog_StreamProfile_Handler, ServerStreams: true},
		{StreamName: "StreamSeizures", Handler: _SeizureLog_StreamSeizures_Handler, ServerStreams: true},
	},
}
