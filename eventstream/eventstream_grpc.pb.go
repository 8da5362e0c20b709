// Hand-authored service boilerplate in the shape protoc-gen-go's gRPC
// plugin would emit for eventstream.proto's one streaming RPC.
package eventstream

import (
	grpc "google.golang.org/grpc"
)

// EventStreamServer is the server API for the EventStream service.
type EventStreamServer interface {
	Stream(*SubscribeRequest, EventStream_StreamServer) error
}

// EventStream_StreamServer is the server-side handle for the streaming
// Stream RPC: one Send call per outgoing EventRecord.
type EventStream_StreamServer interface {
	Send(*EventRecord) error
	grpc.ServerStream
}

type eventStreamStreamServer struct {
	grpc.ServerStream
}

func (x *eventStreamStreamServer) Send(m *EventRecord) error {
	return x.ServerStream.SendMsg(m)
}

func _EventStream_Stream_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(EventStreamServer).Stream(m, &eventStreamStreamServer{stream})
}

var _EventStream_serviceDesc = grpc.ServiceDesc{
	ServiceName: "eventstream.EventStream",
	HandlerType: (*EventStreamServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Stream",
			Handler:       _EventStream_Stream_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "eventstream.proto",
}

// RegisterEventStreamServer registers srv with s the way protoc-gen-go's
// grpc plugin would generate for a service with one server-streaming RPC.
func RegisterEventStreamServer(s *grpc.Server, srv EventStreamServer) {
	s.RegisterService(&_EventStream_serviceDesc, srv)
}
