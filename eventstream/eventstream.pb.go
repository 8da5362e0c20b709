// Hand-authored in the shape protoc-gen-go would produce for
// eventstream.proto; protoc is not run as part of this build, so the wire
// messages below are written directly rather than generated.
package eventstream

import (
	proto "github.com/golang/protobuf/proto"
)

// SubscribeRequest asks the server to start streaming events for a single
// network, or every network if left empty.
type SubscribeRequest struct {
	Network string `protobuf:"bytes,1,opt,name=network" json:"network,omitempty"`
}

func (m *SubscribeRequest) Reset()         { *m = SubscribeRequest{} }
func (m *SubscribeRequest) String() string { return proto.CompactTextString(m) }
func (*SubscribeRequest) ProtoMessage()    {}

// EventRecord is the wire shape of a single irc.Event, flattened for
// transport. See ToRecord/FromRecord in convert.go for the irc.Event
// round-trip.
type EventRecord struct {
	Type string `protobuf:"bytes,1,opt,name=type" json:"type,omitempty"`
	Num  int32  `protobuf:"varint,2,opt,name=num" json:"num,omitempty"`
	Raw  string `protobuf:"bytes,3,opt,name=raw" json:"raw,omitempty"`

	SenderNick    string `protobuf:"bytes,4,opt,name=sender_nick,json=senderNick" json:"sender_nick,omitempty"`
	SenderIdent   string `protobuf:"bytes,5,opt,name=sender_ident,json=senderIdent" json:"sender_ident,omitempty"`
	SenderAddress string `protobuf:"bytes,6,opt,name=sender_address,json=senderAddress" json:"sender_address,omitempty"`

	TargetNick    string `protobuf:"bytes,7,opt,name=target_nick,json=targetNick" json:"target_nick,omitempty"`
	TargetAddress string `protobuf:"bytes,8,opt,name=target_address,json=targetAddress" json:"target_address,omitempty"`

	Channel string `protobuf:"bytes,9,opt,name=channel" json:"channel,omitempty"`
	Content string `protobuf:"bytes,10,opt,name=content" json:"content,omitempty"`
	Aux     string `protobuf:"bytes,11,opt,name=aux" json:"aux,omitempty"`
	Tags    string `protobuf:"bytes,12,opt,name=tags" json:"tags,omitempty"`

	Role       int32  `protobuf:"varint,13,opt,name=role" json:"role,omitempty"`
	RoleString string `protobuf:"bytes,14,opt,name=role_string,json=roleString" json:"role_string,omitempty"`
	Colour     string `protobuf:"bytes,15,opt,name=colour" json:"colour,omitempty"`

	UnixNano int64 `protobuf:"varint,16,opt,name=unix_nano,json=unixNano" json:"unix_nano,omitempty"`
}

func (m *EventRecord) Reset()         { *m = EventRecord{} }
func (m *EventRecord) String() string { return proto.CompactTextString(m) }
func (*EventRecord) ProtoMessage()    {}

func init() {
	proto.RegisterType((*SubscribeRequest)(nil), "eventstream.SubscribeRequest")
	proto.RegisterType((*EventRecord)(nil), "eventstream.EventRecord")
}
