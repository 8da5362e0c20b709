// Package eventstream is a gRPC adapter that streams already-parsed
// irc.Event records to out-of-process subscribers. It never calls
// ircmsg.Parse itself — something else owns the socket loop, parses each
// line, and calls Publish; eventstream only fans the result out. This is
// the sketch of the "plugin host and message bus" the core parser treats
// as an external collaborator.
package eventstream

import (
	"net"
	"sync"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"gopkg.in/inconshreveable/log15.v2"

	"github.com/zorael/kameloso-sub000/irc"
)

// subscriberBuffer bounds how many pending records a slow subscriber may
// fall behind by before Publish drops its oldest record rather than
// blocking the publisher.
const subscriberBuffer = 64

// Server implements EventStreamServer, fanning out Published events to
// every active Stream call whose requested network matches (or which
// requested every network, by leaving Network empty).
type Server struct {
	log log15.Logger

	mut         sync.RWMutex
	subscribers map[int]*subscriber
	nextID      int
}

type subscriber struct {
	network string
	ch      chan *EventRecord
}

// NewServer constructs an eventstream.Server. A nil logger defaults to
// log15.Root(), mirroring the teacher's DisplayErrors(log15.Root())
// fallback.
func NewServer(log log15.Logger) *Server {
	if log == nil {
		log = log15.Root()
	}
	return &Server{
		log:         log,
		subscribers: make(map[int]*subscriber),
	}
}

// Listen opens a TCP listener on addr and serves the EventStream service on
// it, blocking until the listener errors or is closed.
func (s *Server) Listen(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "eventstream: listen")
	}

	grpcServer := grpc.NewServer()
	RegisterEventStreamServer(grpcServer, s)
	return grpcServer.Serve(lis)
}

// Publish converts ev and fans it out to every subscriber whose requested
// network matches (or who subscribed to every network). A subscriber whose
// buffer is full has its oldest pending record dropped rather than
// blocking the caller — Publish never blocks on a slow reader.
func (s *Server) Publish(network string, ev irc.Event) {
	record := ToRecord(ev)

	s.mut.RLock()
	defer s.mut.RUnlock()

	for _, sub := range s.subscribers {
		if len(sub.network) > 0 && sub.network != network {
			continue
		}
		select {
		case sub.ch <- record:
		default:
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- record:
			default:
			}
		}
	}
}

// Stream implements EventStreamServer. It registers a subscriber for the
// requested network, then blocks relaying records to the client until the
// stream's context is cancelled.
func (s *Server) Stream(req *SubscribeRequest, stream EventStream_StreamServer) error {
	sub := &subscriber{
		network: req.Network,
		ch:      make(chan *EventRecord, subscriberBuffer),
	}

	s.mut.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = sub
	s.mut.Unlock()

	defer func() {
		s.mut.Lock()
		delete(s.subscribers, id)
		s.mut.Unlock()
	}()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case record := <-sub.ch:
			if err := stream.Send(record); err != nil {
				s.log.Warn("eventstream: send failed", "err", err)
				return errors.Wrap(err, "eventstream: send")
			}
		}
	}
}
