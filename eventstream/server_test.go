package eventstream

import (
	"testing"

	"github.com/zorael/kameloso-sub000/irc"
)

func TestServer_PublishFanOutByNetwork(t *testing.T) {
	s := NewServer(nil)

	matchAll := &subscriber{ch: make(chan *EventRecord, 1)}
	matchIRCNet := &subscriber{network: "ircnet", ch: make(chan *EventRecord, 1)}
	other := &subscriber{network: "othernet", ch: make(chan *EventRecord, 1)}

	s.mut.Lock()
	s.subscribers[0] = matchAll
	s.subscribers[1] = matchIRCNet
	s.subscribers[2] = other
	s.mut.Unlock()

	s.Publish("ircnet", irc.NewEvent("PING :server"))

	if len(matchAll.ch) != 1 {
		t.Error("subscriber with no network filter should receive every publish")
	}
	if len(matchIRCNet.ch) != 1 {
		t.Error("subscriber filtered to ircnet should receive an ircnet publish")
	}
	if len(other.ch) != 0 {
		t.Error("subscriber filtered to othernet should not receive an ircnet publish")
	}
}

func TestServer_PublishDropsOldestWhenFull(t *testing.T) {
	s := NewServer(nil)
	sub := &subscriber{ch: make(chan *EventRecord, 1)}

	s.mut.Lock()
	s.subscribers[0] = sub
	s.mut.Unlock()

	first := irc.NewEvent("PING :one")
	first.Content = "one"
	second := irc.NewEvent("PING :two")
	second.Content = "two"

	s.Publish("", first)
	s.Publish("", second)

	got := <-sub.ch
	if got.Content != "two" {
		t.Errorf("expected the newest record to survive, got %q", got.Content)
	}
}
