package whois

import (
	"testing"
	"time"
)

func TestNewStore(t *testing.T) {
	t.Parallel()
	s, err := NewStore(MemProvider)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.cache == nil {
		t.Error("cache not instantiated")
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()
	s, err := NewStore(MemProvider)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := Record{Nickname: "zorael", Ident: "zorael", Address: "irc.example.org", Seen: time.Now()}
	if err := s.Put(want); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get("zorael")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if got.Ident != want.Ident || got.Address != want.Address {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStore_GetMiss(t *testing.T) {
	t.Parallel()
	s, err := NewStore(MemProvider)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	_, ok, err := s.Get("nobody")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected a miss")
	}
}

func TestStore_IsStale(t *testing.T) {
	t.Parallel()
	s, err := NewStore(MemProvider)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if !s.IsStale("ghost", time.Minute) {
		t.Error("missing record should be stale")
	}

	s.Put(Record{Nickname: "fresh", Seen: time.Now()})
	if s.IsStale("fresh", time.Hour) {
		t.Error("just-seen record should not be stale")
	}

	s.Put(Record{Nickname: "old", Seen: time.Now().Add(-2 * time.Hour)})
	if !s.IsStale("old", time.Hour) {
		t.Error("two-hour-old record should be stale against a one-hour max age")
	}
}

func TestStore_CacheEviction(t *testing.T) {
	t.Parallel()
	s, err := NewStore(MemProvider)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	nMaxCache = 2
	defer func() { nMaxCache = 1000 }()

	s.Put(Record{Nickname: "a"})
	s.Put(Record{Nickname: "b"})
	s.Put(Record{Nickname: "c"})

	if len(s.cache) > 2 {
		t.Errorf("expected cache dump once over limit, got %d entries", len(s.cache))
	}
}
