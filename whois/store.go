// Package whois caches per-nickname WHOIS-recency facts so that repeated
// WHOIS numerics (311/312/317/318/330) don't force a caller to re-churn an
// irc.User record from scratch on every reply. It is a thin, embedded
// key/value layer: callers own the irc.User values, the store only
// remembers when a nickname was last resolved and the bytes that resolved
// it.
package whois

import (
	"encoding/json"
	"time"

	"github.com/cznic/kv"
	"github.com/pkg/errors"
)

var nMaxCache = 1000

// Record is the cached shape of one nickname's most recent WHOIS facts.
type Record struct {
	Nickname string
	Ident    string
	Address  string
	Account  string
	Seen     time.Time
}

// Store is a kv-backed cache of Records keyed by nickname, with an
// in-memory front cache the same shape as the teacher's user/auth cache.
type Store struct {
	db    *kv.DB
	cache map[string]*Record
}

// Provider opens or creates the underlying *kv.DB. MemProvider and
// FileProvider below are the two stock implementations.
type Provider func() (*kv.DB, error)

// MemProvider opens an in-memory database, suitable for tests and for
// short-lived bot processes that don't need the cache to survive restarts.
func MemProvider() (*kv.DB, error) {
	return kv.CreateMem(&kv.Options{})
}

// FileProvider opens (creating if absent) a database file on disk, for
// processes that want WHOIS recency to survive a restart.
func FileProvider(path string) Provider {
	return func() (*kv.DB, error) {
		db, err := kv.Open(path, &kv.Options{})
		if err == nil {
			return db, nil
		}
		return kv.Create(path, &kv.Options{})
	}
}

// NewStore initializes a Store from the given Provider.
func NewStore(provider Provider) (*Store, error) {
	db, err := provider()
	if err != nil {
		return nil, errors.Wrap(err, "whois: opening store")
	}

	return &Store{
		db:    db,
		cache: make(map[string]*Record),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put records or overwrites a nickname's most recent WHOIS facts.
func (s *Store) Put(r Record) error {
	serialized, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "whois: serializing record")
	}

	if err := s.db.Set([]byte(r.Nickname), serialized); err != nil {
		return errors.Wrap(err, "whois: writing record")
	}

	s.checkCacheLimits()
	cp := r
	s.cache[r.Nickname] = &cp
	return nil
}

// Get returns the cached Record for nickname, or ok=false if none is on
// file. A cache hit never touches the database.
func (s *Store) Get(nickname string) (rec Record, ok bool, err error) {
	if cached, hit := s.cache[nickname]; hit {
		return *cached, true, nil
	}

	serialized, err := s.db.Get(nil, []byte(nickname))
	if err != nil {
		return Record{}, false, errors.Wrap(err, "whois: reading record")
	}
	if serialized == nil {
		return Record{}, false, nil
	}

	if err := json.Unmarshal(serialized, &rec); err != nil {
		return Record{}, false, errors.Wrap(err, "whois: deserializing record")
	}

	s.checkCacheLimits()
	s.cache[nickname] = &rec
	return rec, true, nil
}

// IsStale reports whether nickname has no cached record or its Seen time is
// older than maxAge.
func (s *Store) IsStale(nickname string, maxAge time.Duration) bool {
	rec, ok, err := s.Get(nickname)
	if err != nil || !ok {
		return true
	}
	return time.Since(rec.Seen) > maxAge
}

// checkCacheLimits dumps the front cache once it would cross nMaxCache
// entries, mirroring the teacher's store cache eviction.
func (s *Store) checkCacheLimits() {
	if len(s.cache)+1 > nMaxCache {
		s.cache = make(map[string]*Record)
	}
}
