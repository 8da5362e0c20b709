package irc

import (
	"strconv"
	"strings"
	"sync"
)

// Healthy RFC2812 defaults, used until ISUPPORT/MYINFO override them.
const (
	defaultNickLen    = 9
	defaultChannelLen = 50
	defaultChantypes  = "#&"
	defaultPrefix     = "(ov)@+"
)

// Mode-class letters as announced by CHANMODES=A,B,C,D in ISUPPORT:
//
//	A: always takes an argument, adds/removes from a list (bans, excepts...)
//	B: always takes an argument (keys, forwards...)
//	C: takes an argument only when set, not when unset (limits...)
//	D: never takes an argument (flags)
type modeClasses struct {
	A, B, C, D string
}

// parseModeClassesCSV parses a CHANMODES value of the form "A,B,C,D". Malformed
// input returns ok=false; the caller should log a diagnostic.
func parseModeClassesCSV(csv string) (modeClasses, bool) {
	parts := strings.Split(csv, ",")
	if len(parts) != 4 {
		return modeClasses{}, false
	}
	return modeClasses{A: parts[0], B: parts[1], C: parts[2], D: parts[3]}, true
}

// Server is the lifecycle-long mutable configuration keyed off protocol
// replies (ISUPPORT, MYINFO, WELCOME). It is created empty and populated as
// the parser discovers facts; it is never torn down mid-connection.
//
// A single parse call is synchronous and single-threaded (see package
// ircmsg), but Server fields may be read concurrently by other
// goroutines (an exporter, a command handler) while a parse is in flight, so
// access is still guarded by a mutex.
type Server struct {
	mu sync.RWMutex

	daemon       Daemon
	daemonString string
	network      string
	address      string

	nickLen    int
	channelLen int

	chantypes string
	prefix    map[rune]rune // mode letter -> status-message prefix char
	classes   modeClasses

	// Updated is set whenever the parser mutates this record. Callers clear
	// it themselves after persisting the change.
	Updated bool
}

// NewServer returns an empty Server pre-seeded with RFC2812 defaults.
func NewServer() *Server {
	return &Server{
		nickLen:    defaultNickLen,
		channelLen: defaultChannelLen,
		chantypes:  defaultChantypes,
		prefix:     map[rune]rune{'o': '@', 'v': '+'},
	}
}

func (s *Server) Daemon() Daemon { s.mu.RLock(); defer s.mu.RUnlock(); return s.daemon }
func (s *Server) DaemonString() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.daemonString
}
func (s *Server) Network() string { s.mu.RLock(); defer s.mu.RUnlock(); return s.network }
func (s *Server) Address() string { s.mu.RLock(); defer s.mu.RUnlock(); return s.address }
func (s *Server) NickLen() int    { s.mu.RLock(); defer s.mu.RUnlock(); return s.nickLen }
func (s *Server) ChannelLen() int { s.mu.RLock(); defer s.mu.RUnlock(); return s.channelLen }
func (s *Server) Chantypes() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chantypes
}

// SetDaemon records the resolved daemon family, e.g. from a MYINFO string
// match or an explicit hint. Setting it flips Updated.
func (s *Server) SetDaemon(d Daemon, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.daemon = d
	s.daemonString = raw
	s.Updated = true
}

// SetAddress records the server's resolved address (e.g. adopted from a
// NOTICE sender's nickname during auth, or from the prefix of any line).
// A no-op if addr is empty or an address is already known.
func (s *Server) SetAddress(addr string) {
	if len(addr) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.address) > 0 {
		return
	}
	s.address = addr
	s.Updated = true
}

// ApplyISupportToken applies a single `KEY` or `KEY=VALUE` token from an
// ISUPPORT (005) line. Malformed numeric values are skipped; the caller is
// expected to log a diagnostic for those via the returned ok flag.
func (s *Server) ApplyISupportToken(key, value string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case "NETWORK":
		if len(value) == 0 {
			return false
		}
		s.network = value
	case "NICKLEN":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		s.nickLen = n
	case "CHANNELLEN":
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		s.channelLen = n
	case "CHANTYPES":
		if len(value) == 0 {
			return false
		}
		s.chantypes = value
	case "CHANMODES":
		classes, parsed := parseModeClassesCSV(value)
		if !parsed {
			return false
		}
		s.classes = classes
	case "PREFIX":
		modes, chars, parsed := splitPrefixValue(value)
		if !parsed {
			return false
		}
		m := make(map[rune]rune, len(modes))
		for i, r := range modes {
			m[r] = rune(chars[i])
		}
		s.prefix = m
	default:
		return true // recognised-but-unacted-on keys are not errors
	}
	s.Updated = true
	return true
}

// splitPrefixValue splits a PREFIX=(ov)@+ value into its mode-letter and
// status-char halves.
func splitPrefixValue(value string) (modes, chars string, ok bool) {
	if len(value) == 0 || value[0] != '(' {
		return "", "", false
	}
	close := strings.IndexByte(value, ')')
	if close < 0 {
		return "", "", false
	}
	modes = value[1:close]
	chars = value[close+1:]
	if len(modes) != len(chars) {
		return "", "", false
	}
	return modes, chars, true
}

// ApplyMyInfo applies the fixed-position fields of a MYINFO (004) line:
// <server> <version> <usermodes> <chanmodes>.
func (s *Server) ApplyMyInfo(serverName, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = serverName
	s.daemonString = version
	s.Updated = true
}

// GuessNetwork sets Network from the server address via NetworkOf, if the
// network is still unknown.
func (s *Server) GuessNetwork() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.network) > 0 {
		return
	}
	if guess := NetworkOf(s.address); guess != "unknown" {
		s.network = guess
		s.Updated = true
	}
}
