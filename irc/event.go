package irc

import (
	"strings"
	"time"
)

// User is a sender or target identity attached to an Event. Either Nickname
// is set, or Address contains a dot (server form); a sender should never
// have both empty. IsServer derives which case applies.
type User struct {
	Nickname string
	Alias    string
	Ident    string
	Address  string
	Account  string
	Badge    string
	Colour   string
	Special  bool

	LastWhois time.Time
	Refcount  int
}

// IsServer reports whether this User represents a server rather than a
// nick!ident@host client.
func (u User) IsServer() bool {
	return len(u.Nickname) == 0 && strings.ContainsRune(u.Address, '.')
}

// Event is the single output record of a parse. Every field beyond Type, Num,
// Raw and Time is zero-valued when inapplicable to that Type.
type Event struct {
	// Type is drawn from the closed Type taxonomy. Every successfully parsed
	// line has a Type that is neither UNSET nor NUMERIC unless the numeric
	// had no entry in the active daemon's table.
	Type Type
	// Num is the numeric reply code if Type came from a numeric line, 0
	// otherwise.
	Num int
	// Raw is the original line, verbatim, for the event's lifetime.
	Raw string

	Sender  User
	Target  User
	Channel string
	Content string
	Aux     string
	Tags    string

	Role       Role
	RoleString string
	Colour     string

	Time time.Time
}

// NewEvent constructs an Event stamped with the current time and the
// original raw line.
func NewEvent(raw string) Event {
	return Event{Raw: raw, Time: time.Now().UTC()}
}

// IsTargetChan reports whether Channel was set for this event, i.e. whether
// a reply to it should go to a channel rather than Target's nickname.
func (e *Event) IsTargetChan() bool {
	return len(e.Channel) > 0
}

// Bot is the caller-owned identity of the connection's own client. The
// parser reads Nickname to decide between e.g. JOIN and SELFJOIN, and
// writes Nickname (setting Updated) when a SELFNICK or WELCOME changes it.
type Bot struct {
	Nickname     string
	Ident        string
	User         string
	Account      string
	QuitReason   string
	Admins       []string
	HomeChannels []string

	// Updated is set whenever the parser mutates this record. Callers clear
	// it themselves after persisting the change.
	Updated bool
}
