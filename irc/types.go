package irc

import "strings"

// Type is the closed taxonomy of event kinds the parser can produce. It is a
// string rather than an int enum because several members (the CTCP_* family)
// are constructed dynamically from wire tokens rather than enumerated ahead
// of time; see CTCPType.
type Type string

// Core, sender-less and connection-lifecycle events (Stage 1).
const (
	UNSET        Type = ""
	NUMERIC      Type = "NUMERIC"
	ERROR        Type = "ERROR"
	PING         Type = "PING"
	PONG         Type = "PONG"
	AUTHENTICATE Type = "AUTHENTICATE"
	NOTICEAUTH   Type = "NOTICEAUTH"
)

// Prefix/typestring-mapped alphabetic commands and their fabricated
// self-variants (Stage 3/4).
const (
	NOTICE   Type = "NOTICE"
	PRIVMSG  Type = "PRIVMSG"
	JOIN     Type = "JOIN"
	SELFJOIN Type = "SELFJOIN"
	PART     Type = "PART"
	SELFPART Type = "SELFPART"
	QUIT     Type = "QUIT"
	SELFQUIT Type = "SELFQUIT"
	NICK     Type = "NICK"
	SELFNICK Type = "SELFNICK"
	MODE     Type = "MODE"
	CHANMODE Type = "CHANMODE"
	USERMODE Type = "USERMODE"
	SELFMODE Type = "SELFMODE"
	KICK     Type = "KICK"
	SELFKICK Type = "SELFKICK"
	TOPIC    Type = "TOPIC"
	CAP      Type = "CAP"
	CHAN     Type = "CHAN"
	QUERY    Type = "QUERY"
	EMOTE    Type = "EMOTE"
)

// Services authentication banners, fabricated from NOTICE content.
const (
	AUTH_SUCCESS   Type = "AUTH_SUCCESS"
	AUTH_FAILURE   Type = "AUTH_FAILURE"
	AUTH_CHALLENGE Type = "AUTH_CHALLENGE"
)

// Numeric replies with dedicated shapes (Stage 4). Named after the RFC
// mnemonic with the RPL_/ERR_ prefix stripped, except where the mnemonic
// would collide with a command Type above.
const (
	WELCOME        Type = "WELCOME"
	ISUPPORT       Type = "ISUPPORT"
	NAMREPLY       Type = "NAMREPLY"
	ENDOFNAMES     Type = "ENDOFNAMES"
	CHANNELURL     Type = "CHANNELURL"
	NEEDAUTHTOJOIN Type = "NEEDAUTHTOJOIN"
	InviteOnlyChan Type = "ERR_INVITEONLYCHAN"
	WHOISUSER      Type = "WHOISUSER"
	WHOISSERVER    Type = "WHOISSERVER"
	WHOISIDLE      Type = "WHOISIDLE"
	ENDOFWHOIS     Type = "ENDOFWHOIS"
	WHOISCHANNELS  Type = "WHOISCHANNELS"
	WHOISACCOUNT   Type = "WHOISACCOUNT"
	WHOISREGNICK   Type = "WHOISREGNICK"
	WHOISSECURE    Type = "WHOISSECURE"
	WHOISHOST      Type = "WHOISHOST"
	HOSTHIDDEN     Type = "HOSTHIDDEN"
	NicknameInUse  Type = "ERR_NICKNAMEINUSE"
	NoSuchNick     Type = "ERR_NOSUCHNICK"
	TOCONNECTTYPE  Type = "TOCONNECTTYPE"
	HELPSTART      Type = "HELPSTART"
	HELPTXT        Type = "HELPTXT"
	ENDOFHELP      Type = "ENDOFHELP"
	MYINFO         Type = "MYINFO"
	AWAY           Type = "AWAY"
	NOTOPIC        Type = "NOTOPIC"
	ErrBanOnChan   Type = "ERR_BANONCHAN"
)

// Per-daemon delta shapes (Stage 4, §4.3). No base-table entry maps to these
// Types; they only appear when the active daemon's delta table maps a
// numeric to them; see package daemontable.
const (
	ErrErroneusNickname Type = "ERR_ERRONEUSNICKNAME"
	QuietList           Type = "QUIETLIST"
	WhoisSpecial        Type = "WHOISSPECIAL"
	InvexList           Type = "INVEXLIST"
	EndOfInvexList      Type = "ENDOFINVEXLIST"
	WhoisActually       Type = "WHOISACTUALLY"
	ErrServicesDown     Type = "ERR_SERVICESDOWN"
)

// Twitch extensions (parsed after the core pipeline via twitchtags).
const (
	USERNOTICE      Type = "USERNOTICE"
	ROOMSTATE       Type = "ROOMSTATE"
	USERSTATE       Type = "USERSTATE"
	GLOBALUSERSTATE Type = "GLOBALUSERSTATE"
	CLEARCHAT       Type = "CLEARCHAT"
	HOSTSTART       Type = "HOSTSTART"
	HOSTEND         Type = "HOSTEND"
	SUB             Type = "SUB"
	RESUB           Type = "RESUB"
)

// ctcpPrefix is prepended to a recognised CTCP command token to build its
// dynamic Type, e.g. CTCPType("PING") == Type("CTCP_PING").
const ctcpPrefix = "CTCP_"

// knownCTCP is the set of CTCP command tokens this parser fabricates a
// CTCP_<TOKEN> Type for. ACTION is handled separately (it becomes EMOTE, not
// CTCP_ACTION) and is deliberately absent from this set.
var knownCTCP = map[string]bool{
	"PING":       true,
	"VERSION":    true,
	"TIME":       true,
	"CLIENTINFO": true,
	"FINGER":     true,
	"SOURCE":     true,
	"USERINFO":   true,
	"AVATAR":     true,
	"DCC":        true,
	"LAG":        true,
}

// CTCPType returns the fabricated Type for a CTCP command token, and whether
// that token is recognised. ACTION is special-cased by the caller (it maps
// to EMOTE, never to a CTCP_ type).
func CTCPType(token string) (Type, bool) {
	token = strings.ToUpper(token)
	if !knownCTCP[token] {
		return UNSET, false
	}
	return Type(ctcpPrefix + token), true
}

// Role is an ordered classification of a user's privilege level, used for
// Twitch-flavoured IRC. Higher values outrank lower ones; see UpgradeRole.
type Role int

const (
	RoleUnset Role = iota
	RoleOther
	RoleMember
	RoleBits
	RoleTurbo
	RoleSubscriber
	RolePremium
	RolePartner
	RoleMod
	RoleOperator
	RoleBroadcaster
	RoleAdmin
	RoleGlobalMod
	RoleStaff
	RoleServer
)

var roleNames = map[Role]string{
	RoleUnset:       "",
	RoleOther:       "other",
	RoleMember:      "member",
	RoleBits:        "bits",
	RoleTurbo:       "turbo",
	RoleSubscriber:  "subscriber",
	RolePremium:     "premium",
	RolePartner:     "partner",
	RoleMod:         "mod",
	RoleOperator:    "operator",
	RoleBroadcaster: "broadcaster",
	RoleAdmin:       "admin",
	RoleGlobalMod:   "global_mod",
	RoleStaff:       "staff",
	RoleServer:      "server",
}

// String implements fmt.Stringer.
func (r Role) String() string { return roleNames[r] }

// UpgradeRole returns newRole if it strictly outranks current, else current.
// Role priority never decreases across a sequence of upgrades, only rises.
func UpgradeRole(current, newRole Role) Role {
	if newRole > current {
		return newRole
	}
	return current
}

// Daemon identifies the server-software dialect in effect on a connection.
// It selects which delta layer of the numeric-to-Type table applies.
type Daemon string

// Known daemon families. Unknown defers entirely to the base table.
const (
	DaemonUnknown   Daemon = ""
	DaemonUnreal    Daemon = "unreal"
	DaemonBahamut   Daemon = "bahamut"
	DaemonInspIRCd  Daemon = "inspircd"
	DaemonHybrid    Daemon = "hybrid"
	DaemonIrcu      Daemon = "ircu"
	DaemonSnircd    Daemon = "snircd"
	DaemonNefarious Daemon = "nefarious"
	DaemonRatbox    Daemon = "ratbox"
	DaemonRizon     Daemon = "rizon"
	DaemonCharybdis Daemon = "charybdis"
	DaemonRFC1459   Daemon = "rfc1459"
	DaemonRFC2812   Daemon = "rfc2812"
	DaemonAircd     Daemon = "aircd"
	DaemonAustHex   Daemon = "austhex"
	DaemonPtlink    Daemon = "ptlink"
	DaemonSorircd   Daemon = "sorircd"
	DaemonRusnet    Daemon = "rusnet"
	DaemonUltimate  Daemon = "ultimate"
	DaemonUndernet  Daemon = "undernet"
	DaemonTwitch    Daemon = "twitch"
)
