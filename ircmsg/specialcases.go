package ircmsg

import (
	"strings"

	"github.com/zorael/kameloso-sub000/irc"
)

// authBanners is the documented per-network services success/failure
// string table (§4.4.4), kept as a flat data table separate from branch
// logic so a network can be added without touching control flow.
var authBanners = []struct {
	prefix  string
	success bool
}{
	{"You are now identified for", true},
	{"Password accepted - you are now recognized.", true},
	{"You are now logged in as", true},
	{"I recognize you.", true},
	{"Invalid password for", false},
	{"Password incorrect.", false},
	{"Authentication failed", false},
}

// applySpecialCase implements Stage 4: a large switch on Type, each branch a
// small parser over the remaining cursor. ev.Type may be rewritten in
// place (e.g. JOIN -> SELFJOIN, PRIVMSG -> CHAN/QUERY/CTCP_*/EMOTE).
func applySpecialCase(cur *cursor, srv *irc.Server, bot *irc.Bot, log Logger, ev *irc.Event) {
	switch ev.Type {
	case irc.NOTICE, irc.NOTICEAUTH:
		caseNotice(cur, srv, ev)
	case irc.JOIN:
		caseJoin(cur, bot, ev)
	case irc.PART:
		caseLeave(cur, bot, ev, irc.PART, irc.SELFPART)
	case irc.QUIT:
		caseLeave(cur, bot, ev, irc.QUIT, irc.SELFQUIT)
	case irc.NICK:
		caseNick(cur, bot, ev)
	case irc.PRIVMSG:
		casePrivmsg(cur, srv, log, ev)
	case irc.MODE:
		caseMode(cur, srv, bot, ev)
	case irc.KICK:
		caseKick(cur, bot, ev)
	case irc.NAMREPLY:
		caseOwnerChannelContent(cur, ev, true)
	case irc.TOPIC, irc.ENDOFNAMES, irc.CHANNELURL, irc.NEEDAUTHTOJOIN, irc.InviteOnlyChan:
		caseOwnerChannelContent(cur, ev, false)
	case irc.WELCOME:
		caseWelcome(cur, bot, ev)
	case irc.MYINFO:
		caseMyInfo(cur, srv, ev)
	case irc.ISUPPORT:
		caseISupport(cur, srv, log, ev)
	case irc.WHOISIDLE, irc.WHOISUSER, irc.WHOISSERVER, irc.ENDOFWHOIS, irc.WHOISACCOUNT,
		irc.WHOISREGNICK, irc.WHOISSECURE, irc.WHOISHOST, irc.HOSTHIDDEN, irc.NicknameInUse,
		irc.NoSuchNick, irc.WHOISCHANNELS, irc.ErrBanOnChan:
		caseSelfSubjectText(cur, ev)
	case irc.TOCONNECTTYPE:
		caseToConnectType(cur, ev)
	case irc.CAP:
		caseCap(cur, ev)
	case irc.USERNOTICE:
		caseUserNotice(cur, ev)
	case irc.ROOMSTATE, irc.USERSTATE, irc.GLOBALUSERSTATE:
		caseChannelOnly(cur, ev)
	case irc.CLEARCHAT:
		caseClearChat(cur, ev)
	case irc.HOSTSTART:
		caseHostTarget(cur, ev)
	default:
		caseFallback(cur, log, ev)
	}
}

// caseNotice handles the (prefixed) NOTICE family: plain server/user
// notices and services auth banners.
func caseNotice(cur *cursor, srv *irc.Server, ev *irc.Event) {
	ev.Content = trailingOrRest(cur)

	for _, banner := range authBanners {
		if !strings.HasPrefix(ev.Content, banner.prefix) {
			continue
		}
		if banner.success {
			// TODO: the source re-invokes the full parse on this same slice
			// after rewriting the type here; whether that is intentional
			// re-entry or a residual of the original control flow is
			// unclear, so it is not replicated.
			ev.Type = irc.AUTH_SUCCESS
		} else {
			ev.Type = irc.AUTH_FAILURE
		}
		return
	}

	if len(srv.Address()) == 0 && strings.HasPrefix(ev.Content, "***") {
		srv.SetAddress(ev.Sender.Nickname)
	}
}

// caseJoin handles JOIN, including the extended services-account/real-name
// form and the SELFJOIN rewrite.
func caseJoin(cur *cursor, bot *irc.Bot, ev *irc.Event) {
	ev.Channel = cur.token()
	if !cur.done() {
		account := cur.token()
		if account == "*" {
			account = ""
		}
		ev.Sender.Account = account
		ev.Content = trailingOrRest(cur)
	}
	if ev.Sender.Nickname == bot.Nickname {
		ev.Type = irc.SELFJOIN
	}
}

// caseLeave handles PART and QUIT: strip quotes around the reason and a
// leading "Quit: " prefix, and rewrite to the SELF* variant.
func caseLeave(cur *cursor, bot *irc.Bot, ev *irc.Event, plain, self irc.Type) {
	if plain == irc.PART {
		ev.Channel = cur.token()
	}
	reason := trailingOrRest(cur)
	reason = strings.Trim(reason, `"`)
	reason = strings.TrimPrefix(reason, "Quit: ")
	ev.Content = reason

	if ev.Sender.Nickname == bot.Nickname {
		ev.Type = self
	}
}

// caseNick handles NICK, rewriting to SELFNICK and updating bot.Nickname
// when the sender is the bot itself.
func caseNick(cur *cursor, bot *irc.Bot, ev *irc.Event) {
	newNick := trailingOrRest(cur)
	ev.Target.Nickname = newNick

	if ev.Sender.Nickname == bot.Nickname {
		ev.Type = irc.SELFNICK
		bot.Nickname = newNick
		bot.Updated = true
	}
}

// casePrivmsg handles PRIVMSG: channel-vs-query routing and CTCP unpacking.
func casePrivmsg(cur *cursor, srv *irc.Server, log Logger, ev *irc.Event) {
	targetOrChan, content, _ := cur.splitTrailing()

	if irc.IsValidChannel(targetOrChan, srv.Chantypes(), srv.ChannelLen()) {
		ev.Type = irc.CHAN
		ev.Channel = targetOrChan
	} else {
		ev.Type = irc.QUERY
		ev.Target.Nickname = targetOrChan
	}
	ev.Content = content

	if len(ev.Content) >= 2 && irc.IsCTCPString(ev.Content) {
		tag, data := irc.CTCPunpackString(ev.Content)
		upperTag := strings.ToUpper(tag)
		if upperTag == "ACTION" {
			ev.Type = irc.EMOTE
			ev.Content = data
			return
		}
		if typ, ok := irc.CTCPType(tag); ok {
			ev.Type = typ
			ev.Aux = upperTag
			ev.Content = data
			return
		}
		log.Warn("ircmsg: unknown CTCP tag", "tag", upperTag, "raw", ev.Raw)
		ev.Aux = upperTag
		ev.Content = data
	}
}

// caseMode handles MODE/CHANMODE/USERMODE/SELFMODE.
func caseMode(cur *cursor, srv *irc.Server, bot *irc.Bot, ev *irc.Event) {
	first := cur.token()

	if irc.IsValidChannel(first, srv.Chantypes(), srv.ChannelLen()) {
		ev.Channel = first
		if cur.done() {
			ev.Type = irc.USERMODE
			return
		}
		ev.Type = irc.CHANMODE
		ev.Aux = cur.token()
		if !cur.done() {
			ev.Target.Nickname = cur.rest()
		}
		return
	}

	ev.Type = irc.USERMODE
	ev.Target.Nickname = first
	ev.Aux = cur.rest()
	if first == bot.Nickname {
		ev.Type = irc.SELFMODE
	}
}

// caseKick handles KICK/SELFKICK.
func caseKick(cur *cursor, bot *irc.Bot, ev *irc.Event) {
	ev.Channel = cur.token()
	target, reason, _ := cur.splitTrailing()
	ev.Target.Nickname = target
	ev.Content = reason

	ev.Type = irc.KICK
	if target == bot.Nickname {
		ev.Type = irc.SELFKICK
	}
}

// caseOwnerChannelContent handles the `<owner> <channel> :<content>` shape
// shared by RPL_NAMREPLY, RPL_TOPIC, RPL_ENDOFNAMES, RPL_CHANNELURL,
// ERR_NEEDREGGEDNICK/NEEDAUTHTOJOIN and ERR_INVITEONLYCHAN. stripContent
// right-trims trailing whitespace, as RPL_NAMREPLY requires.
func caseOwnerChannelContent(cur *cursor, ev *irc.Event, stripContent bool) {
	cur.token() // owner, not separately surfaced on the event
	ev.Channel = cur.token()
	content := trailingOrRest(cur)
	if stripContent {
		content = strings.TrimRight(content, " ")
	}
	ev.Content = content
}

// caseWelcome handles RPL_WELCOME (001): the leading token is the nickname
// the server actually assigned, which may differ from the one requested at
// registration; adopt it onto the Bot handle.
func caseWelcome(cur *cursor, bot *irc.Bot, ev *irc.Event) {
	nick := cur.token()
	bot.Nickname = nick
	bot.Updated = true
	ev.Content = trailingOrRest(cur)
}

// caseMyInfo handles RPL_MYINFO (004): fixed-position fields
// `<nick> <server> <version> <usermodes> <chanmodes>`.
func caseMyInfo(cur *cursor, srv *irc.Server, ev *irc.Event) {
	cur.token() // own nickname, not surfaced
	server := cur.token()
	version := cur.token()
	srv.ApplyMyInfo(server, version)
	ev.Content = strings.TrimRight(cur.rest(), " ")
}

// caseISupport handles RPL_ISUPPORT (005): split the human-text tail
// off, then apply each KEY=VALUE token to the Server handle. After
// processing, guess the network from the address if still unknown.
func caseISupport(cur *cursor, srv *irc.Server, log Logger, ev *irc.Event) {
	head, _, _ := cur.splitTrailing()
	tokens := strings.Fields(head)

	// The first token is the bot's own nickname; skip it.
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}

	for _, tok := range tokens {
		key, value, hasValue := cutOnce(tok, '=')
		if !hasValue {
			key = tok
			value = ""
		}
		if !srv.ApplyISupportToken(key, value) {
			log.Warn("ircmsg: malformed ISUPPORT token", "token", tok)
		}
	}

	srv.GuessNetwork()
}

// caseSelfSubjectText handles the family of numeric replies shaped
// `<self> <subject> :<text>` (317, 311, 312, 318, 330, 671, 433, 401, 307,
// 319, 378, 396, 435). Daemon-specific delta Types such as WHOISACTUALLY
// go through caseFallback instead.
func caseSelfSubjectText(cur *cursor, ev *irc.Event) {
	cur.token() // self/bot nickname, or "*" pre-registration
	subject := cur.token()
	text := trailingOrRest(cur)

	ev.Target.Nickname = subject
	ev.Content = text
}

// caseToConnectType handles RPL_TOCONNECTTYPE (513):
// `<nick> :To connect type /QUOTE <command> <param>`.
func caseToConnectType(cur *cursor, ev *irc.Event) {
	ev.Target.Nickname = cur.token()
	head, trailing, ok := cur.splitTrailing()
	if !ok {
		trailing = head
	}
	fields := strings.Fields(trailing)
	if len(fields) >= 2 {
		ev.Content = fields[len(fields)-2]
		ev.Aux = fields[len(fields)-1]
	}
}

// caseCap handles CAP, which has two shapes depending on whether the token
// after CAP is '*' (pre-registration) or a genuine bouncer/connection id.
func caseCap(cur *cursor, ev *irc.Event) {
	cur.token() // "*" or connection id, not surfaced
	ev.Aux = cur.token()
	ev.Content = trailingOrRest(cur)
}

// caseUserNotice handles Twitch USERNOTICE: channel plus optional trailing
// content.
func caseUserNotice(cur *cursor, ev *irc.Event) {
	ev.Channel = cur.token()
	ev.Content = trailingOrRest(cur)
}

// caseChannelOnly handles ROOMSTATE/USERSTATE/GLOBALUSERSTATE: just a
// channel argument, no trailing content.
func caseChannelOnly(cur *cursor, ev *irc.Event) {
	ev.Channel = cur.rest()
}

// caseClearChat handles Twitch CLEARCHAT: channel plus an optional trailing
// target nickname for a single-user ban/timeout.
func caseClearChat(cur *cursor, ev *irc.Event) {
	ev.Channel = cur.token()
	if _, trailing, ok := cur.splitTrailing(); ok {
		ev.Target.Nickname = trailing
	}
	// TODO (preserved open question): the source sets role=SERVER here with
	// an in-source FIXME; the right role may be daemon-specific.
	ev.Role = irc.RoleServer
}

// caseHostTarget handles Twitch HOSTTARGET: `#channel :[-|<target>] <count>`.
// A "- " trailer means hosting ended; otherwise a host started.
func caseHostTarget(cur *cursor, ev *irc.Event) {
	ev.Channel = cur.token()
	head, trailing, ok := cur.splitTrailing()
	if !ok {
		trailing = head
	}

	if strings.HasPrefix(trailing, "- ") {
		ev.Type = irc.HOSTEND
		ev.Aux = strings.TrimSpace(trailing[2:])
		return
	}

	ev.Type = irc.HOSTSTART
	fields := strings.Fields(trailing)
	if len(fields) == 0 {
		return
	}
	ev.Content = fields[0]
	if len(fields) > 1 {
		if fields[1] != "-" {
			ev.Aux = fields[1]
		}
	}
}

// caseFallback implements the default-case generic two-arm parser: split at
// " :" into target/content if present, else at space into target/aux.
func caseFallback(cur *cursor, log Logger, ev *irc.Event) {
	if ev.Type == irc.NUMERIC || ev.Type == irc.UNSET {
		log.Warn("ircmsg: fallback parse for unrecognised type", "raw", ev.Raw, "num", ev.Num)
	}

	if target, content, ok := cur.splitTrailing(); ok {
		ev.Target.Nickname = target
		ev.Content = strings.TrimRight(content, " \t")
		return
	}

	target := cur.token()
	ev.Target.Nickname = target
	ev.Aux = strings.TrimRight(cur.rest(), " \t")
}
