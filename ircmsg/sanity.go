package ircmsg

import (
	"strings"

	"github.com/zorael/kameloso-sub000/irc"
)

// selfWhitelistSanity is the set of Types for which Target.Nickname is
// allowed to equal the bot's own nickname without being cleared by
// postParseSanity (§4.4.5).
var selfWhitelistSanity = map[irc.Type]bool{
	irc.MODE:     true,
	irc.CHANMODE: true,
	irc.WELCOME:  true,
	irc.QUERY:    true,
	irc.JOIN:     true,
}

// spaceExempt is the set of Types allowed to carry a space in Target.Nickname
// or Channel without triggering a diagnostic — CHANMODE and TOPIC legitimately
// echo arbitrary text through those fields.
var spaceExempt = map[irc.Type]bool{
	irc.CHANMODE: true,
	irc.TOPIC:    true,
}

// postParseSanity implements §4.4.5: normalises a handful of edge cases the
// upstream branches can't rule out on their own, logging diagnostics rather
// than failing the parse.
func postParseSanity(ev *irc.Event, srv *irc.Server, bot *irc.Bot, log Logger) {
	if !spaceExempt[ev.Type] {
		if strings.ContainsRune(ev.Target.Nickname, ' ') || strings.ContainsRune(ev.Channel, ' ') {
			log.Debug("ircmsg: space in nickname/channel field", "raw", ev.Raw, "type", ev.Type)
		}

		if len(ev.Sender.Nickname) > srv.NickLen() {
			log.Debug("ircmsg: sender nickname exceeds max-nick-length", "raw", ev.Raw, "nickname", ev.Sender.Nickname)
		}
		if len(ev.Target.Nickname) > srv.NickLen() {
			log.Debug("ircmsg: target nickname exceeds max-nick-length", "raw", ev.Raw, "nickname", ev.Target.Nickname)
		}
	}

	if len(ev.Target.Nickname) > 0 && strings.ContainsRune("#&", rune(ev.Target.Nickname[0])) {
		log.Debug("ircmsg: channel-prefixed target nickname", "raw", ev.Raw, "target", ev.Target.Nickname)
	}

	if ev.Target.Nickname == bot.Nickname && !selfWhitelistSanity[ev.Type] {
		ev.Target.Nickname = ""
	}
}
