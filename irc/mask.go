package irc

import "strings"

// Hostmask is the wire form of a sender prefix: nick!ident@address. Parse's
// Stage 2 splits one of these into a User; see WildHostmask for the
// wildcard-pattern counterpart used to test a Hostmask against it.
type Hostmask string

// WildHostmask is a Hostmask pattern containing the wildcards '?' and '*',
// as used in Bot.Admins entries and ban masks (CHANMODE +b/+q/+e/+I lists).
type WildHostmask string

// Split splits a Hostmask into its nick, ident and address fragments. If h
// doesn't contain both '!' and '@' in nick!ident@address order, every
// fragment is returned empty.
func (h Hostmask) Split() (nick, ident, address string) {
	bang := strings.IndexByte(string(h), '!')
	if bang < 0 {
		return
	}
	at := strings.IndexByte(string(h)[bang+1:], '@')
	if at < 0 {
		return
	}
	at += bang + 1
	return string(h)[:bang], string(h)[bang+1 : at], string(h)[at+1:]
}

// Matches reports whether h satisfies the wildcard pattern w.
func (h Hostmask) Matches(w WildHostmask) bool {
	return wildcardMatch(string(h), string(w))
}

// Match reports whether pattern w is satisfied by h. Same comparison as
// h.Matches(w), spelled from the pattern's side for callers iterating a
// list of patterns against one mask.
func (w WildHostmask) Match(h Hostmask) bool {
	return wildcardMatch(string(h), string(w))
}

// wildcardMatch matches ms against pattern ws, where ws may contain the
// wildcards '*' (any run, including empty) and '?' (exactly one character).
func wildcardMatch(ms, ws string) bool {
	wl, ml := len(ws), len(ms)

	if wl == 0 {
		return ml == 0
	}

	var i, j, consume = 0, 0, 0
	for i < wl && j < ml {
		switch ws[i] {
		case '?', '*':
			star := false
			consume = 0

			for i < wl && (ws[i] == '*' || ws[i] == '?') {
				star = star || ws[i] == '*'
				i++
				consume++
			}

			if star {
				consume = -1
			}
		case ms[j]:
			consume = 0
			i++
			j++
		default:
			if consume != 0 {
				consume--
				j++
			} else {
				return false
			}
		}
	}

	for i < wl && (ws[i] == '?' || ws[i] == '*') {
		i++
	}

	if consume < 0 {
		consume = ml - j
	}
	j += consume

	if i < wl || j < ml {
		return false
	}

	return true
}

// MatchesAdmin reports whether u's hostmask satisfies any of the given
// wildcard admin patterns (Bot.Admins). A User with no Nickname (a server
// sender) never matches.
func MatchesAdmin(u User, admins []string) bool {
	if len(u.Nickname) == 0 {
		return false
	}
	h := Hostmask(u.Nickname + "!" + u.Ident + "@" + u.Address)
	for _, pattern := range admins {
		if h.Matches(WildHostmask(pattern)) {
			return true
		}
	}
	return false
}
