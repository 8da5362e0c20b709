// Package twitchtags decodes the IRCv3 `@key=value;...` tag block Twitch
// attaches to PRIVMSG, USERNOTICE, ROOMSTATE, USERSTATE, GLOBALUSERSTATE and
// CLEARCHAT lines, folding the recognised keys into an already-parsed
// irc.Event.
package twitchtags

import "github.com/zorael/kameloso-sub000/irc"

// Logger is the diagnostics sink Merge logs through. Its method set mirrors
// ircmsg.Logger so both can be satisfied by the same log15.Logger.
type Logger interface {
	Warn(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
}

// ignoredKeys are recognised but carry no effect on the event.
var ignoredKeys = map[string]bool{
	"bits":             true,
	"broadcaster-lang": true,
	"subs-only":        true,
	"r9k":              true,
	"emotes":           true,
	"emote-sets":       true,
	"followers-only":   true,
	"room-id":          true,
	"slow":             true,
	"id":               true,
	"sent-ts":          true,
	"tmi-sent-ts":      true,
	"user":             true,
	"user-id":          true,
	"login":            true,
	"target-user-id":   true,
	"mercury":          true,
}

// msgIDTypes maps a recognised msg-id value to the Type it rewrites the
// event to. Unrecognised msg-id values are logged and leave Type untouched.
var msgIDTypes = map[string]irc.Type{
	"host_on":                  irc.HOSTSTART,
	"host_off":                 irc.HOSTEND,
	"host_target_went_offline": irc.HOSTEND,
	"sub":                      irc.SUB,
	"resub":                    irc.RESUB,
}

// Merge splits tags on ';' into key=value pairs and applies each recognised
// key's effect to ev in place. Unknown keys are logged at Info and otherwise
// skipped; malformed pairs (no '=') are skipped silently, mirroring a bare
// boolean flag tag.
func Merge(tags string, ev *irc.Event, log Logger) {
	if log == nil {
		log = discardLogger{}
	}

	var monthsStr, subPlan, subPlanName string
	haveMonths := false

	for _, pair := range splitNonEmpty(tags, ';') {
		key, value, ok := cutByte(pair, '=')
		if !ok {
			continue
		}

		switch key {
		case "display-name":
			ev.Sender.Alias = value

		case "badges":
			applyBadges(value, ev)

		case "mod", "subscriber", "turbo":
			if value == "1" {
				ev.Role = irc.UpgradeRole(ev.Role, roleForBoolTag(key))
			}

		case "user-type":
			ev.Role = irc.UpgradeRole(ev.Role, roleForUserType(value))

		case "ban-duration":
			if len(value) == 0 {
				ev.Aux = "PERMANENT"
			} else {
				ev.Aux = value
			}

		case "ban-reason", "system-msg":
			ev.Content = unescapeTagValue(value)

		case "emote-only":
			if value == "1" && ev.Type == irc.CHAN {
				ev.Type = irc.EMOTE
			}

		case "msg-id":
			typ, known := msgIDTypes[value]
			if !known {
				log.Info("twitchtags: unrecognised msg-id", "msg-id", value, "raw", ev.Raw)
				continue
			}
			ev.Type = typ

		case "msg-param-months":
			monthsStr = value
			haveMonths = true

		case "msg-param-sub-plan":
			subPlan = value

		case "msg-param-sub-plan-name":
			subPlanName = value

		case "color":
			ev.Colour = stripLeadingHash(value)

		default:
			if !ignoredKeys[key] {
				log.Info("twitchtags: unknown tag key", "key", key, "value", value, "raw", ev.Raw)
			}
		}
	}

	if haveMonths {
		ev.Aux = monthsStr + "x" + subPlan
		if len(subPlanName) > 0 {
			ev.Aux += "x" + subPlanName
		}
	}
}

// applyBadges iterates comma-separated badge/version items and upgrades
// ev.Role for each recognised badge name, also recording the raw badges
// string as RoleString. Each item's own badge name (the part before '/')
// selects the role; names roleForBadge does not list count as RoleOther.
func applyBadges(value string, ev *irc.Event) {
	ev.RoleString = value
	for _, item := range splitNonEmpty(value, ',') {
		name, _, _ := cutByte(item, '/')
		ev.Role = irc.UpgradeRole(ev.Role, roleForBadge(name))
	}
}

func roleForBadge(name string) irc.Role {
	switch name {
	case "broadcaster":
		return irc.RoleBroadcaster
	case "moderator":
		return irc.RoleMod
	case "subscriber":
		return irc.RoleSubscriber
	case "premium":
		return irc.RolePremium
	case "partner":
		return irc.RolePartner
	case "turbo":
		return irc.RoleTurbo
	case "bits":
		return irc.RoleBits
	case "global_mod":
		return irc.RoleGlobalMod
	case "staff":
		return irc.RoleStaff
	case "admin":
		return irc.RoleAdmin
	default:
		return irc.RoleOther
	}
}

func roleForBoolTag(key string) irc.Role {
	switch key {
	case "mod":
		return irc.RoleMod
	case "subscriber":
		return irc.RoleSubscriber
	case "turbo":
		return irc.RoleTurbo
	default:
		return irc.RoleOther
	}
}

func roleForUserType(value string) irc.Role {
	switch value {
	case "mod":
		return irc.RoleMod
	case "global_mod":
		return irc.RoleGlobalMod
	case "admin":
		return irc.RoleAdmin
	case "staff":
		return irc.RoleStaff
	default:
		return irc.RoleOther
	}
}

func stripLeadingHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

// unescapeTagValue decodes the five IRCv3 tag-value escapes.
func unescapeTagValue(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			out = append(out, s[i])
			continue
		}
		switch s[i+1] {
		case 's':
			out = append(out, ' ')
		case ':':
			out = append(out, ';')
		case '\\':
			out = append(out, '\\')
		case 'r':
			out = append(out, '\r')
		case 'n':
			out = append(out, '\n')
		default:
			out = append(out, s[i], s[i+1])
		}
		i++
	}
	return string(out)
}

func splitNonEmpty(s string, sep byte) []string {
	if len(s) == 0 {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func cutByte(s string, sep byte) (head, tail string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

type discardLogger struct{}

func (discardLogger) Warn(string, ...interface{})  {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Debug(string, ...interface{}) {}
