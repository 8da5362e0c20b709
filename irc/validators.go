package irc

import "strings"

// networkSuffixes maps a dotted address suffix to the network name it
// belongs to. NetworkOf checks the entries in map order and returns the
// first match.
var networkSuffixes = map[string]string{
	".freenode.net":     "freenode",
	".libera.chat":      "libera",
	".oftc.net":         "oftc",
	".quakenet.org":     "quakenet",
	".rizon.net":        "rizon",
	".gamesurge.net":    "gamesurge",
	".undernet.org":     "undernet",
	".efnet.org":        "efnet",
	".dal.net":          "dalnet",
	".swiftirc.net":     "swiftirc",
	".twitch.tv":        "twitch",
	".ircnet.net":       "ircnet",
	".espernet.org":     "esper",
	".snoonet.org":      "snoonet",
	".geekshed.net":     "geekshed",
	".chatspike.net":    "chatspike",
	".explosionirc.net": "explosionirc",
}

// NetworkOf guesses the network name from a server address by matching known
// dotted suffixes, e.g. "tepper.freenode.net" -> "freenode". Returns
// "unknown" when nothing matches.
func NetworkOf(address string) string {
	for suffix, network := range networkSuffixes {
		if strings.HasSuffix(address, suffix) {
			return network
		}
	}
	return "unknown"
}

// IsValidChannel reports whether s is a well-formed channel name under the
// given chantypes and max length: first byte in chantypes; length 2..maxLen;
// no space, no comma, no ^G (byte 7); no second chantype-prefix byte past
// position 2.
func IsValidChannel(s string, chantypes string, maxLen int) bool {
	if len(s) < 2 || len(s) > maxLen {
		return false
	}
	if !strings.ContainsRune(chantypes, rune(s[0])) {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case ' ', ',', 7:
			return false
		}
		if i > 1 && strings.ContainsRune(chantypes, rune(s[i])) {
			return false
		}
	}
	return true
}

// validNickChar mirrors the RFC2812 grammar extended with the common IRCd
// special characters: [A-Za-z0-9_\[\]{}^`|-].
func validNickChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '[', c == ']', c == '{', c == '}', c == '^', c == '`', c == '|', c == '-':
		return true
	}
	return false
}

// IsValidNickname reports whether s is 1..maxLen characters drawn from the
// nickname alphabet.
func IsValidNickname(s string, maxLen int) bool {
	if len(s) < 1 || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !validNickChar(s[i]) {
			return false
		}
	}
	return true
}

// modeSigns is the set of status-prefix characters StripModeSign recognises.
const modeSigns = "@+~%"

// StripModeSign drops a leading status-prefix character (@, +, ~, %) from s,
// or returns s unchanged if it has none.
func StripModeSign(s string) string {
	if len(s) > 0 && strings.IndexByte(modeSigns, s[0]) >= 0 {
		return s[1:]
	}
	return s
}

// knownServiceSuffixes and knownServicePrefixes match a sender's host against
// a small hard-coded table of well-known network services.
var knownServiceSuffixes = []string{".quakenet.org"}
var knownServicePrefixes = []string{"services."}

// IsKnownService reports whether the given ident/host pair identifies a
// well-known network services pseudo-client.
func IsKnownService(ident, host string) bool {
	if ident == "service" && host == "rizon.net" {
		return true
	}
	for _, suffix := range knownServiceSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	for _, prefix := range knownServicePrefixes {
		if strings.HasPrefix(host, prefix) {
			return true
		}
	}
	return false
}
