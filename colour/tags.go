package colour

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// tagBytes maps a single-character tag to the mIRC control byte it expands
// to. `</>` always resets regardless of which of these opened it.
var tagBytes = map[byte]byte{
	'l': boldByte,
	'i': italicByte,
	'u': underlineByte,
}

// ExpandTags expands the project's `<tag>` shorthand into raw mIRC control
// codes: single-character tags (`<l>`, `<i>`, `<u>`), `</>` as a universal
// reset, numeric tags (`<N>`, `<N,M>`) as literal mIRC colour tokens, and
// `<h>...</h>` as a colour derived by hashing the enclosed text. `\<` is
// the only recognised escape, producing a literal `<`. A tag body longer
// than 5 characters, or one that matches none of the above, is passed
// through unexpanded, brackets included.
func ExpandTags(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '<':
			b.WriteByte('<')
			i += 2

		case s[i] == '<':
			end := strings.IndexByte(s[i+1:], '>')
			if end < 0 || end > 5 {
				b.WriteByte(s[i])
				i++
				continue
			}
			body := s[i+1 : i+1+end]
			consumed := i + 1 + end + 1

			if expanded, ok := expandTagBody(s, i, body); ok {
				b.WriteString(expanded.text)
				i = expanded.end
				continue
			}

			b.WriteString(s[i:consumed])
			i = consumed

		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}

type tagExpansion struct {
	text string
	end  int
}

// expandTagBody handles every recognised tag shape. pos is the index of
// the opening '<'; body is the text between '<' and '>' (max 5 bytes).
func expandTagBody(s string, pos int, body string) (tagExpansion, bool) {
	closeIdx := pos + 1 + len(body) + 1 // index just past the '>'

	if body == "/" {
		return tagExpansion{text: string(resetByte), end: closeIdx}, true
	}

	if len(body) == 1 {
		if code, ok := tagBytes[body[0]]; ok {
			return tagExpansion{text: string(code), end: closeIdx}, true
		}
	}

	if body == "h" {
		endTag := "</h>"
		rest := s[closeIdx:]
		idx := strings.Index(rest, endTag)
		if idx < 0 {
			return tagExpansion{}, false
		}
		content := rest[:idx]
		colourDigits := hashToColour(content)
		text := fmt.Sprintf("%c%02d%s%c", colourByte, colourDigits, content, resetByte)
		return tagExpansion{text: text, end: closeIdx + idx + len(endTag)}, true
	}

	if isNumericTagBody(body) {
		return tagExpansion{text: string(colourByte) + body, end: closeIdx}, true
	}

	return tagExpansion{}, false
}

func isNumericTagBody(body string) bool {
	if len(body) == 0 {
		return false
	}
	comma := strings.IndexByte(body, ',')
	fg := body
	if comma >= 0 {
		fg = body[:comma]
		bg := body[comma+1:]
		if len(bg) == 0 || !allDigits(bg) {
			return false
		}
	}
	return len(fg) > 0 && allDigits(fg)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// hashToColour derives a stable mIRC colour digit (0-15) from s's FNV-1a
// hash, so the same hashed text always renders the same colour.
func hashToColour(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % 16)
}
