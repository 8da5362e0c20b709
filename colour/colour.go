// Package colour translates between mIRC's control-byte colour/format
// codes and ANSI terminal escapes, in both directions (terminal rendering
// and plain stripping), plus a small project-local `<tag>` shorthand that
// expands to mIRC codes before either transform runs.
package colour

import (
	"fmt"
	"strings"
)

const (
	colourByte    = '\x03'
	boldByte      = '\x02'
	italicByte    = '\x1d'
	underlineByte = '\x1f'
	resetByte     = '\x0f'
)

// mircToAnsiFG maps mIRC colour digits 0-15 to an ANSI SGR foreground code.
var mircToAnsiFG = [16]int{
	97, 30, 34, 32, 91, 31, 35, 33,
	93, 92, 36, 96, 94, 95, 90, 37,
}

// mircToAnsiBG is the same table shifted into the background SGR range.
var mircToAnsiBG = [16]int{
	107, 40, 44, 42, 101, 41, 45, 43,
	103, 102, 46, 106, 104, 105, 100, 47,
}

// ToTerminal renders mIRC control codes in s as ANSI terminal escapes.
func ToTerminal(s string) string {
	return translate(s, true)
}

// Strip removes every mIRC control code from s, leaving plain text.
func Strip(s string) string {
	return translate(s, false)
}

func translate(s string, terminal bool) string {
	var b strings.Builder
	bold, italic, underline := false, false, false

	i := 0
	for i < len(s) {
		switch s[i] {
		case colourByte:
			i++
			fg, n := takeDigits(s, i, 2)
			i += n
			hasFG := n > 0

			bg, hasBG := -1, false
			if i < len(s) && s[i] == ',' {
				save := i + 1
				v, n2 := takeDigits(s, save, 2)
				if n2 > 0 {
					bg, hasBG = v, true
					i = save + n2
				}
			}

			if terminal {
				if !hasFG {
					b.WriteString("\x1b[39m\x1b[49m")
				} else {
					fmt.Fprintf(&b, "\x1b[%dm", mircToAnsiFG[fg%16])
					if hasBG {
						fmt.Fprintf(&b, "\x1b[%dm", mircToAnsiBG[bg%16])
					}
				}
			}

		case boldByte:
			if terminal {
				if bold {
					b.WriteString("\x1b[22m")
				} else {
					b.WriteString("\x1b[1m")
				}
			}
			bold = !bold
			i++

		case italicByte:
			if terminal {
				if italic {
					b.WriteString("\x1b[23m")
				} else {
					b.WriteString("\x1b[3m")
				}
			}
			italic = !italic
			i++

		case underlineByte:
			if terminal {
				if underline {
					b.WriteString("\x1b[24m")
				} else {
					b.WriteString("\x1b[4m")
				}
			}
			underline = !underline
			i++

		case resetByte:
			if terminal {
				b.WriteString("\x1b[0m")
			}
			bold, italic, underline = false, false, false
			i++

		default:
			b.WriteByte(s[i])
			i++
		}
	}

	if terminal && (bold || italic || underline) {
		b.WriteString("\x1b[0m")
	}

	return b.String()
}

// takeDigits consumes up to max ASCII digits starting at s[i:] and returns
// their value and how many bytes were consumed. n is 0 if s[i] is not a
// digit.
func takeDigits(s string, i, max int) (value, n int) {
	for n < max && i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		value = value*10 + int(s[i+n]-'0')
		n++
	}
	return value, n
}
