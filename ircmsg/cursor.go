package ircmsg

import "strings"

// cursor is a read-only position into an immutable line buffer. It replaces
// the mutable-ref-string idiom with a value that owns an index; every cut
// method returns a new head string and advances pos, never aliasing or
// mutating buf itself.
type cursor struct {
	buf string
	pos int
}

func newCursor(line string) cursor {
	return cursor{buf: line}
}

// rest returns everything from pos to the end of buf.
func (c *cursor) rest() string {
	return c.buf[c.pos:]
}

func (c *cursor) done() bool {
	return c.pos >= len(c.buf)
}

// cutByte locates the first occurrence of sep in the remainder, returns the
// prefix, and advances past sep. If sep is absent, returns ("", false) and
// leaves the cursor untouched.
func (c *cursor) cutByte(sep byte) (head string, ok bool) {
	r := c.rest()
	i := strings.IndexByte(r, sep)
	if i < 0 {
		return "", false
	}
	c.pos += i + 1
	return r[:i], true
}

// token extracts the next space-delimited token, advancing past the
// separating space. If no space remains, the whole rest of the buffer is
// consumed and returned.
func (c *cursor) token() string {
	r := c.rest()
	i := strings.IndexByte(r, ' ')
	if i < 0 {
		c.pos = len(c.buf)
		return r
	}
	c.pos += i + 1
	return r[:i]
}

// cutSpaceOrTrailing extracts a token up to the first space, consuming the
// whole remainder if no space is present — used by Stage 1 to pull a bare
// command that may or may not have further arguments.
func (c *cursor) cutSpaceOrTrailing() string {
	return c.token()
}

// splitTrailing splits the remainder into a positional head and an IRC
// "trailing" parameter, consuming the cursor to its end. Two shapes:
//   - the remainder itself begins with ':' (all prior positional tokens
//     have already been consumed via token()) — head is empty, trailing is
//     everything after that colon;
//   - the remainder contains an embedded " :" marker — head is everything
//     before it, trailing is everything after.
//
// If neither shape matches, ok is false, head is the whole remainder, and
// trailing is empty.
func (c *cursor) splitTrailing() (head, trailing string, ok bool) {
	r := c.rest()
	defer func() { c.pos = len(c.buf) }()

	if len(r) > 0 && r[0] == ':' {
		return "", r[1:], true
	}
	if i := strings.Index(r, " :"); i >= 0 {
		return r[:i], r[i+2:], true
	}
	return r, "", false
}
