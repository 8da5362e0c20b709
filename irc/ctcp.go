package irc

import "bytes"

// CTCP framing bytes, per the client-to-client protocol layered on top of
// PRIVMSG/NOTICE content.
const (
	ctcpDelim     = '\x01'
	ctcpLowQuote  = '\x10' // quotes NUL/CR/LF for the wire
	ctcpHighQuote = '\x5C' // quotes the delimiter and itself
	ctcpSep       = '\x20'
)

// IsCTCP reports whether msg is delimited on both ends by the CTCP marker
// byte. Callers must ensure msg is non-empty.
func IsCTCP(msg []byte) bool {
	return msg[0] == ctcpDelim && msg[len(msg)-1] == ctcpDelim
}

// IsCTCPString is IsCTCP for a string.
func IsCTCPString(msg string) bool {
	return msg[0] == ctcpDelim && msg[len(msg)-1] == ctcpDelim
}

// CTCPunpack strips msg's delimiters and both levels of quoting, returning
// the command tag and its (possibly absent) argument data.
func CTCPunpack(msg []byte) (tag []byte, data []byte) {
	body := ctcpLowLevelUnescape(msg[1 : len(msg)-1])
	tag, data = ctcpSplitTagData(body)
	tag = ctcpHighLevelUnescape(tag)
	if data != nil {
		data = ctcpHighLevelUnescape(data)
	}
	return tag, data
}

// CTCPunpackString is CTCPunpack for strings.
func CTCPunpackString(msg string) (tag, data string) {
	t, d := CTCPunpack([]byte(msg))
	return string(t), string(d)
}

// CTCPpack quotes tag and data at both protocol levels and wraps the result
// in CTCP delimiters, ready to go out as PRIVMSG/NOTICE content.
func CTCPpack(tag, data []byte) []byte {
	if data != nil {
		data = ctcpHighLevelEscape(data)
	}
	body := ctcpLowLevelEscape(ctcpJoinTagData(ctcpHighLevelEscape(tag), data))

	out := make([]byte, len(body)+2)
	out[0] = ctcpDelim
	out[len(out)-1] = ctcpDelim
	copy(out[1:], body)
	return out
}

// CTCPpackString is CTCPpack for strings.
func CTCPpackString(tag, data string) string {
	return string(CTCPpack([]byte(tag), []byte(data)))
}

// ctcpSplitTagData splits the unquoted CTCP body into its tag and argument
// data at the first space, per the X-MSG grammar (X-N-AS+ (SPC X-CHR*)?).
func ctcpSplitTagData(body []byte) (tag, data []byte) {
	parts := bytes.SplitN(body, []byte{ctcpSep}, 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], nil
}

// ctcpJoinTagData is the inverse of ctcpSplitTagData: it reattaches data
// after tag with a single separating space, or returns tag unchanged when
// there is no data to attach.
func ctcpJoinTagData(tag, data []byte) []byte {
	if len(data) == 0 {
		return tag
	}
	out := make([]byte, len(tag)+1+len(data))
	copy(out, tag)
	out[len(tag)] = ctcpSep
	copy(out[len(tag)+1:], data)
	return out
}

// ctcpHighLevelEscape quotes the CTCP delimiter byte and the high-level
// quote character itself, so neither can be confused with protocol framing
// once the message is wrapped in delimiters.
func ctcpHighLevelEscape(in []byte) []byte {
	out := bytes.Replace(in, []byte{ctcpHighQuote}, []byte{ctcpHighQuote, ctcpHighQuote}, -1)
	return bytes.Replace(out, []byte{ctcpDelim}, []byte{ctcpHighQuote, 'a'}, -1)
}

// ctcpHighLevelUnescape reverses ctcpHighLevelEscape.
func ctcpHighLevelUnescape(in []byte) []byte {
	out := bytes.Replace(in, []byte{ctcpHighQuote, 'a'}, []byte{ctcpDelim}, -1)
	return bytes.Replace(out, []byte{ctcpHighQuote, ctcpHighQuote}, []byte{ctcpHighQuote}, -1)
}

// ctcpLowLevelEscape quotes the bytes that would otherwise be mangled by
// the IRC line-oriented wire format: NUL, CR, LF and the low quote itself.
func ctcpLowLevelEscape(in []byte) []byte {
	out := bytes.Replace(in, []byte{ctcpLowQuote}, []byte{ctcpLowQuote, ctcpLowQuote}, -1)
	out = bytes.Replace(out, []byte{'\r'}, []byte{ctcpLowQuote, '\r'}, -1)
	out = bytes.Replace(out, []byte{'\n'}, []byte{ctcpLowQuote, '\n'}, -1)
	out = bytes.Replace(out, []byte{0x00}, []byte{ctcpLowQuote, 0x00}, -1)
	return out
}

// ctcpLowLevelUnescape reverses ctcpLowLevelEscape.
func ctcpLowLevelUnescape(in []byte) []byte {
	out := bytes.Replace(in, []byte{ctcpLowQuote, 0x00}, []byte{0x00}, -1)
	out = bytes.Replace(out, []byte{ctcpLowQuote, '\n'}, []byte{'\n'}, -1)
	out = bytes.Replace(out, []byte{ctcpLowQuote, '\r'}, []byte{'\r'}, -1)
	out = bytes.Replace(out, []byte{ctcpLowQuote, ctcpLowQuote}, []byte{ctcpLowQuote}, -1)
	return out
}
