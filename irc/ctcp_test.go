package irc

import (
	"bytes"
	"testing"
)

func TestIsCTCP(t *testing.T) {
	yes, no := []byte("\x01yes\x01"), []byte("no")
	if !IsCTCP(yes) {
		t.Errorf("Expected (% X) to be a CTCP.", yes)
	}
	if IsCTCP(no) {
		t.Errorf("Expected (% X) to NOT be a CTCP.", no)
	}
}

func TestIsCTCPString(t *testing.T) {
	yes, no := "\x01yes\x01", "no"
	if !IsCTCPString(yes) {
		t.Errorf("Expected (%s) to be a CTCP.", yes)
	}
	if IsCTCPString(no) {
		t.Errorf("Expected (%s) to NOT be a CTCP.", no)
	}
}

func TestCTCPUnpack(t *testing.T) {
	in := []byte("\x01\x10\r\x10\n\x10\x10 \x5Ca\x5C\x5C\x01")
	expectTag := []byte("\r\n\x10")
	expectData := []byte("\x01\x5C")

	tag, data := CTCPunpack(in)
	if !bytes.Equal(tag, expectTag) {
		t.Errorf("tag: expected [% X] got [% X]", expectTag, tag)
	}
	if !bytes.Equal(data, expectData) {
		t.Errorf("data: expected [% X] got [% X]", expectData, data)
	}
}

func TestCTCPPack(t *testing.T) {
	tag := []byte("\r\n\x10")
	data := []byte("\x01\x5C")
	expect := []byte("\x01\x10\r\x10\n\x10\x10 \x5Ca\x5C\x5C\x01")

	out := CTCPpack(tag, data)
	if !bytes.Equal(out, expect) {
		t.Errorf("expected [% X] got [% X]", expect, out)
	}
}

func TestCTCPUnpackString(t *testing.T) {
	in := "\x01DCC SEND moozic.txt 1122250358 37294 130\x01"
	expectTag := "DCC"
	expectData := "SEND moozic.txt 1122250358 37294 130"

	tag, data := CTCPunpackString(in)
	if tag != expectTag {
		t.Errorf("tag: expected %q got %q", expectTag, tag)
	}
	if data != expectData {
		t.Errorf("data: expected %q got %q", expectData, data)
	}
}

func TestCTCPPackString(t *testing.T) {
	tag := "DCC"
	data := "SEND moozic.txt 1122250358 37294 130"
	expect := "\x01DCC SEND moozic.txt 1122250358 37294 130\x01"

	if out := CTCPpackString(tag, data); out != expect {
		t.Errorf("expected %q got %q", expect, out)
	}
}

func TestCTCPSplitJoinTagData(t *testing.T) {
	tag, data := ctcpSplitTagData([]byte("a b c d"))
	if !bytes.Equal(tag, []byte("a")) || !bytes.Equal(data, []byte("b c d")) {
		t.Errorf("ctcpSplitTagData = (%q, %q), want (\"a\", \"b c d\")", tag, data)
	}

	tag, data = ctcpSplitTagData([]byte("abcd"))
	if !bytes.Equal(tag, []byte("abcd")) || data != nil {
		t.Errorf("ctcpSplitTagData = (%q, %v), want (\"abcd\", nil)", tag, data)
	}

	joined := ctcpJoinTagData([]byte("a"), []byte("b c d"))
	if !bytes.Equal(joined, []byte("a b c d")) {
		t.Errorf("ctcpJoinTagData = %q, want \"a b c d\"", joined)
	}

	joined = ctcpJoinTagData([]byte("abcd"), nil)
	if !bytes.Equal(joined, []byte("abcd")) {
		t.Errorf("ctcpJoinTagData with no data = %q, want \"abcd\"", joined)
	}
}

func TestCTCPHighLevelEscapeRoundTrip(t *testing.T) {
	in := []byte("\x01\x5C")
	escaped := ctcpHighLevelEscape(in)
	expect := []byte("\x5Ca\x5C\x5C")
	if !bytes.Equal(escaped, expect) {
		t.Errorf("escape: expected [% X] got [% X]", expect, escaped)
	}
	if out := ctcpHighLevelUnescape(escaped); !bytes.Equal(out, in) {
		t.Errorf("round-trip: expected [% X] got [% X]", in, out)
	}
}

func TestCTCPLowLevelEscapeRoundTrip(t *testing.T) {
	in := []byte("\n\r\x00\x10")
	escaped := ctcpLowLevelEscape(in)
	expect := []byte("\x10\n\x10\r\x10\x00\x10\x10")
	if !bytes.Equal(escaped, expect) {
		t.Errorf("escape: expected [% X] got [% X]", expect, escaped)
	}
	if out := ctcpLowLevelUnescape(escaped); !bytes.Equal(out, in) {
		t.Errorf("round-trip: expected [% X] got [% X]", in, out)
	}
}
