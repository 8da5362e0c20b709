package eventstream

import (
	"testing"

	"github.com/zorael/kameloso-sub000/irc"
)

func TestToRecord(t *testing.T) {
	ev := irc.NewEvent(":nick!ident@host PRIVMSG #chan :hello")
	ev.Type = irc.CHAN
	ev.Sender = irc.User{Nickname: "nick", Ident: "ident", Address: "host"}
	ev.Channel = "#chan"
	ev.Content = "hello"

	rec := ToRecord(ev)
	if rec.Type != "CHAN" {
		t.Errorf("Type = %q, want CHAN", rec.Type)
	}
	if rec.SenderNick != "nick" || rec.SenderIdent != "ident" || rec.SenderAddress != "host" {
		t.Errorf("sender fields = %+v", rec)
	}
	if rec.Channel != "#chan" || rec.Content != "hello" {
		t.Errorf("channel/content = %+v", rec)
	}
	if rec.UnixNano == 0 {
		t.Error("expected a non-zero timestamp")
	}
}
