package twitchtags

import (
	"testing"

	"github.com/zorael/kameloso-sub000/irc"
)

func TestMerge_DisplayName(t *testing.T) {
	ev := &irc.Event{}
	Merge("display-name=Zorael", ev, nil)
	if ev.Sender.Alias != "Zorael" {
		t.Errorf("Alias = %q, want %q", ev.Sender.Alias, "Zorael")
	}
}

func TestMerge_Badges(t *testing.T) {
	ev := &irc.Event{}
	Merge("badges=moderator/1,subscriber/12", ev, nil)
	if ev.Role != irc.RoleMod {
		t.Errorf("Role = %v, want %v", ev.Role, irc.RoleMod)
	}
	if ev.RoleString != "moderator/1,subscriber/12" {
		t.Errorf("RoleString = %q", ev.RoleString)
	}
}

func TestMerge_BoolTagsUpgradeRole(t *testing.T) {
	ev := &irc.Event{}
	Merge("mod=1", ev, nil)
	if ev.Role != irc.RoleMod {
		t.Errorf("Role = %v, want %v", ev.Role, irc.RoleMod)
	}

	ev = &irc.Event{Role: irc.RoleMod}
	Merge("subscriber=1", ev, nil)
	if ev.Role != irc.RoleMod {
		t.Errorf("subscriber=1 should not downgrade mod, got %v", ev.Role)
	}
}

func TestMerge_BanDuration(t *testing.T) {
	ev := &irc.Event{}
	Merge("ban-duration=600", ev, nil)
	if ev.Aux != "600" {
		t.Errorf("Aux = %q, want %q", ev.Aux, "600")
	}

	ev = &irc.Event{}
	Merge("ban-duration=", ev, nil)
	if ev.Aux != "PERMANENT" {
		t.Errorf("Aux = %q, want PERMANENT", ev.Aux)
	}
}

func TestMerge_SystemMsgEscapes(t *testing.T) {
	ev := &irc.Event{}
	Merge(`system-msg=foo\sbar\:baz\\qux`, ev, nil)
	if ev.Content != "foo bar;baz\\qux" {
		t.Errorf("Content = %q", ev.Content)
	}
}

func TestMerge_EmoteOnlyRewritesChanToEmote(t *testing.T) {
	ev := &irc.Event{Type: irc.CHAN}
	Merge("emote-only=1", ev, nil)
	if ev.Type != irc.EMOTE {
		t.Errorf("Type = %v, want EMOTE", ev.Type)
	}
}

func TestMerge_MsgID(t *testing.T) {
	cases := []struct {
		msgID string
		want  irc.Type
	}{
		{"host_on", irc.HOSTSTART},
		{"host_off", irc.HOSTEND},
		{"host_target_went_offline", irc.HOSTEND},
		{"sub", irc.SUB},
		{"resub", irc.RESUB},
	}
	for _, c := range cases {
		ev := &irc.Event{}
		Merge("msg-id="+c.msgID, ev, nil)
		if ev.Type != c.want {
			t.Errorf("msg-id=%s: Type = %v, want %v", c.msgID, ev.Type, c.want)
		}
	}
}

func TestMerge_SubPlanComposesAux(t *testing.T) {
	ev := &irc.Event{}
	Merge("msg-param-months=6;msg-param-sub-plan=1000;msg-param-sub-plan-name=Cool+Plan", ev, nil)
	if ev.Aux != "6x1000xCool+Plan" {
		t.Errorf("Aux = %q", ev.Aux)
	}

	ev = &irc.Event{}
	Merge("msg-param-months=3;msg-param-sub-plan=Prime", ev, nil)
	if ev.Aux != "3xPrime" {
		t.Errorf("Aux = %q", ev.Aux)
	}
}

func TestMerge_Color(t *testing.T) {
	ev := &irc.Event{}
	Merge("color=#FF0000", ev, nil)
	if ev.Colour != "FF0000" {
		t.Errorf("Colour = %q, want %q", ev.Colour, "FF0000")
	}
}

func TestMerge_IgnoredKeysAreNoOps(t *testing.T) {
	ev := &irc.Event{}
	Merge("room-id=12345;user-id=67890", ev, nil)
	if (*ev) != (irc.Event{}) {
		t.Errorf("ignored keys mutated event: %+v", ev)
	}
}

func TestMerge_S8Scenario(t *testing.T) {
	ev := &irc.Event{Channel: "#zorael"}
	Merge("display-name=Zorael;mod=1;color=#FF0000", ev, nil)
	if ev.Sender.Alias != "Zorael" || ev.Role != irc.RoleMod || ev.Colour != "FF0000" {
		t.Errorf("got alias=%q role=%v colour=%q", ev.Sender.Alias, ev.Role, ev.Colour)
	}
}
