package irc

import "testing"

func TestUser_IsServer(t *testing.T) {
	tests := []struct {
		name string
		u    User
		want bool
	}{
		{"nick set", User{Nickname: "nick"}, false},
		{"server address", User{Address: "irc.libera.chat"}, true},
		{"bare token, no dot", User{Address: "services"}, false},
		{"zero value", User{}, false},
	}
	for _, tt := range tests {
		if got := tt.u.IsServer(); got != tt.want {
			t.Errorf("%s: IsServer() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewEvent(t *testing.T) {
	raw := ":irc.libera.chat 001 nick :Welcome"
	ev := NewEvent(raw)
	if ev.Raw != raw {
		t.Errorf("expected Raw to be preserved, got %q", ev.Raw)
	}
	if ev.Time.IsZero() {
		t.Error("expected Time to be stamped")
	}
}

func TestEvent_IsTargetChan(t *testing.T) {
	ev := Event{}
	if ev.IsTargetChan() {
		t.Error("expected no channel target on zero-value Event")
	}
	ev.Channel = "#chan"
	if !ev.IsTargetChan() {
		t.Error("expected channel target once Channel is set")
	}
}
