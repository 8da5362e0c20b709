package irc

import "testing"

func TestCTCPType(t *testing.T) {
	tests := []struct {
		token string
		want  Type
		ok    bool
	}{
		{"PING", Type("CTCP_PING"), true},
		{"version", Type("CTCP_VERSION"), true},
		{"ACTION", UNSET, false},
		{"BOGUS", UNSET, false},
	}
	for _, tt := range tests {
		got, ok := CTCPType(tt.token)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CTCPType(%q) = (%v, %v), want (%v, %v)", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRole_String(t *testing.T) {
	if s := RoleBroadcaster.String(); s != "broadcaster" {
		t.Errorf("expected broadcaster, got %s", s)
	}
	if s := RoleUnset.String(); s != "" {
		t.Errorf("expected empty string for unset role, got %q", s)
	}
}

func TestUpgradeRole(t *testing.T) {
	if got := UpgradeRole(RoleMember, RoleMod); got != RoleMod {
		t.Errorf("expected upgrade to RoleMod, got %v", got)
	}
	if got := UpgradeRole(RoleMod, RoleMember); got != RoleMod {
		t.Errorf("expected RoleMod to stick, got %v", got)
	}
	if got := UpgradeRole(RoleBroadcaster, RoleBroadcaster); got != RoleBroadcaster {
		t.Errorf("expected equal role to stick, got %v", got)
	}
}
