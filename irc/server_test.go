package irc

import "testing"

func TestNewServer_Defaults(t *testing.T) {
	s := NewServer()
	if s.NickLen() != defaultNickLen {
		t.Errorf("expected default nick len %d, got %d", defaultNickLen, s.NickLen())
	}
	if s.ChannelLen() != defaultChannelLen {
		t.Errorf("expected default channel len %d, got %d", defaultChannelLen, s.ChannelLen())
	}
	if s.Chantypes() != defaultChantypes {
		t.Errorf("expected default chantypes %q, got %q", defaultChantypes, s.Chantypes())
	}
}

func TestServer_SetAddress_FirstWins(t *testing.T) {
	s := NewServer()
	s.SetAddress("irc.libera.chat")
	s.SetAddress("irc.other.net")
	if got := s.Address(); got != "irc.libera.chat" {
		t.Errorf("expected first address to stick, got %q", got)
	}
	if !s.Updated {
		t.Error("expected Updated to be set")
	}
}

func TestServer_SetAddress_Empty(t *testing.T) {
	s := NewServer()
	s.SetAddress("")
	if s.Updated {
		t.Error("expected no update for empty address")
	}
}

func TestServer_ApplyISupportToken(t *testing.T) {
	s := NewServer()

	if ok := s.ApplyISupportToken("NETWORK", "Libera.Chat"); !ok {
		t.Error("expected NETWORK token to apply")
	}
	if s.Network() != "Libera.Chat" {
		t.Errorf("expected network to be set, got %q", s.Network())
	}

	if ok := s.ApplyISupportToken("NICKLEN", "30"); !ok {
		t.Error("expected NICKLEN token to apply")
	}
	if s.NickLen() != 30 {
		t.Errorf("expected nick len 30, got %d", s.NickLen())
	}

	if ok := s.ApplyISupportToken("NICKLEN", "notanumber"); ok {
		t.Error("expected malformed NICKLEN to be rejected")
	}

	if ok := s.ApplyISupportToken("CHANMODES", "eIbq,k,flj,CFLMPQScgimnprstz"); !ok {
		t.Error("expected CHANMODES token to apply")
	}
	if ok := s.ApplyISupportToken("CHANMODES", "a,b"); ok {
		t.Error("expected malformed CHANMODES to be rejected")
	}

	if ok := s.ApplyISupportToken("PREFIX", "(ov)@+"); !ok {
		t.Error("expected PREFIX token to apply")
	}
	if ok := s.ApplyISupportToken("PREFIX", "ov@+"); ok {
		t.Error("expected malformed PREFIX to be rejected")
	}

	if ok := s.ApplyISupportToken("EXTBAN", "$,acjmorxz"); !ok {
		t.Error("expected unrecognised-but-harmless token to be accepted")
	}
}

func TestServer_GuessNetwork(t *testing.T) {
	s := NewServer()
	s.SetAddress("tepper.freenode.net")
	s.GuessNetwork()
	if s.Network() != "freenode" {
		t.Errorf("expected guessed network freenode, got %q", s.Network())
	}

	s2 := NewServer()
	s2.ApplyISupportToken("NETWORK", "Explicit")
	s2.SetAddress("tepper.freenode.net")
	s2.GuessNetwork()
	if s2.Network() != "Explicit" {
		t.Errorf("expected explicit network to stick, got %q", s2.Network())
	}
}

func TestSplitPrefixValue(t *testing.T) {
	modes, chars, ok := splitPrefixValue("(ov)@+")
	if !ok || modes != "ov" || chars != "@+" {
		t.Errorf("got (%q, %q, %v), want (ov, @+, true)", modes, chars, ok)
	}
	if _, _, ok := splitPrefixValue("ov@+"); ok {
		t.Error("expected missing leading paren to fail")
	}
	if _, _, ok := splitPrefixValue("(ov@+"); ok {
		t.Error("expected missing closing paren to fail")
	}
}
