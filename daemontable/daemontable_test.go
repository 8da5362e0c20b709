package daemontable

import (
	"testing"

	"github.com/zorael/kameloso-sub000/irc"
)

func TestLookup_Base(t *testing.T) {
	typ, ok := Lookup(irc.ERR_NICKNAMEINUSE, irc.DaemonUnknown)
	if !ok || typ != irc.NicknameInUse {
		t.Errorf("Lookup(433, unknown) = (%v, %v), want (%v, true)", typ, ok, irc.NicknameInUse)
	}
}

func TestLookup_DeltaOverridesBase(t *testing.T) {
	// 435 is ERR_BANONCHAN in the base table but ERR_SERVICESDOWN under Rizon.
	baseTyp, _ := Lookup(435, irc.DaemonUnknown)
	if baseTyp != irc.ErrBanOnChan {
		t.Fatalf("expected base 435 to be ERR_BANONCHAN, got %v", baseTyp)
	}

	rizonTyp, ok := Lookup(435, irc.DaemonRizon)
	if !ok || rizonTyp != irc.ErrServicesDown {
		t.Errorf("Lookup(435, rizon) = (%v, %v), want (%v, true)", rizonTyp, ok, irc.ErrServicesDown)
	}
}

func TestLookup_DeltaFallsBackToBase(t *testing.T) {
	// Unreal has no delta for 433, so it must fall back to the base entry.
	typ, ok := Lookup(irc.ERR_NICKNAMEINUSE, irc.DaemonUnreal)
	if !ok || typ != irc.NicknameInUse {
		t.Errorf("Lookup(433, unreal) = (%v, %v), want (%v, true)", typ, ok, irc.NicknameInUse)
	}
}

func TestLookup_Unknown(t *testing.T) {
	typ, ok := Lookup(999999, irc.DaemonUnknown)
	if ok || typ != irc.NUMERIC {
		t.Errorf("Lookup(999999, unknown) = (%v, %v), want (%v, false)", typ, ok, irc.NUMERIC)
	}
}

func TestLookup_LineageSharesDelta(t *testing.T) {
	// ircu, snircd and Nefarious are P10 forks that share UnderNet's dialect.
	for _, d := range []irc.Daemon{irc.DaemonIrcu, irc.DaemonSnircd, irc.DaemonNefarious} {
		typ, ok := Lookup(338, d)
		if !ok || typ != irc.WhoisActually {
			t.Errorf("Lookup(338, %v) = (%v, %v), want (%v, true)", d, typ, ok, irc.WhoisActually)
		}
	}

	// ratbox and Charybdis are ircd-hybrid descendants and track Hybrid's table.
	for _, d := range []irc.Daemon{irc.DaemonRatbox, irc.DaemonCharybdis} {
		hybridTyp, _ := Lookup(irc.RPL_WELCOME, irc.DaemonHybrid)
		lineageTyp, ok := Lookup(irc.RPL_WELCOME, d)
		if !ok || lineageTyp != hybridTyp {
			t.Errorf("Lookup(RPL_WELCOME, %v) = (%v, %v), want (%v, true)", d, lineageTyp, ok, hybridTyp)
		}
	}
}

func TestLookup_IsDeterministic(t *testing.T) {
	a, _ := Lookup(irc.RPL_WELCOME, irc.DaemonHybrid)
	b, _ := Lookup(irc.RPL_WELCOME, irc.DaemonHybrid)
	if a != b {
		t.Errorf("expected deterministic lookup, got %v then %v", a, b)
	}
}
