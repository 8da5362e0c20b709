// Package daemontable implements the layered numeric-to-event-type lookup:
// a base RFC1459/2812 table overlaid by per-daemon delta tables. Resolution
// prefers the active daemon's delta entry over the base entry; an unknown
// numeric under both layers resolves to irc.NUMERIC so the caller can still
// preserve the raw numeric.
//
// Tables are embedded TOML, decoded once on the first Lookup with
// github.com/BurntSushi/toml, the same way the teacher loads its network
// configuration file.
package daemontable

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/zorael/kameloso-sub000/irc"
)

//go:embed base.toml
var baseTOML []byte

//go:embed deltas_unreal.toml
var unrealTOML []byte

//go:embed deltas_bahamut.toml
var bahamutTOML []byte

//go:embed deltas_inspircd.toml
var inspircdTOML []byte

//go:embed deltas_hybrid.toml
var hybridTOML []byte

//go:embed deltas_rizon.toml
var rizonTOML []byte

//go:embed deltas_undernet.toml
var undernetTOML []byte

type numericTable struct {
	Numerics map[string]string `toml:"numerics"`
}

var (
	once      sync.Once
	base      map[int]irc.Type
	deltas    map[irc.Daemon]map[int]irc.Type
	loadError error
)

// decodeTable decodes one embedded TOML blob into a numeric->Type map.
func decodeTable(data []byte) (map[int]irc.Type, error) {
	var raw numericTable
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(err, "daemontable: decoding numeric table")
	}
	out := make(map[int]irc.Type, len(raw.Numerics))
	for k, v := range raw.Numerics {
		var n int
		if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
			return nil, errors.Wrapf(err, "daemontable: numeric key %q", k)
		}
		out[n] = irc.Type(v)
	}
	return out, nil
}

func load() {
	base, loadError = decodeTable(baseTOML)
	if loadError != nil {
		return
	}

	deltas = make(map[irc.Daemon]map[int]irc.Type, 11)
	layers := []struct {
		daemon irc.Daemon
		data   []byte
	}{
		{irc.DaemonUnreal, unrealTOML},
		{irc.DaemonBahamut, bahamutTOML},
		{irc.DaemonInspIRCd, inspircdTOML},
		{irc.DaemonHybrid, hybridTOML},
		{irc.DaemonRizon, rizonTOML},
		{irc.DaemonUndernet, undernetTOML},
	}
	for _, l := range layers {
		table, err := decodeTable(l.data)
		if err != nil {
			loadError = err
			return
		}
		deltas[l.daemon] = table
	}

	// Daemons descended from an already-loaded lineage share its delta
	// table rather than getting an invented one of their own: ircu is the
	// P10 daemon UnderNet runs, and snircd/Nefarious are both ircu forks
	// that kept the same numeric dialect. ratbox and Charybdis are both
	// ircd-hybrid descendants and likewise track Hybrid's table.
	for _, l := range []struct {
		daemon  irc.Daemon
		lineage irc.Daemon
	}{
		{irc.DaemonIrcu, irc.DaemonUndernet},
		{irc.DaemonSnircd, irc.DaemonUndernet},
		{irc.DaemonNefarious, irc.DaemonUndernet},
		{irc.DaemonRatbox, irc.DaemonHybrid},
		{irc.DaemonCharybdis, irc.DaemonHybrid},
	} {
		deltas[l.daemon] = deltas[l.lineage]
	}
}

// Lookup resolves (numeric, daemon) to a Type. The active daemon's delta
// table is consulted first; absent there, the base table; absent in both,
// Lookup returns (irc.NUMERIC, false) so the caller preserves num and logs
// a diagnostic.
//
// Lookup panics only if the embedded tables fail to decode, which would
// indicate a build-time data corruption rather than a runtime condition —
// this mirrors the teacher's config loader, which treats a malformed
// embedded/loaded file as unrecoverable.
func Lookup(num int, daemon irc.Daemon) (irc.Type, bool) {
	once.Do(load)
	if loadError != nil {
		panic(errors.Wrap(loadError, "daemontable: failed to load embedded tables"))
	}

	if table, ok := deltas[daemon]; ok {
		if t, ok := table[num]; ok {
			return t, true
		}
	}
	if t, ok := base[num]; ok {
		return t, true
	}
	return irc.NUMERIC, false
}
