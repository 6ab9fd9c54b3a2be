package magic

import "github.com/hailam/rookmagic/internal/board"

// verifier checks candidate multipliers against an occupancy table without
// clearing its slots between trials. A slot belongs to the current trial only
// when its stamp equals gen, so starting a trial costs one increment.
type verifier struct {
	attacks [TableSize]board.Bitboard
	stamps  [TableSize]uint32
	gen     uint32
}

// begin starts a new trial. Stamps are cleared only when gen wraps.
func (v *verifier) begin() {
	v.gen++
	if v.gen == 0 {
		clear(v.stamps[:])
		v.gen = 1
	}
}

// check reports whether mul maps every occupancy in table to a slot that
// never holds two different attack sets. It stops at the first conflict.
func (v *verifier) check(mul uint64, shift uint, table []board.Occupancy) bool {
	v.begin()
	for _, e := range table {
		idx := Index(Hash(uint64(e.Occupied), mul, shift))
		if v.stamps[idx] != v.gen {
			v.stamps[idx] = v.gen
			v.attacks[idx] = e.Attacks
			continue
		}
		if v.attacks[idx] != e.Attacks {
			return false
		}
	}
	return true
}
