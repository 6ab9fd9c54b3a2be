package magic

import (
	"fmt"

	"github.com/hailam/rookmagic/internal/board"
)

// DefaultMaxOnes is the default popcount ceiling.
const DefaultMaxOnes = 10

// Branch selects which value of a multiplier bit the search tries first.
type Branch uint8

const (
	// ClearFirst tries a bit at 0 before 1, starting from bit 0.
	ClearFirst Branch = iota
	// SetFirst tries a bit at 1 before 0.
	SetFirst
)

// Options configures a Searcher.
type Options struct {
	// MaxOnes is the largest popcount tried, in [1, 64].
	MaxOnes int

	// Order is the tie-break between multipliers of equal popcount. With
	// ClearFirst the accepted multiplier is the first one in the order that
	// compares bit 0, then bit 1, and so on, with 0 before 1.
	Order Branch

	// Progress, if set, is called before each popcount budget is searched.
	Progress func(ones int)
}

// DefaultOptions returns the options the CLI uses.
func DefaultOptions() Options {
	return Options{
		MaxOnes: DefaultMaxOnes,
		Order:   ClearFirst,
	}
}

// Result is an accepted magic.
type Result struct {
	Square board.Square
	Magic  uint64
	Shift  uint
	Ones   int    // popcount of Magic
	Trials uint64 // leaves verified across all budgets
}

// String formats the result as "<magic> <shift>".
func (r Result) String() string {
	return fmt.Sprintf("%d %d", r.Magic, r.Shift)
}

// Searcher finds magics by popcount-bounded backtracking over the 64 bits of
// the multiplier. It owns its verification table, so one Searcher must not be
// used from several goroutines at once; separate Searchers are independent.
type Searcher struct {
	opts     Options
	branches [2]bool
	v        *verifier

	table  []board.Occupancy
	trials uint64
}

// searchState is one node of the decision tree: bits below bit are decided
// and budget ones remain to be placed.
type searchState struct {
	bit    int
	budget int
	mul    uint64
}

// NewSearcher creates a searcher.
func NewSearcher(opts Options) (*Searcher, error) {
	if opts.MaxOnes < 1 || opts.MaxOnes > 64 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyOnes, opts.MaxOnes)
	}
	s := &Searcher{
		opts: opts,
		v:    &verifier{},
	}
	if opts.Order == SetFirst {
		s.branches = [2]bool{true, false}
	} else {
		s.branches = [2]bool{false, true}
	}
	return s, nil
}

// Find searches budgets 1..MaxOnes in turn and returns the first multiplier
// whose popcount equals the budget and which maps table without attack
// collisions. The table must not change during the call.
//
// A table with two occupancies that agree above bit Shift but differ in
// attacks fails before any budget is tried: every multiplier hashes them to
// the same slot.
func (s *Searcher) Find(sq board.Square, table []board.Occupancy) (Result, error) {
	if a, b, ok := shiftedOut(table, Shift); ok {
		return Result{}, fmt.Errorf("%w: square %s, occupancies %#x and %#x differ only below bit %d",
			ErrExhausted, sq, uint64(a), uint64(b), Shift)
	}

	s.table = table
	s.trials = 0
	defer func() { s.table = nil }()

	for ones := 1; ones <= s.opts.MaxOnes; ones++ {
		if s.opts.Progress != nil {
			s.opts.Progress(ones)
		}
		if mul, ok := s.descend(searchState{budget: ones}); ok {
			return Result{
				Square: sq,
				Magic:  mul,
				Shift:  Shift,
				Ones:   ones,
				Trials: s.trials,
			}, nil
		}
	}

	return Result{}, fmt.Errorf("%w: square %s, up to %d ones, %d trials",
		ErrExhausted, sq, s.opts.MaxOnes, s.trials)
}

// descend walks the subtree below st depth first, in branch order, and
// returns the first accepted leaf.
func (s *Searcher) descend(st searchState) (uint64, bool) {
	if st.bit == 64 {
		if st.budget != 0 {
			return 0, false
		}
		s.trials++
		if !s.v.check(st.mul, Shift, s.table) {
			return 0, false
		}
		return st.mul, true
	}

	// Not enough bits left to spend the budget.
	if st.budget > 64-st.bit {
		return 0, false
	}

	for _, set := range s.branches {
		next := searchState{bit: st.bit + 1, budget: st.budget, mul: st.mul}
		if set {
			if st.budget == 0 {
				continue
			}
			next.budget--
			next.mul |= 1 << uint(st.bit)
		}
		if mul, ok := s.descend(next); ok {
			return mul, true
		}
	}
	return 0, false
}

// shiftedOut returns two occupancies of table that are equal once shifted
// right by shift but have different attacks.
func shiftedOut(table []board.Occupancy, shift uint) (a, b board.Bitboard, ok bool) {
	seen := make(map[board.Bitboard]board.Occupancy, len(table))
	for _, e := range table {
		key := e.Occupied >> shift
		prev, found := seen[key]
		if !found {
			seen[key] = e
			continue
		}
		if prev.Attacks != e.Attacks {
			return prev.Occupied, e.Occupied, true
		}
	}
	return 0, 0, false
}

// FindMagic builds the occupancy table for a rook on sq and searches it.
func FindMagic(sq board.Square, opts Options) (Result, error) {
	if !sq.IsValid() {
		return Result{}, fmt.Errorf("%w: %d", board.ErrInvalidSquare, sq)
	}

	s, err := NewSearcher(opts)
	if err != nil {
		return Result{}, err
	}

	table := board.EnumerateOccupancies(sq, board.RookRelevance(sq))
	return s.Find(sq, table)
}
