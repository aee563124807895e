// Package rounds computes secure round-number profiles for Poseidon-style
// sponge permutations. Given a prime modulus, state width, security margin
// and S-box exponent it searches the (full, partial) round grid for the
// cheapest profile that passes the published security inequalities.
//
// This is parameter-generation tooling, run once per hash instantiation; it
// performs no field arithmetic and executes no permutation.
package rounds

import (
	"math"
	"math/big"
)

// Search grid. Full rounds come in half-before/half-after pairs, so only the
// even ladder is scanned.
const (
	minFullRounds    = 4
	maxFullRounds    = 100
	maxPartialRounds = 500
)

// Margin inflation applied when secMargin is set: one extra full-round pair
// and 7.5% more partial rounds.
const partialMarginFactor = 1.075

// Rounds is a round-number profile: Full rounds apply the S-box to every
// state lane, Partial rounds to a single lane.
type Rounds struct {
	Full    int
	Partial int
}

// searchState carries the best candidate seen so far through the grid fold.
type searchState struct {
	best Rounds
	cost int
}

// consider applies the minimum-cost rule with the reference tie-break: a
// strict cost improvement always wins; on a cost tie the candidate wins only
// if its full-round count is below the tracked best, which with the scan
// order of FindRoundNumbers keeps the first-found lowest-Full profile.
func (s searchState) consider(c Rounds, t int) (searchState, bool) {
	cost := SBoxCost(c.Full, c.Partial, t)
	if cost < s.cost || (cost == s.cost && c.Full < s.best.Full) {
		return searchState{best: c, cost: cost}, true
	}
	return s, false
}

// FindRoundNumbers returns the cheapest (by SBoxCost) round profile in
// Partial 1..500, Full {4,6,...,100} that SecureRef accepts for the given
// parameters. If secMargin is set, each secure candidate is inflated by two
// full rounds and 7.5% more partial rounds before costing, and the inflated
// profile is what gets returned.
//
// The second return value reports whether any secure candidate was found.
// When it is false the returned profile is the zero sentinel (0, 0), kept
// for compatibility with the reference search, which yields it silently.
// Callers that cannot rule out off-grid parameters should re-validate the
// result against SecureRef rather than trusting the sentinel.
//
// The search is a pure function of its arguments.
func FindRoundNumbers(p *big.Int, t, m, a int, secMargin bool) (Rounds, bool) {
	state := searchState{cost: math.MaxInt}
	found := false

	for rP := 1; rP <= maxPartialRounds; rP++ {
		for rF := minFullRounds; rF <= maxFullRounds; rF += 2 {
			if !SecureRef(p, t, m, rF, rP, a) {
				continue
			}
			cand := Rounds{Full: rF, Partial: rP}
			if secMargin {
				cand.Full += 2
				cand.Partial = int(math.Ceil(float64(rP) * partialMarginFactor))
			}
			var took bool
			state, took = state.consider(cand, t)
			found = found || took
		}
	}

	if !found {
		return Rounds{}, false
	}
	return state.best, true
}
