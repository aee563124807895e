package rounds

// SBoxCost is the total number of S-box evaluations per permutation call:
// full rounds touch all t lanes, partial rounds touch one. This is the
// metric FindRoundNumbers minimizes.
func SBoxCost(rF, rP, t int) int {
	return t*rF + rP
}

// SizeCost is the cost in state bits, for a total state of n bits across t
// lanes: n per full round, ceil(n/t) per partial round.
func SizeCost(rF, rP, n, t int) int {
	return n*rF + ((n+t-1)/t)*rP
}

// DepthCost is the total round count, a latency proxy that ignores width.
func DepthCost(rF, rP int) int {
	return rF + rP
}
