package rounds

import (
	"math"
	"math/big"
)

// The three predicates below decide whether a round profile (rF, rP) resists
// the statistical, interpolation and Gröbner-basis attacks for a Poseidon
// instance over a prime field of modulus p, state width t, security margin M
// bits and S-box exponent a (a = -1 marks the inverse S-box x -> 1/x).
//
// Each is a literal transcription of a distinct published formulation and
// they intentionally disagree on corner cases. Do not unify them and do not
// reconcile their constants: SecureCompat in particular replicates a
// deployed calculator's hard-coded field size, bugs included, so that search
// results can be cross-checked against that tool.
//
// Preconditions (unchecked): p >= 2, t >= 1, and a >= 2 whenever a > 0.
// Valid Poseidon parameters always satisfy these; other inputs hit log
// domain errors.

// SecurePaper reports whether (rF, rP) satisfies the security inequalities
// as printed in the Poseidon paper.
func SecurePaper(p *big.Int, t, m, rF, rP, a int) bool {
	if a <= 0 && a != -1 {
		return false
	}
	log2p := log2Big(p)
	n := math.Ceil(log2p)
	tF, mF, rPF := float64(t), float64(m), float64(rP)

	if a == -1 {
		rFStat := 6
		if mF > math.Floor(log2p-2)*(tF+1) {
			rFStat = 10
		}
		drop := math.Floor(float64(rF) * math.Log2(tF))
		rPInterp := math.Ceil(0.5*minFloat(mF, n)) + math.Ceil(math.Log2(tF)) - drop
		return rF >= rFStat && rP >= ceilPos(rPInterp)
	}

	aF := float64(a)
	la := logBase(aF, 2)

	rFStat := 6
	if mF > math.Floor(log2p-math.Log2(aF-1))*(tF+1) {
		rFStat = 10
	}
	rFInterp := math.Ceil(la*minFloat(mF, n)) + math.Ceil(logBase(aF, tF)) - rPF
	rFGroebner1 := la*minFloat(mF/3, n/2) - rPF
	rFGroebner2 := tF - 1 + la*minFloat(mF/(tF+1), n/2) - rPF

	return rF >= maxInt(rFStat, ceilPos(rFInterp), ceilPos(rFGroebner1), ceilPos(rFGroebner2))
}

// SecureRef reports whether (rF, rP) satisfies the inequalities exactly as
// evaluated by the authors' reference script. This is the variant the round
// search filters on. It differs from SecurePaper in the +1 correction terms
// on the interpolation and Gröbner bounds and in the statistical offset
// (a-1)/2 instead of log2(a-1).
func SecureRef(p *big.Int, t, m, rF, rP, a int) bool {
	if a <= 0 && a != -1 {
		return false
	}
	log2p := log2Big(p)
	n := math.Ceil(log2p)
	tF, mF, rPF := float64(t), float64(m), float64(rP)

	if a == -1 {
		rFStat := 6
		if mF > math.Floor(log2p-2)*(tF+1) {
			rFStat = 10
		}
		drop := math.Floor(float64(rF) * math.Log2(tF))
		rPInterp := 1 + math.Ceil(0.5*minFloat(mF, n)) + math.Ceil(math.Log2(tF)) - drop
		rPGroebner := tF - 1 + math.Ceil(0.5*minFloat(mF, n)) - drop
		return rF >= rFStat && rP >= maxInt(ceilPos(rPInterp), ceilPos(rPGroebner))
	}

	aF := float64(a)
	la := logBase(aF, 2)

	rFStat := 6
	if mF > math.Floor(log2p-(aF-1)/2)*(tF+1) {
		rFStat = 10
	}
	rFInterp := 1 + math.Ceil(la*minFloat(mF, n)) + math.Ceil(logBase(aF, tF)) - rPF
	rFGroebner1 := 1 + la*minFloat(mF/3, n/2) - rPF
	rFGroebner2 := tF - 1 + la*minFloat(mF/(tF+1), n/2) - rPF

	return rF >= maxInt(rFStat, ceilPos(rFInterp), ceilPos(rFGroebner1), ceilPos(rFGroebner2))
}

// Hard-coded constants of the external calculator SecureCompat replicates.
// That tool assumes a 256-bit field and a 128-bit margin no matter what it
// is asked about.
const (
	compatBits   = 256.0
	compatMargin = 128.0
)

// SecureCompat replicates, bug for bug, an externally deployed round-number
// calculator. It ignores the supplied modulus bit length and margin in favor
// of compatBits/compatMargin, so it diverges from SecureRef whenever the
// caller's field is not ~256 bits or M != 128. It exists as a compatibility
// oracle for that tool's output and must not be aligned with the other two.
func SecureCompat(p *big.Int, t, m, rF, rP, a int) bool {
	if a <= 0 && a != -1 {
		return false
	}
	tF, rPF := float64(t), float64(rP)

	if a == -1 {
		rFStat := 6
		if compatMargin > math.Floor(compatBits-2)*(tF+1) {
			rFStat = 10
		}
		drop := math.Floor(float64(rF) * math.Log2(tF))
		rPInterp := 1 + math.Ceil(0.5*minFloat(compatMargin, compatBits)) + math.Ceil(math.Log2(tF)) - drop
		rPGroebner := tF - 1 + math.Ceil(0.5*minFloat(compatMargin, compatBits)) - drop
		return rF >= rFStat && rP >= maxInt(ceilPos(rPInterp), ceilPos(rPGroebner))
	}

	aF := float64(a)
	la := logBase(aF, 2)

	rFStat := 6
	if compatMargin > math.Floor(compatBits-(aF-1)/2)*(tF+1) {
		rFStat = 10
	}
	rFInterp := 1 + math.Ceil(la*minFloat(compatMargin, compatBits)) + math.Ceil(logBase(aF, tF)) - rPF
	rFGroebner1 := 1 + la*minFloat(compatMargin/3, compatBits/2) - rPF
	rFGroebner2 := tF - 1 + la*minFloat(compatMargin/(tF+1), compatBits/2) - rPF

	return rF >= maxInt(rFStat, ceilPos(rFInterp), ceilPos(rFGroebner1), ceilPos(rFGroebner2))
}
