package rounds

import (
	"fmt"
	"math/big"

	fr377 "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	fr381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fr254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Profile bundles the algebraic parameters a round-number search runs over.
// Immutable once built.
type Profile struct {
	Modulus *big.Int // prime field modulus
	Width   int      // state width t
	Margin  int      // security margin M, in bits
	Alpha   int      // S-box exponent, -1 for the inverse S-box
}

// HashProfile is a Profile enriched with the round numbers a permutation
// builder consumes.
type HashProfile struct {
	Profile
	FullRounds    int
	PartialRounds int
	SecMargin     bool // whether the margin inflation was applied
}

// WithRoundNumbers runs the round search for the profile and returns the
// enriched record. The zero-round sentinel of FindRoundNumbers passes
// through unchanged when no secure profile exists in the search grid;
// Validate rejects it.
func (pr Profile) WithRoundNumbers(secMargin bool) HashProfile {
	r, _ := FindRoundNumbers(pr.Modulus, pr.Width, pr.Margin, pr.Alpha, secMargin)
	return HashProfile{
		Profile:       pr,
		FullRounds:    r.Full,
		PartialRounds: r.Partial,
		SecMargin:     secMargin,
	}
}

// Validate checks basic shape of the enriched profile.
func (hp HashProfile) Validate() error {
	if hp.Alpha <= 0 && hp.Alpha != -1 {
		return fmt.Errorf("rounds: unsupported s-box exponent %d", hp.Alpha)
	}
	if hp.Width < 2 {
		return fmt.Errorf("rounds: state width must be at least 2, got %d", hp.Width)
	}
	if hp.FullRounds%2 != 0 {
		return fmt.Errorf("rounds: full rounds must be even, got %d", hp.FullRounds)
	}
	if hp.FullRounds <= 0 && hp.PartialRounds <= 0 {
		return fmt.Errorf("rounds: empty round profile")
	}
	if !SecureRef(hp.Modulus, hp.Width, hp.Margin, hp.FullRounds, hp.PartialRounds, hp.Alpha) {
		return fmt.Errorf("rounds: profile (%d, %d) fails the security inequalities", hp.FullRounds, hp.PartialRounds)
	}
	return nil
}

// Curve presets for the scalar fields Poseidon is commonly instantiated
// over. Moduli come straight from gnark-crypto; exponents are the smallest
// ones coprime to p-1 for each field (17 on BLS12-377, 5 on BN254 and
// BLS12-381). Margin is fixed at 128 bits.

func BLS12377Profile(width int) Profile {
	return Profile{Modulus: fr377.Modulus(), Width: width, Margin: 128, Alpha: 17}
}

func BN254Profile(width int) Profile {
	return Profile{Modulus: fr254.Modulus(), Width: width, Margin: 128, Alpha: 5}
}

func BLS12381Profile(width int) Profile {
	return Profile{Modulus: fr381.Modulus(), Width: width, Margin: 128, Alpha: 5}
}
