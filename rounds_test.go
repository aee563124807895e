package rounds

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindRoundNumbersBLS381Width3(t *testing.T) {
	p := bls381Modulus()

	r, found := FindRoundNumbers(p, 3, 128, 5, false)
	if !found {
		t.Fatal("no secure profile found")
	}
	if r.Full != 6 || r.Partial != 52 {
		t.Fatalf("unexpected profile without margin: got (%d, %d), want (6, 52)", r.Full, r.Partial)
	}

	r, found = FindRoundNumbers(p, 3, 128, 5, true)
	if !found {
		t.Fatal("no secure profile found with margin")
	}
	if r.Full != 8 || r.Partial != 56 {
		t.Fatalf("unexpected profile with margin: got (%d, %d), want (8, 56)", r.Full, r.Partial)
	}
}

// The width-2 alpha=17 instance over BLS12-377 is deployed in production;
// the margined search must land on its 8 full / 31 partial rounds.
func TestFindRoundNumbersBLS377Width2(t *testing.T) {
	prof := BLS12377Profile(2)
	r, found := FindRoundNumbers(prof.Modulus, prof.Width, prof.Margin, prof.Alpha, true)
	if !found {
		t.Fatal("no secure profile found")
	}
	if r.Full != 8 || r.Partial != 31 {
		t.Fatalf("got (%d, %d), want the deployed (8, 31)", r.Full, r.Partial)
	}
}

func TestFindRoundNumbersIdempotent(t *testing.T) {
	prof := BN254Profile(3)
	first, fFound := FindRoundNumbers(prof.Modulus, prof.Width, prof.Margin, prof.Alpha, true)
	second, sFound := FindRoundNumbers(prof.Modulus, prof.Width, prof.Margin, prof.Alpha, true)
	require.Equal(t, fFound, sFound)
	require.Equal(t, first, second)
}

// No pair in the scanned grid that SecureRef accepts may be cheaper than
// the search result.
func TestFindRoundNumbersIsGridMinimum(t *testing.T) {
	p := bls381Modulus()
	r, found := FindRoundNumbers(p, 3, 128, 5, false)
	require.True(t, found)
	best := SBoxCost(r.Full, r.Partial, 3)

	for rP := 1; rP <= 500; rP++ {
		for rF := 4; rF <= 100; rF += 2 {
			if !SecureRef(p, 3, 128, rF, rP, 5) {
				continue
			}
			if cost := SBoxCost(rF, rP, 3); cost < best {
				t.Fatalf("grid pair (%d, %d) costs %d, below the returned %d", rF, rP, cost, best)
			}
		}
	}
}

// Stripping the margin back off the margined result must leave a profile
// the reference predicate still accepts.
func TestMarginReversalStillSecure(t *testing.T) {
	p := bls381Modulus()
	r, found := FindRoundNumbers(p, 3, 128, 5, true)
	require.True(t, found)

	rawFull := r.Full - 2
	rawPartial := int(math.Floor(float64(r.Partial) / partialMarginFactor))
	require.True(t, SecureRef(p, 3, 128, rawFull, rawPartial, 5),
		"reversed profile (%d, %d) is insecure", rawFull, rawPartial)
}

func TestSearchNeverPicksZeroPartialRounds(t *testing.T) {
	for _, prof := range []Profile{BLS12377Profile(2), BN254Profile(3), BLS12381Profile(3)} {
		for _, margin := range []bool{false, true} {
			r, found := FindRoundNumbers(prof.Modulus, prof.Width, prof.Margin, prof.Alpha, margin)
			require.True(t, found)
			require.GreaterOrEqual(t, r.Partial, 1)
			require.Zero(t, r.Full%2)
		}
	}
}

// When nothing in the grid is secure the search keeps the reference
// behavior: the zero sentinel comes back, flagged by found=false.
func TestSearchSentinelWhenGridExhausted(t *testing.T) {
	p := bls381Modulus()

	// alpha=0 is outside the supported s-box families, so every candidate
	// is rejected.
	r, found := FindRoundNumbers(p, 3, 128, 0, false)
	require.False(t, found)
	require.Equal(t, Rounds{}, r)

	// A ~1100-bit modulus with a matching margin pushes the inverse-s-box
	// partial bound past the scanned range.
	huge := new(big.Int).Lsh(big.NewInt(1), 1100)
	r, found = FindRoundNumbers(huge, 1, 1100, -1, false)
	require.False(t, found)
	require.Equal(t, Rounds{}, r)
}
