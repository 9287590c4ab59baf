package sieve

import "testing"

func isKSmooth(n uint64, k uint32) bool {
	if n < 2 {
		return true
	}
	x := n
	for p := uint64(2); p <= uint64(k) && p*p <= x; p++ {
		for x%p == 0 {
			x /= p
		}
	}
	if x > 1 && x <= uint64(k) {
		return true
	}
	return x == 1
}

func TestTile_ResidualMatchesBruteForceStripping(t *testing.T) {
	const k = 30
	pr := BuildParams(k, 100)
	off := pr.InitOffsets(1)

	const startCount = 50
	winLen := int(WindowLen(startCount, k))
	residual := make([]uint64, winLen)
	badBits := make([]byte, (winLen+7)/8)

	pr.Tile(0, startCount, off, residual, badBits)

	for j := 0; j < winLen; j++ {
		n := uint64(1 + j)
		want := isKSmooth(n, k)
		got := bitsetGet(badBits, j) == 1
		if got != want {
			t.Fatalf("n=%d: badBit=%v, want k-smooth=%v (residual=%d)", n, got, want, residual[j])
		}
	}
}

func TestTile_OffsetCarryMatchesFreshInit(t *testing.T) {
	const k = 17
	const tileLen = 40
	pr := BuildParams(k, tileLen)

	// Carry across two tiles starting at base_test0=1.
	off := pr.InitOffsets(1)
	r1 := make([]uint64, tileLen+k)
	b1 := make([]byte, (tileLen+k+7)/8)
	pr.Tile(0, tileLen, off, r1, b1)
	// off now advanced by one stride (tileLen here, single worker).

	// Fresh init for the second tile's base_test0 directly.
	wantOff := pr.InitOffsets(uint64(tileLen) + 1)

	for i := range off {
		if off[i] != wantOff[i] {
			p := pr.Primes.Primes()[i]
			t.Fatalf("prime %d: carried off=%d, want %d (fresh init)", p, off[i], wantOff[i])
		}
	}
}

func TestTile_StartCountZeroSievesTailOnly(t *testing.T) {
	const k = 10
	pr := BuildParams(k, 10)
	off := pr.InitOffsets(1)
	residual := make([]uint64, k)
	badBits := make([]byte, (k+7)/8)
	pr.Tile(0, 0, off, residual, badBits)
	// No candidate starts, window is just the k tail positions; should not panic
	// and should still classify those tail positions correctly.
	for j := 0; j < k; j++ {
		n := uint64(1 + j)
		if got, want := bitsetGet(badBits, j) == 1, isKSmooth(n, k); got != want {
			t.Fatalf("tail n=%d: got %v want %v", n, got, want)
		}
	}
}
