// Package scanner slides a length-k window over a freshly sieved tile and
// finds the smallest start offset s such that every position in
// [s, s+k-1] is non-smooth — i.e. the smallest m in this tile for which
// (m+1 .. m+k) contains no k-smooth integer.
package scanner

import "github.com/TomTonic/smoothgap/internal/sieve"

// ScanTile sieves [base+1, base+startCount+k] via params.Tile and then
// slides a window of width k across the first startCount positions,
// maintaining a running count of set (k-smooth) bits. It returns the
// smallest base+s with zero smooth positions in its block, or ok=false if
// no such s exists in this tile. off is advanced by one tile as a side
// effect of the underlying sieve call; with startCount == 0 it returns
// before sieving and off is left unchanged.
func ScanTile(params sieve.Params, base uint64, startCount uint32, off []uint32, residual []uint64, badBits []byte) (m uint64, ok bool) {
	if startCount == 0 {
		return 0, false
	}

	params.Tile(base, startCount, off, residual, badBits)

	k := int(params.K)
	bad := 0
	for j := 0; j < k; j++ {
		bad += bitGet(badBits, j)
	}
	if bad == 0 {
		return base, true
	}

	for s := 1; s < int(startCount); s++ {
		bad -= bitGet(badBits, s-1)
		bad += bitGet(badBits, s+k-1)
		if bad == 0 {
			return base + uint64(s), true
		}
	}
	return 0, false
}

func bitGet(bits []byte, i int) int {
	return int((bits[i>>3] >> (i & 7)) & 1)
}
