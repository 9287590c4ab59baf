package search

// PlateauPoint is a (k, m) pair at which m(k) strictly increased from
// m(k-1). It is the unit both the producer sweep and the verify
// subcommand operate on.
type PlateauPoint struct {
	K uint32
	M uint64
}

// Sweep drives the outer loop: for k = 1..K, call the coordinator
// starting from the previous m, and invoke emit whenever m strictly
// increases. Sweep performs no I/O itself, which keeps it independently
// testable against the idempotence and monotonicity properties without
// needing to capture stdout.
func Sweep(pool *Pool, K uint32, tileLen uint32, batchTiles uint64, emit func(PlateauPoint)) error {
	var lastM uint64
	var lastEmitted uint64 = maxU64

	for k := uint32(1); k <= K; k++ {
		m, err := FindM(pool, k, lastM, tileLen, batchTiles)
		if err != nil {
			return err
		}
		lastM = m

		if m != lastEmitted {
			emit(PlateauPoint{K: k, M: m})
			lastEmitted = m
		}
	}
	return nil
}
