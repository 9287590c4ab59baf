// Package config validates and normalizes the small set of run
// parameters the command line accepts. There is no config file: every
// value here comes from a flag or a positional argument.
package config

import (
	"errors"
	"runtime"
)

var (
	errKTooSmall          = errors.New("config: k must be >= 1")
	errTileLenTooSmall    = errors.New("config: tile-len must be >= 1")
	errBatchTilesTooSmall = errors.New("config: batch-tiles must be >= 1")
)

const (
	// DefaultK is the largest k searched up to when the caller does not
	// override it.
	DefaultK = 200
	// DefaultTileLen is the number of candidate starts each worker
	// advances by per tile when the caller does not override it.
	DefaultTileLen = 1 << 16
	// DefaultBatchTiles is the total number of tiles per batch (split
	// across workers, independent of thread count) when the caller does
	// not override it.
	DefaultBatchTiles = 128
)

// Config is the fully validated, ready-to-run set of search parameters
// for one invocation. Logging level and niceness are handled directly
// as CLI flags rather than through Config, since they are process-wide
// settings rather than search inputs.
type Config struct {
	K          uint32
	Threads    uint32
	TileLen    uint32
	BatchTiles uint64
}

// Defaults returns a Config with every field at its out-of-the-box
// value, so callers only need to override what the command line
// actually supplied.
func Defaults() Config {
	return Config{
		K:          DefaultK,
		Threads:    0, // 0 means "all logical CPUs", resolved by Validate.
		TileLen:    DefaultTileLen,
		BatchTiles: DefaultBatchTiles,
	}
}

// Validate checks cfg for internal consistency and resolves Threads to
// the host's logical CPU count: 0 means "use them all", and a request
// above the host total is silently capped rather than rejected, since
// the effective ceiling is a property of the machine, not user error.
// It returns a new Config; cfg itself is left untouched.
func Validate(cfg Config) (Config, error) {
	out := cfg

	if out.K < 1 {
		return Config{}, errKTooSmall
	}
	if out.TileLen < 1 {
		return Config{}, errTileLenTooSmall
	}
	if out.BatchTiles < 1 {
		return Config{}, errBatchTilesTooSmall
	}

	hostCPUs := uint32(runtime.NumCPU())
	if out.Threads == 0 || out.Threads > hostCPUs {
		out.Threads = hostCPUs
	}

	return out, nil
}
