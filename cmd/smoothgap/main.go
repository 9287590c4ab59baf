// Command smoothgap searches for m(k), the least m such that every
// integer in (m, m+k] has a prime factor strictly greater than k, and
// streams the plateau points where m(k) increases to stdout. All
// diagnostics go to stderr so a consumer can pipe stdout straight into a
// file or another tool without filtering.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/TomTonic/smoothgap/internal/config"
	"github.com/TomTonic/smoothgap/internal/logx"
	"github.com/TomTonic/smoothgap/internal/search"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func run(out, errOut io.Writer, args []string) int {
	if len(args) > 0 && args[0] == "verify" {
		return runVerify(out, errOut, args[1:])
	}
	return runSearch(out, errOut, args)
}

const searchHelp = `Usage: smoothgap [K] [threads] [tile_len] [batch_tiles]

Stream plateau points (k, m(k)) for k = 1..K to stdout.

Positional arguments (all optional, applied left to right):
  K            largest k to search up to [default 200]
  threads      worker count, 0 = all logical CPUs [default 0]
  tile_len     candidate starts scanned per tile [default 65536]
  batch_tiles  total tiles per batch, split across workers [default 128]

Options:
  --log-level string   debug|info|warn|error [default "info"]
  --nice                lower this process's scheduling priority [default true]
  -h, --help            show this help and exit

Subcommand:
  smoothgap verify <file>   re-check a file of (k, m) rows`

func runSearch(out, errOut io.Writer, args []string) int {
	flagSet := flag.NewFlagSet("smoothgap", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	logLevel := flagSet.String("log-level", "info", "debug|info|warn|error")
	nice := flagSet.Bool("nice", true, "lower this process's scheduling priority (--nice=false opts out)")
	help := flagSet.BoolP("help", "h", false, "show this help and exit")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}
	if *help {
		fmt.Fprintln(out, searchHelp)
		return 0
	}

	level, err := logx.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 2
	}
	log := logx.New(errOut, level)

	cfg, err := parsePositional(flagSet.Args())
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	cfg, err = config.Validate(cfg)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	if *nice {
		if err := search.LowerProcessPriority(); err != nil {
			log.Warnf("could not lower process priority: %v", err)
		}
	}

	log.Infof("searching k=1..%d with %d threads, tile_len=%d, batch_tiles=%d", cfg.K, cfg.Threads, cfg.TileLen, cfg.BatchTiles)

	pool := search.NewPool(cfg.Threads)
	defer pool.Stop()

	fmt.Fprintln(out, "# k, m(k)")
	emitErr := search.Sweep(pool, cfg.K, cfg.TileLen, cfg.BatchTiles, func(p search.PlateauPoint) {
		fmt.Fprintf(out, "%d, %d\n", p.K, p.M)
	})
	if emitErr != nil {
		log.Errorf("search failed: %v", emitErr)
		return 1
	}
	return 0
}

// parsePositional applies K, threads, tile_len, batch_tiles left to
// right over config.Defaults(), leaving anything not supplied at its
// default.
func parsePositional(args []string) (config.Config, error) {
	cfg := config.Defaults()

	setters := []func(uint64) error{
		func(v uint64) error { cfg.K = uint32(v); return nil },
		func(v uint64) error { cfg.Threads = uint32(v); return nil },
		func(v uint64) error { cfg.TileLen = uint32(v); return nil },
		func(v uint64) error { cfg.BatchTiles = v; return nil },
	}

	if len(args) > len(setters) {
		return config.Config{}, fmt.Errorf("too many positional arguments: got %d, want at most %d", len(args), len(setters))
	}

	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return config.Config{}, fmt.Errorf("argument %d (%q) is not a non-negative integer", i+1, a)
		}
		if err := setters[i](v); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
