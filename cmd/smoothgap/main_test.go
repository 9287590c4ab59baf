package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SearchPrintsPlateauPoints(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{"8", "2", "32", "2"})
	require.Equal(t, 0, code, "stderr: %s", errOut.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	require.Equal(t, "# k, m(k)", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "1, "), "got %q", lines[1])
}

func TestRun_HelpExitsZeroWithoutSearching(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{"--help"})
	require.Equal(t, 0, code)
	require.Contains(t, out.String(), "Usage: smoothgap")
}

func TestRun_InvalidPositionalArgumentFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{"not-a-number"})
	require.NotEqual(t, 0, code)
	require.Empty(t, out.String())
}

func TestRun_TooManyPositionalArgumentsFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{"1", "2", "3", "4", "5"})
	require.NotEqual(t, 0, code)
}

func TestRun_UnknownLogLevelFails(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(&out, &errOut, []string{"--log-level=verbose", "4"})
	require.NotEqual(t, 0, code)
}

func TestParsePositional_AppliesLeftToRight(t *testing.T) {
	cfg, err := parsePositional([]string{"10", "4"})
	require.NoError(t, err)
	require.Equal(t, uint32(10), cfg.K)
	require.Equal(t, uint32(4), cfg.Threads)
	require.NotZero(t, cfg.TileLen)
	require.NotZero(t, cfg.BatchTiles)
}
