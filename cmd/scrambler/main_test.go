package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/scrambler/pkg/logger"
	"github.com/dmitrymomot/scrambler/pkg/scrambler"
)

var tableRow = regexp.MustCompile(`^\s+([a-z]+-[a-z]+)\s`)

func testLogger() *slog.Logger {
	return logger.New(logger.WithOutput(&bytes.Buffer{}))
}

// tableSeeds extracts the first column of every seed row in rendered output.
func tableSeeds(out string) []string {
	var seeds []string
	for _, line := range strings.Split(out, "\n") {
		if m := tableRow.FindStringSubmatch(line); m != nil {
			seeds = append(seeds, m[1])
		}
	}
	return seeds
}

func TestRunPrintsRequestedCount(t *testing.T) {
	t.Parallel()

	cfg := appConfig{AliasDomain: "alias.yourdomain.com"}
	var out bytes.Buffer

	require.NoError(t, run(cfg, 10, false, &out, testLogger()))

	seeds := tableSeeds(out.String())
	assert.Len(t, seeds, 10)
	assert.Contains(t, out.String(), "10 seeds generated using OS entropy")
}

func TestRunRejectsInvalidCount(t *testing.T) {
	t.Parallel()

	cfg := appConfig{AliasDomain: "alias.yourdomain.com"}
	var out bytes.Buffer

	err := run(cfg, -1, false, &out, testLogger())
	assert.ErrorIs(t, err, scrambler.ErrNegativeCount)

	err = run(cfg, scrambler.Space()+1, false, &out, testLogger())
	assert.ErrorIs(t, err, scrambler.ErrCountExceedsSpace)
}

func TestRunExportRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := appConfig{
		ExportFile:  filepath.Join(t.TempDir(), "alias-seeds.txt"),
		AliasDomain: "alias.yourdomain.com",
	}
	var out bytes.Buffer

	require.NoError(t, run(cfg, 5, true, &out, testLogger()))

	data, err := os.ReadFile(cfg.ExportFile)
	require.NoError(t, err)

	content := string(data)
	require.True(t, strings.HasSuffix(content, "\n"))

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, 5)

	// The file must contain exactly the seeds shown in the console table.
	printed := tableSeeds(out.String())
	require.Len(t, printed, 5)
	assert.ElementsMatch(t, printed, lines)

	for _, line := range lines {
		assert.Regexp(t, `^[a-z]+-[a-z]+$`, line)
	}
}

func TestRunExportFailureSurfaces(t *testing.T) {
	t.Parallel()

	cfg := appConfig{
		// A directory as the destination makes the write fail.
		ExportFile:  t.TempDir(),
		AliasDomain: "alias.yourdomain.com",
	}
	var out bytes.Buffer

	err := run(cfg, 3, true, &out, testLogger())
	require.Error(t, err)
}

func TestAliasExample(t *testing.T) {
	t.Parallel()

	got := aliasExample("maple-circuit", "alias.yourdomain.com")
	assert.Regexp(t, `^maple-circuit-[0-9a-f]{1,3}@alias\.yourdomain\.com$`, got)

	// Deterministic for the same seed.
	assert.Equal(t, got, aliasExample("maple-circuit", "alias.yourdomain.com"))
}
