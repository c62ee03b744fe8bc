package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/scrambler/pkg/export"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	seeds := []string{"maple-circuit", "cobalt-anvil", "dusk-relay", "fern-latch", "storm-pier"}
	path := filepath.Join(t.TempDir(), export.DefaultFilename)

	require.NoError(t, export.Write(path, seeds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasSuffix(content, "\n"), "file must end with a newline")

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, len(seeds))

	written := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		assert.NotEmpty(t, line)
		assert.Regexp(t, `^[a-z]+-[a-z]+$`, line)
		written[line] = struct{}{}
	}
	for _, s := range seeds {
		assert.Contains(t, written, s)
	}
}

func TestWriteEmptyBatch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), export.DefaultFilename)
	require.NoError(t, export.Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteEmptyPath(t *testing.T) {
	t.Parallel()

	err := export.Write("", []string{"maple-circuit"})
	assert.ErrorIs(t, err, export.ErrEmptyPath)
}

func TestWriteFailure(t *testing.T) {
	t.Parallel()

	// Writing to a path that is a directory must surface the failure.
	err := export.Write(t.TempDir(), []string{"maple-circuit"})
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrWriteFailed)
}
