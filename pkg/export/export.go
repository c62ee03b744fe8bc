package export

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultFilename is the file written in the working directory when no
// explicit path is configured.
const DefaultFilename = "alias-seeds.txt"

// Write stores the seed list at path as plain UTF-8 text, one seed per line
// with a trailing newline and no header or metadata. The file is created
// with 0600 permissions since exported seeds are meant to stay private.
// Failures are terminal for the caller; there is no retry.
func Write(path string, seeds []string) error {
	if path == "" {
		return ErrEmptyPath
	}

	var b strings.Builder
	for _, s := range seeds {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return errors.Join(ErrWriteFailed, fmt.Errorf("writing %s", path), err)
	}
	return nil
}
