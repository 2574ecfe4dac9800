package dimsync

import (
	"os"
	"testing"

	"github.com/grindlemire/go-dimsync/internal/debug"
)

// TestMain flushes the debug log, which tests enable by setting
// DIMSYNC_DEBUG to a file path.
func TestMain(m *testing.M) {
	code := m.Run()
	if err := debug.Close(); err != nil {
		os.Stderr.WriteString("closing debug log: " + err.Error() + "\n")
	}
	os.Exit(code)
}
