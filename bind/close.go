package bind

import (
	"io"

	"github.com/corvid-labs/sqlbind/internal/debug"
)

// CloseQuietly closes c, logging and swallowing any failure. Use it when
// releasing cursors and statements on paths that already carry an error.
// A nil closer is a no-op.
func CloseQuietly(c io.Closer, what string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		debug.Warn("close failed", "what", what, "error", err)
	}
}
