package utils

import (
	"io"
	"log/slog"
)

// CloseQuietly closes c and logs any close error at debug level instead of
// returning it. Use it in defer statements where a close failure must not
// override the function's primary error.
func CloseQuietly(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		slog.Debug("close failed", "error", err)
	}
}
