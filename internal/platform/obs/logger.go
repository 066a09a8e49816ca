package obs

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger writing to w at the named level.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
}

// SetupDefault installs a logger built by NewLogger as the package default.
func SetupDefault(w io.Writer, level string) *log.Logger {
	l := NewLogger(w, level)
	log.SetDefault(l)
	return l
}
