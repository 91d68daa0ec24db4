package host

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w. Unknown level names fall back to warn.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, e := log.ParseLevel(level)
	if e != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "ngroup",
	})
}
