package host

import (
	"github.com/atotto/clipboard"
)

// Clipboard receives copied text.
type Clipboard interface {
	// Available reports whether WriteAll can succeed on this system.
	Available() bool
	WriteAll(text string) error
}

// SystemClipboard writes to the system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
