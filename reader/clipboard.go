package reader

import "github.com/atotto/clipboard"

// Clipboard receives text copied out of the reader.
//
// Errors must not crash the UI; they are reported on the status line.
type Clipboard interface {
	WriteText(s string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}
