package reader

import "errors"

var errClipboardUnsupported = errors.New("reader: clipboard not supported on this system")
