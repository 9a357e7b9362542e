package reader

import "github.com/iw2rmb/wisereader/buffer"

// Config configures the reader Model.
type Config struct {
	// Renderer turns document content into styled lines. When nil the
	// content is shown as plain wrapped text.
	Renderer buffer.Renderer

	KeyMap KeyMap
	Style  Style

	// Clipboard receives yanked links. Nil disables yanking.
	Clipboard Clipboard

	// ShowTitle renders the document title above the body.
	ShowTitle bool
	// HideStatus removes the status line below the body.
	HideStatus bool
}
