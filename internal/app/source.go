package app

import (
	"context"
	"time"

	"github.com/iw2rmb/wisereader/buffer"
	"github.com/iw2rmb/wisereader/internal/readwise"
	"github.com/iw2rmb/wisereader/reader"
)

// Source is the remote document inbox. *readwise.Client implements it.
type Source interface {
	List(ctx context.Context, location string) ([]readwise.Document, error)
	Get(ctx context.Context, id string) (readwise.Document, error)
	Move(ctx context.Context, id, location string) error
	Delete(ctx context.Context, id string) error
}

var _ Source = (*readwise.Client)(nil)

// Options configures the shell.
type Options struct {
	// Source is nil until a token is known; the shell then starts at the
	// token prompt.
	Source Source
	// Location is the inbox location listed, "new" by default.
	Location string

	Renderer  buffer.Renderer
	Clipboard reader.Clipboard

	// OpenURL opens a link outside the terminal. Defaults to OpenURL.
	OpenURL func(url string) error
	// Login persists a token entered at the prompt and returns a source
	// that uses it.
	Login func(token string) (Source, error)
	// PromptOnly quits once a token has been saved.
	PromptOnly bool

	// Timeout bounds each request. Zero means no limit.
	Timeout time.Duration
}

func (o Options) context() (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), o.Timeout)
}
