// Package reader implements a read-only, vim-style document viewer as a
// Bubble Tea component.
//
// The navigation state lives in Session, a plain value advanced by
// ApplyKey. Model wraps a Session with asynchronous, generation-stamped
// rebuilds: every document or width change renders the document off the
// update loop and results for anything but the latest request are dropped.
package reader
