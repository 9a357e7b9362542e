// Package buffer implements the reader's pure navigation model: the store of
// rendered lines, the cursor position, the pending repeat count and the
// vim-style motions that move the cursor.
//
// Coordinates are 0-based (Line, Col). Col counts grapheme clusters of the
// style-stripped line, so it never points inside an escape sequence.
package buffer
