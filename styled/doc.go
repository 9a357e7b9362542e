// Package styled holds rendered terminal lines and the operations that cut
// and decorate them without breaking embedded escape sequences.
//
// Columns are visual: grapheme clusters of the line after escape sequences
// are stripped. Slicing re-applies the SGR state (and any open OSC 8
// hyperlink) that was active at the cut so a fragment renders the same as it
// does in place.
package styled
