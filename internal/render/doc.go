// Package render turns document content into styled terminal lines.
//
// HTML is the format documents arrive in from the API; Markdown covers
// local files. Both wrap to the requested width and return lines whose
// styles do not leak from one line into the next.
package render
