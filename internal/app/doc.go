// Package app is the terminal UI shell: the inbox list, the reader view,
// the action and open-link menus and the token prompt.
package app
