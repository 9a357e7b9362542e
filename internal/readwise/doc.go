// Package readwise is a small client for the Readwise Reader v3 API: list
// documents by location, fetch one with its HTML content, move it between
// locations and delete it.
package readwise
