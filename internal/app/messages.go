package app

import "github.com/iw2rmb/wisereader/internal/readwise"

type docsLoadedMsg struct {
	docs []readwise.Document
	err  error
}

type docFetchedMsg struct {
	doc readwise.Document
	err error
}

type actionDoneMsg struct {
	action string
	id     string
	err    error
}

type markedSeenMsg struct {
	id  string
	err error
}

type openedMsg struct {
	url string
	err error
}

type loggedInMsg struct {
	src Source
	err error
}
