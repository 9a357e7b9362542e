package readwise

import "time"

// Document is one Reader document as returned by the list endpoint.
type Document struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	SourceURL   string `json:"source_url"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	SiteName    string `json:"site_name"`
	WordCount   int    `json:"word_count"`
	HTMLContent string `json:"html_content"`
	Summary     string `json:"summary"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Updated parses UpdatedAt. ok is false when it is missing or malformed.
func (d Document) Updated() (t time.Time, ok bool) {
	t, err := time.Parse(time.RFC3339, d.UpdatedAt)
	return t, err == nil
}

// Document locations understood by the API.
const (
	LocationNew     = "new"
	LocationLater   = "later"
	LocationArchive = "archive"
	LocationFeed    = "feed"
)

// ValidLocation reports whether loc is a location documents can be listed
// in or moved to.
func ValidLocation(loc string) bool {
	switch loc {
	case LocationNew, LocationLater, LocationArchive, LocationFeed:
		return true
	}
	return false
}
