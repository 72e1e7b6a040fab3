package model

import (
	"strings"
)

// Namespace partitions entries in the store.
type Namespace string

// Entry namespaces.
const (
	NamespaceMovie   = Namespace("movie")
	NamespaceToWatch = Namespace("towatch")
)

// Entry defines one catalog record: a movie or a show.
type Entry struct {
	// ID is the primary key and doubles as a creation-order proxy.
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Year        Int      `json:"year"`
	Genre       string   `json:"genre"`
	Description string   `json:"description,omitempty"`
	Rating      Float    `json:"rating"`
	ImdbRating  Float    `json:"imdbRating"`
	Runtime     string   `json:"runtime,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Poster      string   `json:"poster,omitempty"`
	Trailer     string   `json:"trailer,omitempty"`
	ImdbID      string   `json:"imdbId,omitempty"`
	Plot        string   `json:"plot,omitempty"`
	Director    string   `json:"director,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	// DateAdded is epoch milliseconds; older entries lack it.
	DateAdded *int64 `json:"dateAdded,omitempty"`

	// Derived on every read, never authoritative.
	CommunityRating *float64 `json:"communityRating,omitempty"`
	RatingCount     int      `json:"ratingCount,omitempty"`
	UserRating      *int     `json:"userRating,omitempty"`
}

// EffectiveRating returns imdbRating when present, otherwise the legacy rating, otherwise 0.
func (e *Entry) EffectiveRating() float64 {
	if e.ImdbRating.Valid {
		return e.ImdbRating.Value
	}
	return e.Rating.Or(0)
}

// Genres returns the comma-separated genre field split and trimmed, without empty tokens.
func (e *Entry) Genres() []string {
	return SplitGenres(e.Genre)
}

// PrimaryGenre returns the first genre token lowercased, or "" when there is none.
func (e *Entry) PrimaryGenre() string {
	g := e.Genres()
	if len(g) == 0 {
		return ""
	}
	return strings.ToLower(g[0])
}

// StripDerived clears the fields recomputed on read so they are never persisted.
func (e *Entry) StripDerived() {
	e.CommunityRating = nil
	e.RatingCount = 0
	e.UserRating = nil
}

// SplitGenres splits a comma-separated genre string.
func SplitGenres(s string) []string {
	var res []string
	for _, g := range strings.Split(s, ",") {
		if g = strings.TrimSpace(g); g != "" {
			res = append(res, g)
		}
	}
	return res
}

// EntryPatch defines a partial update of an entry. Nil fields are left untouched.
type EntryPatch struct {
	Title       *string   `json:"title"`
	Year        *Int      `json:"year"`
	Genre       *string   `json:"genre"`
	Description *string   `json:"description"`
	Rating      *Float    `json:"rating"`
	ImdbRating  *Float    `json:"imdbRating"`
	Runtime     *string   `json:"runtime"`
	Tags        *[]string `json:"tags"`
	Poster      *string   `json:"poster"`
	Trailer     *string   `json:"trailer"`
	ImdbID      *string   `json:"imdbId"`
	Plot        *string   `json:"plot"`
	Director    *string   `json:"director"`
	Cast        *[]string `json:"cast"`
	DateAdded   *int64    `json:"dateAdded"`
}

// Apply merges the patch into e.
func (p *EntryPatch) Apply(e *Entry) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.Genre != nil {
		e.Genre = *p.Genre
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Rating != nil {
		e.Rating = *p.Rating
	}
	if p.ImdbRating != nil {
		e.ImdbRating = *p.ImdbRating
	}
	if p.Runtime != nil {
		e.Runtime = *p.Runtime
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Poster != nil {
		e.Poster = *p.Poster
	}
	if p.Trailer != nil {
		e.Trailer = *p.Trailer
	}
	if p.ImdbID != nil {
		e.ImdbID = *p.ImdbID
	}
	if p.Plot != nil {
		e.Plot = *p.Plot
	}
	if p.Director != nil {
		e.Director = *p.Director
	}
	if p.Cast != nil {
		e.Cast = *p.Cast
	}
	if p.DateAdded != nil {
		e.DateAdded = p.DateAdded
	}
}
