// Package query implements the catalog query pipeline: filter, sort, paginate
// and same-genre recommendations over an in-memory entry list.
package query

import (
	"moviecatalog/catalog/pkg/model"
	"slices"
	"strings"
)

// RatingRange is an inclusive bound on the effective rating.
type RatingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filter holds the active predicates. The zero value matches every entry.
type Filter struct {
	Genres  []string      `json:"genres,omitempty"`
	Years   []int         `json:"years,omitempty"`
	Search  string        `json:"search,omitempty"`
	Rating  *RatingRange  `json:"rating,omitempty"`
	Runtime RuntimeBucket `json:"runtime,omitempty"`
	Tags    []string      `json:"tags,omitempty"`
}

// Match reports whether e passes every active predicate.
func (f *Filter) Match(e *model.Entry) bool {
	if len(f.Genres) > 0 && !intersectFold(f.Genres, e.Genres()) {
		return false
	}
	if len(f.Years) > 0 && !slices.Contains(f.Years, int(e.Year)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Title), q) && !strings.Contains(strings.ToLower(e.Description), q) {
			return false
		}
	}
	if f.Rating != nil {
		r := e.EffectiveRating()
		if r < f.Rating.Min || r > f.Rating.Max {
			return false
		}
	}
	if !f.Runtime.Match(e.Runtime) {
		return false
	}
	if len(f.Tags) > 0 && !intersectFold(f.Tags, e.Tags) {
		return false
	}
	return true
}

// Apply returns the entries that pass the filter, preserving order.
func (f *Filter) Apply(entries []model.Entry) []model.Entry {
	res := make([]model.Entry, 0, len(entries))
	for i := range entries {
		if f.Match(&entries[i]) {
			res = append(res, entries[i])
		}
	}
	return res
}

func intersectFold(selected, values []string) bool {
	for _, s := range selected {
		s = strings.TrimSpace(s)
		for _, v := range values {
			if strings.EqualFold(s, strings.TrimSpace(v)) {
				return true
			}
		}
	}
	return false
}
