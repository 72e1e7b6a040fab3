package query

// State tracks a browsing session over the catalog. Any filter change sends the
// view back to the first page; a sort change keeps the current page.
type State struct {
	params Params
}

// NewState creates a view on page 1 with the given page size.
func NewState(pageSize int) *State {
	return &State{params: Params{Page: 1, PageSize: pageSize}}
}

// Params returns the current query parameters.
func (s *State) Params() Params {
	return s.params
}

// SetGenres selects genres.
func (s *State) SetGenres(genres ...string) { s.updateFilter(func(f *Filter) { f.Genres = genres }) }

// SetYears selects years.
func (s *State) SetYears(years ...int) { s.updateFilter(func(f *Filter) { f.Years = years }) }

// SetSearch sets the title/description search text.
func (s *State) SetSearch(q string) { s.updateFilter(func(f *Filter) { f.Search = q }) }

// SetRatingRange bounds the effective rating. A nil range clears it.
func (s *State) SetRatingRange(r *RatingRange) { s.updateFilter(func(f *Filter) { f.Rating = r }) }

// SetRuntime selects a runtime bucket.
func (s *State) SetRuntime(b RuntimeBucket) { s.updateFilter(func(f *Filter) { f.Runtime = b }) }

// SetTags selects tags.
func (s *State) SetTags(tags ...string) { s.updateFilter(func(f *Filter) { f.Tags = tags }) }

// SetFilter replaces the whole filter.
func (s *State) SetFilter(f Filter) { s.updateFilter(func(cur *Filter) { *cur = f }) }

// SetSort changes the ordering without leaving the current page.
func (s *State) SetSort(k SortKey) {
	s.params.Sort = k
}

// SetPage moves to page p.
func (s *State) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	s.params.Page = p
}

func (s *State) updateFilter(fn func(*Filter)) {
	fn(&s.params.Filter)
	s.params.Page = 1
}
