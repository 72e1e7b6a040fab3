package query

import (
	"cmp"
	"moviecatalog/catalog/pkg/model"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names an ordering. Unknown keys leave the input order unchanged.
type SortKey string

// Sort keys.
const (
	SortDateAdded       = SortKey("dateAdded")
	SortDateAddedLatest = SortKey("dateAddedLatest")
	SortTitle           = SortKey("title")
	SortYear            = SortKey("year")
	SortImdbRating      = SortKey("imdbRating")
	SortUserRating      = SortKey("userRating")
	SortCommunityRating = SortKey("communityRating")
)

// Sort returns a stably sorted copy of entries.
func Sort(entries []model.Entry, key SortKey) []model.Entry {
	res := slices.Clone(entries)
	switch key {
	case SortDateAdded:
		slices.SortStableFunc(res, func(a, b model.Entry) int { return cmp.Compare(b.ID, a.ID) })
	case SortDateAddedLatest:
		slices.SortStableFunc(res, func(a, b model.Entry) int { return cmp.Compare(a.ID, b.ID) })
	case SortTitle:
		c := collate.New(language.English)
		slices.SortStableFunc(res, func(a, b model.Entry) int { return c.CompareString(a.Title, b.Title) })
	case SortYear:
		slices.SortStableFunc(res, func(a, b model.Entry) int { return cmp.Compare(b.Year, a.Year) })
	case SortImdbRating:
		slices.SortStableFunc(res, func(a, b model.Entry) int {
			return cmp.Compare(b.EffectiveRating(), a.EffectiveRating())
		})
	case SortUserRating:
		slices.SortStableFunc(res, func(a, b model.Entry) int {
			return cmp.Compare(userRating(&b), userRating(&a))
		})
	case SortCommunityRating:
		slices.SortStableFunc(res, func(a, b model.Entry) int {
			return cmp.Compare(communityRating(&b), communityRating(&a))
		})
	}
	return res
}

func userRating(e *model.Entry) int {
	if e.UserRating == nil {
		return 0
	}
	return *e.UserRating
}

func communityRating(e *model.Entry) float64 {
	if e.CommunityRating == nil {
		return 0
	}
	return *e.CommunityRating
}
