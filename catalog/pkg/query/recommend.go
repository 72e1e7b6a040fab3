package query

import (
	"moviecatalog/catalog/pkg/model"
	"strings"
)

// RecommendationLimit is the default number of recommendations.
const RecommendationLimit = 5

// Shuffler randomizes candidate order. *rand.Rand implements it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Recommend returns up to n entries other than ref that share its primary genre,
// in shuffled order. It returns nil when ref has no genre.
func Recommend(ref model.Entry, all []model.Entry, shuffler Shuffler, n int) []model.Entry {
	primary := ref.PrimaryGenre()
	if primary == "" || n <= 0 {
		return nil
	}
	var candidates []model.Entry
	for i := range all {
		if all[i].ID == ref.ID {
			continue
		}
		for _, g := range all[i].Genres() {
			if strings.ToLower(g) == primary {
				candidates = append(candidates, all[i])
				break
			}
		}
	}
	if shuffler != nil {
		shuffler.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
