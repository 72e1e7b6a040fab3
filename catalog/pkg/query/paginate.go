package query

import "moviecatalog/catalog/pkg/model"

// Paginate returns page (1-based) of entries along with the total page count.
// A page below 1 is treated as 1 and a page past the end is empty.
// A non-positive size puts everything on one page. An empty input has no pages.
func Paginate(entries []model.Entry, page, size int) (items []model.Entry, totalPages, actualPage int) {
	if page < 1 {
		page = 1
	}
	total := len(entries)
	if total == 0 {
		return []model.Entry{}, 0, page
	}
	if size <= 0 {
		if page > 1 {
			return []model.Entry{}, 1, page
		}
		return entries, 1, page
	}
	totalPages = (total + size - 1) / size
	start := (page - 1) * size
	if start >= total {
		return []model.Entry{}, totalPages, page
	}
	end := min(start+size, total)
	return entries[start:end], totalPages, page
}
