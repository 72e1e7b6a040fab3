package query

import "moviecatalog/catalog/pkg/model"

// Params defines one query over the catalog.
type Params struct {
	Filter   Filter  `json:"filter"`
	Sort     SortKey `json:"sort,omitempty"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// Result defines one page of a query.
type Result struct {
	Entries    []model.Entry `json:"movies"`
	Total      int           `json:"total"`
	TotalPages int           `json:"totalPages"`
	Page       int           `json:"page"`
}

// Run filters, sorts and paginates entries. The input slice is not modified.
func Run(entries []model.Entry, p Params) Result {
	filtered := p.Filter.Apply(entries)
	sorted := Sort(filtered, p.Sort)
	items, pages, page := Paginate(sorted, p.Page, p.PageSize)
	return Result{
		Entries:    items,
		Total:      len(sorted),
		TotalPages: pages,
		Page:       page,
	}
}
