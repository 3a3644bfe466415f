package entity

// Pagination selects a window of an ordered result set.
type Pagination struct {
	Limit  int
	Offset int
}

// Page is one window of an ordered result set. Total counts every matching
// record before the window is applied.
type Page[T any] struct {
	Items  []*T  `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// NewPage builds a page echoing the requested window. A nil item slice is
// normalised to an empty one so it serialises as [].
func NewPage[T any](items []*T, total int64, p Pagination) *Page[T] {
	if items == nil {
		items = []*T{}
	}

	return &Page[T]{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}
}
