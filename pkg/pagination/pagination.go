package pagination

// Meta holds pagination metadata for a page of results.
type Meta struct {
	TotalItems   int `json:"totalItems"`
	ItemCount    int `json:"itemCount"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

// Page is a single page of results with pagination metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// NewPage creates a page from the items of the current page, the total number
// of matching items and the requested page/limit.
func NewPage[T any](items []T, totalItems, page, limit int) *Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	return &Page[T]{
		Items: items,
		Meta: Meta{
			TotalItems:   totalItems,
			ItemCount:    len(items),
			ItemsPerPage: limit,
			TotalPages:   totalPages,
			CurrentPage:  page,
		},
	}
}

// Offset converts a 1-based page number and limit into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * limit
}
