package entity

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is the paginated envelope returned by every list operation.
// The mock backend echoes Page and Limit but does not slice Items.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NormalizePaging applies the default page and limit.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// NewPage wraps items with their count and the requested paging.
func NewPage[T any](items []T, page, limit int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	page, limit = NormalizePaging(page, limit)
	return &Page[T]{
		Items: items,
		Total: len(items),
		Page:  page,
		Limit: limit,
	}
}
