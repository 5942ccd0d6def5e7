package shared

// Pagination bounds. A requested limit above MaxLimit is clamped, and a
// page or limit below 1 falls back to the defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// ListQuery carries the filter and pagination parameters of a list request.
// Status becomes an equality predicate when non-empty; Search expands to a
// case-insensitive substring match over an entity-specific column set.
// Category and Brand apply to product listings only.
type ListQuery struct {
	Page     int
	Limit    int
	Status   string
	Search   string
	Category string
	Brand    string
}

// Normalize returns a copy of the query with page and limit clamped to
// their valid ranges.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset returns the row offset for the normalized query.
func (q ListQuery) Offset() int {
	n := q.Normalize()
	return (n.Page - 1) * n.Limit
}

// Paginated represents one page of results plus the total row count.
type Paginated[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// NewPaginated builds a page result from a normalized query.
func NewPaginated[T any](items []T, total int64, q ListQuery) Paginated[T] {
	n := q.Normalize()
	return Paginated[T]{
		Items: items,
		Total: total,
		Page:  n.Page,
		Limit: n.Limit,
	}
}

// TotalPages returns ceil(total/limit).
func (p Paginated[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	pages := int(p.Total) / p.Limit
	if int(p.Total)%p.Limit > 0 {
		pages++
	}
	return pages
}
