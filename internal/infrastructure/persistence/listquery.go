package persistence

import (
	"strings"

	"github.com/aigym/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyListFilters adds the equality and search predicates of a list query.
// Search expands to an OR of case-insensitive substring matches over the
// given column set; an empty search adds no predicate. Category and brand
// are not applied here because only the products table carries those
// columns; the product repository adds them itself.
func applyListFilters(query *gorm.DB, q shared.ListQuery, searchColumns []string) *gorm.DB {
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" && len(searchColumns) > 0 {
		query = searchPredicate(query, q.Search, searchColumns)
	}
	return query
}

// searchPredicate adds an OR of ILIKE matches over the given columns
func searchPredicate(query *gorm.DB, search string, columns []string) *gorm.DB {
	pattern := "%" + search + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}

// applyListQuery adds filters, newest-first ordering and pagination.
// The query must already be normalized.
func applyListQuery(query *gorm.DB, q shared.ListQuery, searchColumns []string) *gorm.DB {
	query = applyListFilters(query, q, searchColumns)
	return query.
		Order("created_at DESC").
		Offset(q.Offset()).
		Limit(q.Limit)
}
