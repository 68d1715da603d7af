package database

import (
	"fmt"

	"gorm.io/gorm"
)

// ListOptions controls ordering, equality filtering and paging for list
// queries. SortField and Filters keys must be members of the repo's column
// whitelist; anything else is rejected before the query runs.
type ListOptions struct {
	SortField  string
	Descending bool
	Filters    map[string]any
	Offset     int
	Limit      int
}

// applyListOptions builds the ordered/filtered/paged query from opts.
// allowed is the column whitelist preventing arbitrary column injection
// from query parameters.
func applyListOptions(db *gorm.DB, opts ListOptions, allowed map[string]bool, defaultSort string) (*gorm.DB, error) {
	query := db

	for column, value := range opts.Filters {
		if !allowed[column] {
			return nil, fmt.Errorf("unknown filter column %q", column)
		}
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}

	sortField := opts.SortField
	if sortField == "" {
		sortField = defaultSort
	}
	if sortField != "" {
		if !allowed[sortField] {
			return nil, fmt.Errorf("unknown sort column %q", sortField)
		}
		direction := "ASC"
		if opts.Descending {
			direction = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", sortField, direction))
	}

	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	return query, nil
}
