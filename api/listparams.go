package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
)

// parseListOptions translates the shared list query parameters
// (?sort= &order= &offset= &limit= plus per-entity equality filters) into
// repo ListOptions. Unknown columns are rejected later by the repo's
// whitelist, never interpolated.
func parseListOptions(r *http.Request, stringFilters, boolFilters []string) database.ListOptions {
	q := r.URL.Query()

	opts := database.ListOptions{
		SortField:  q.Get("sort"),
		Descending: strings.EqualFold(q.Get("order"), "desc"),
	}

	filters := make(map[string]any)
	for _, name := range stringFilters {
		if v := q.Get(name); v != "" {
			filters[name] = v
		}
	}
	for _, name := range boolFilters {
		if v := q.Get(name); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				filters[name] = b
			}
		}
	}
	if len(filters) > 0 {
		opts.Filters = filters
	}

	if off, err := strconv.Atoi(q.Get("offset")); err == nil && off > 0 {
		opts.Offset = off
	}
	if lim, err := strconv.Atoi(q.Get("limit")); err == nil && lim > 0 {
		opts.Limit = lim
	}

	return opts
}
