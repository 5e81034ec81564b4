package shared

import (
	"net/http"
	"strconv"
)

type Pagination struct {
	Limit int
	Skip  int
}

// ParsePagination reads skip/limit query parameters, falling back to the
// defaults and clamping limit so a single request cannot scan the whole
// table.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) Pagination {
	limit := defaultLimit
	skip := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if raw := r.URL.Query().Get("skip"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			skip = v
		}
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return Pagination{Limit: limit, Skip: skip}
}
