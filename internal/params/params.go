package params

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// URL: /v1/feedback?page=2&limit=50
// → ParsePagination() → Pagination{Limit:50, Page:2, Offset:50}
// → store returns the page plus the total row count
// → ComputeMeta(total) fills TotalPages, HasNext, HasPrev
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	Page       int  `json:"page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// New builds a pagination for page/limit, clamping bad values to defaults.
func New(page, limit int) Pagination {
	p := Pagination{Limit: DefaultLimit, Page: 1}

	switch {
	case limit <= 0:
	case limit > MaxLimit:
		p.Limit = MaxLimit
	default:
		p.Limit = limit
	}
	if page > 0 {
		p.Page = page
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ParsePagination parses ?limit=...&page=... safely. Keys are case sensitive.
func ParsePagination(q url.Values) Pagination {
	limit, _ := strconv.Atoi(strings.TrimSpace(q.Get("limit")))
	page, _ := strconv.Atoi(strings.TrimSpace(q.Get("page")))
	return New(page, limit)
}

// ComputeMeta updates pagination after fetching total count.
func (p *Pagination) ComputeMeta(total int) {
	p.Total = total
	if p.Limit > 0 {
		p.TotalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	p.HasPrev = p.Page > 1
	p.HasNext = (p.Page * p.Limit) < total
}
