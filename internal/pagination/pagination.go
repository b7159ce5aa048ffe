package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps (MaxPage-1)*MaxPageSize+MaxPageSize within an int.
	MaxPage = math.MaxInt / MaxPageSize
)

type Params struct {
	Page     int
	PageSize int
}

// Offset is the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Normalize clamps page to [1, MaxPage] and pageSize to [1, MaxPageSize].
// A zero pageSize means "not given" and picks the default.
func Normalize(page, pageSize int) Params {
	switch {
	case page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	switch {
	case pageSize == 0:
		pageSize = DefaultPageSize
	case pageSize < 1:
		pageSize = 1
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Parse reads raw query values; unparsable values count as absent and
// out-of-range integers saturate before clamping.
func Parse(page, pageSize string) Params {
	p, _ := strconv.Atoi(page)
	s, _ := strconv.Atoi(pageSize)
	return Normalize(p, s)
}

type Result[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewResult[T any](items []T, p Params, total int64) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Data:       items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: TotalPages(total, p.PageSize),
	}
}

func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
