package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query is the normalized page/limit pair read from the request.
type Query struct {
	Page  int
	Limit int
}

// Parse reads page/limit from the query string, falling back to defaults on
// missing or out-of-range values.
func Parse(c *gin.Context) Query {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{Page: page, Limit: limit}
}

// Offset is the row offset of the query's first item.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ClampToWindow bounds the query to the newest max rows, for listings that
// only ever expose a trailing window. A page past the window comes back with
// limit 0.
func (q Query) ClampToWindow(max int) (offset, limit int) {
	offset = q.Offset()
	if offset >= max {
		return offset, 0
	}
	limit = q.Limit
	if offset+limit > max {
		limit = max - offset
	}
	return offset, limit
}
