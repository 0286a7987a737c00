package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(rawQuery string) Query {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name     string
		rawQuery string
		want     Query
	}{
		{"defaults", "", Query{Page: 1, Limit: 20}},
		{"explicit", "page=3&limit=50", Query{Page: 3, Limit: 50}},
		{"zero page", "page=0", Query{Page: 1, Limit: 20}},
		{"negative limit", "limit=-5", Query{Page: 1, Limit: 20}},
		{"limit capped", "limit=500", Query{Page: 1, Limit: 100}},
		{"garbage", "page=abc&limit=xyz", Query{Page: 1, Limit: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseQuery(tc.rawQuery))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Query{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Query{Page: 3, Limit: 20}.Offset())
}

func TestClampToWindow(t *testing.T) {
	// First page fits entirely inside the window.
	offset, limit := Query{Page: 1, Limit: 20}.ClampToWindow(200)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)

	// Last partial page is trimmed to the window edge.
	offset, limit = Query{Page: 3, Limit: 90}.ClampToWindow(200)
	assert.Equal(t, 180, offset)
	assert.Equal(t, 20, limit)

	// Pages past the window come back empty.
	_, limit = Query{Page: 5, Limit: 100}.ClampToWindow(200)
	assert.Equal(t, 0, limit)
}
