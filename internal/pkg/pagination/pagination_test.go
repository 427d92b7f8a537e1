package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestFromQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := FromQuery(contextWithQuery(""), 20)
		require.NoError(t, err)
		assert.Equal(t, Page{From: 0, Size: 20}, p)
	})

	t.Run("explicit window", func(t *testing.T) {
		p, err := FromQuery(contextWithQuery("from=5&size=3"), 20)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Limit())
		assert.Equal(t, 5, p.Offset())
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, query := range []string{
			"from=-1",
			"size=0",
			"size=-5",
			"from=abc",
			"size=abc",
		} {
			_, err := FromQuery(contextWithQuery(query), 20)
			assert.ErrorIs(t, err, ErrInvalidPage, query)
		}
	})
}
