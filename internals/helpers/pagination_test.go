package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("ceil total pages", func(t *testing.T) {
		p := BuildPaginationFromPage(21, 1, 10)
		assert.Equal(t, 3, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("empty result still one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 10)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		p := BuildPaginationFromPage(30, 3, 10)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("invalid input dinormalisasi", func(t *testing.T) {
		p := BuildPaginationFromPage(5, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}
