package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClampsNegativeSkip(t *testing.T) {
	page := Page{Skip: -1, Limit: 5}.Normalize()
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, 5, page.Limit)
}

func TestNormalizeClampsNegativeLimitToZero(t *testing.T) {
	page := Page{Skip: 3, Limit: -1}.Normalize()
	assert.Equal(t, 3, page.Skip)
	assert.Equal(t, 0, page.Limit)
}

func TestNormalizeLeavesValidPageAlone(t *testing.T) {
	page := Page{Skip: 20, Limit: 10}.Normalize()
	assert.Equal(t, Page{Skip: 20, Limit: 10}, page)
}

func TestDefault(t *testing.T) {
	page := Default()
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, DefaultLimit, page.Limit)
}
