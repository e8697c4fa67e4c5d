package validators

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/item?limit=25", nil)

	value, err := ParseQueryInt(r, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, 25, value)

	value, err = ParseQueryInt(r, "skip", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, value)

	r = httptest.NewRequest("GET", "/item?limit=abc", nil)
	_, err = ParseQueryInt(r, "limit", 10)
	require.Error(t, err)
}

func TestParseQueryIntAllowsNegatives(t *testing.T) {
	// the search engine clamps negatives itself; the parser passes them through
	r := httptest.NewRequest("GET", "/item?limit=-1", nil)
	value, err := ParseQueryInt(r, "limit", 10)
	require.NoError(t, err)
	assert.Equal(t, -1, value)
}

func TestParseOptionalQueryInt64(t *testing.T) {
	r := httptest.NewRequest("GET", "/item?loc_id=4", nil)

	value, err := ParseOptionalQueryInt64(r, "loc_id")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(4), *value)

	value, err = ParseOptionalQueryInt64(r, "item_id")
	require.NoError(t, err)
	assert.Nil(t, value)

	r = httptest.NewRequest("GET", "/item?loc_id=abc", nil)
	_, err = ParseOptionalQueryInt64(r, "loc_id")
	require.Error(t, err)
}

func TestParseOptionalQueryString(t *testing.T) {
	r := httptest.NewRequest("GET", "/item?serial=SN-1&part=", nil)

	serial := ParseOptionalQueryString(r, "serial")
	require.NotNil(t, serial)
	assert.Equal(t, "SN-1", *serial)

	// present-but-empty still counts as a filter
	part := ParseOptionalQueryString(r, "part")
	require.NotNil(t, part)
	assert.Equal(t, "", *part)

	assert.Nil(t, ParseOptionalQueryString(r, "item_type"))
}
