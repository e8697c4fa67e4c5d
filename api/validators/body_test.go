package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/averyhollis/stockroom-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1"`
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"widget","count":2}`))

	var dest samplePayload
	require.NoError(t, DecodeJSONBody(r, &dest))
	assert.Equal(t, "widget", dest.Name)
	assert.Equal(t, 2, dest.Count)
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"widget","count":2,"extra":true}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDecodeJSONBodyReportsFieldErrorsByJSONName(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"count":0}`))

	var dest samplePayload
	err := DecodeJSONBody(r, &dest)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "must be at least 1", details["count"])
}
