package schema_registry

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    &http.Request{URL: &url.URL{Scheme: "http", Host: "registry:8081", Path: "/subjects"}},
	}
}

func TestDecodeJSONSuccess(t *testing.T) {
	subjects, err := decodeJSON[[]string](fakeResponse(http.StatusOK, `["a","b"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, subjects)
}

func TestDecodeJSONInvalidBody(t *testing.T) {
	_, err := decodeJSON[registeredID](fakeResponse(http.StatusOK, "not json"))
	require.Error(t, err)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "not json", decodeErr.Body)
	assert.Contains(t, decodeErr.Target, "registeredID")
	assert.False(t, IsUpstreamError(err))
}

func TestDecodeJSONUpstreamError(t *testing.T) {
	body := `{"error_code":40401,"message":"Subject not found."}`
	_, err := decodeJSON[Subject](fakeResponse(http.StatusNotFound, body))
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Equal(t, body, upstream.Body)
	assert.Equal(t, "http://registry:8081/subjects", upstream.URL)
	assert.Equal(t, 40401, upstream.ErrorCode())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsDecodeError(err))
}

func TestUpstreamErrorCodeWithoutEnvelope(t *testing.T) {
	err := &UpstreamError{StatusCode: http.StatusBadGateway, Body: "<html>bad gateway</html>"}
	assert.Zero(t, err.ErrorCode())
}

func TestDecodeNoContentAcceptsAnyBody(t *testing.T) {
	_, err := decodeNoContent(fakeResponse(http.StatusNoContent, ""))
	assert.NoError(t, err)

	_, err = decodeNoContent(fakeResponse(http.StatusOK, "whatever"))
	assert.NoError(t, err)

	_, err = decodeNoContent(fakeResponse(http.StatusConflict, "busy"))
	assert.True(t, IsUpstreamError(err))
}

func TestDecodeRawReturnsBodyVerbatim(t *testing.T) {
	proto := "syntax = \"proto3\";\nmessage User { string name = 1; }\n"
	raw, err := decodeRaw(fakeResponse(http.StatusOK, proto))
	require.NoError(t, err)
	assert.Equal(t, proto, raw)
}

func TestLossyString(t *testing.T) {
	assert.Equal(t, "a�b", lossyString([]byte{'a', 0xff, 'b'}))
}
