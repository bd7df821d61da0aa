package schema_registry

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// responseDecoder turns one HTTP response into a typed result.
type responseDecoder[T any] func(resp *http.Response) (T, error)

// readResponse reads the body and classifies the response by status class.
// Non-2xx responses become an *UpstreamError carrying the request URL, the
// status and the raw body.
func readResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			URL:        responseURL(resp),
			StatusCode: resp.StatusCode,
			Body:       lossyString(body),
		}
	}

	return body, nil
}

// decodeJSON decodes a 2xx body into T. A body that does not parse yields a
// *DecodeError naming T.
func decodeJSON[T any](resp *http.Response) (T, error) {
	var out T

	body, err := readResponse(resp)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, &DecodeError{
			Body:   lossyString(body),
			Target: reflect.TypeFor[T]().String(),
			Err:    err,
		}
	}

	return out, nil
}

// decodeNoContent is used by operations whose result carries no information.
// Any 2xx response is a success regardless of its body.
func decodeNoContent(resp *http.Response) (struct{}, error) {
	_, err := readResponse(resp)
	return struct{}{}, err
}

func responseURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}

func lossyString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// decodeRaw returns a 2xx body verbatim. Raw schema endpoints answer with the
// schema document itself, which is not necessarily JSON (Protobuf schemas are
// returned as .proto text).
func decodeRaw(resp *http.Response) (string, error) {
	body, err := readResponse(resp)
	if err != nil {
		return "", err
	}
	return lossyString(body), nil
}
