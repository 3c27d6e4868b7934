package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

// MaxFormBytes caps the size of a request body accepted by ParseForm.
const MaxFormBytes = 1 << 20

// ErrUnsupportedBody is returned by ParseForm when the body cannot be read as
// form fields.
var ErrUnsupportedBody = errors.New("unsupported request body")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ParseForm reads the request body as form fields.
//
// Accepted content types:
//   - application/x-www-form-urlencoded
//   - multipart/form-data
//   - application/json (a flat object; numbers and booleans are stringified)
//
// A missing content type is treated as urlencoded. Bodies larger than
// MaxFormBytes are rejected.
func ParseForm(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)

	ct := r.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/x-www-form-urlencoded"
		r.Header.Set("Content-Type", ct)
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedBody, err)
	}

	switch mediaType {
	case "application/json":
		return parseJSONForm(r.Body)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxFormBytes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedBody, err)
		}
		return r.PostForm, nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedBody, err)
		}
		return r.PostForm, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBody, mediaType)
	}
}

func parseJSONForm(body io.Reader) (url.Values, error) {
	var raw map[string]any
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedBody, err)
	}

	values := make(url.Values, len(raw))
	for k, v := range raw {
		switch value := v.(type) {
		case nil:
			values.Set(k, "")
		case string:
			values.Set(k, value)
		case bool:
			values.Set(k, strconv.FormatBool(value))
		case float64:
			values.Set(k, strconv.FormatFloat(value, 'f', -1, 64))
		default:
			return nil, fmt.Errorf("%w: field %q is not a scalar", ErrUnsupportedBody, k)
		}
	}

	return values, nil
}
