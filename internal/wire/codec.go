package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

var (
	ErrNullBody     = errors.New("null body")
	ErrMissingField = errors.New("missing required field")
	ErrNotObject    = errors.New("not an object")
)

// EncodeJSON serializes v for a request body. Field names come from the
// snake_case struct tags on the model types; time.Time values are written
// as RFC 3339 (ISO-8601) text and []byte as base64.
func EncodeJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// DecodeJSON parses a response body into v. Unknown fields are ignored so
// the backend can grow its payloads without breaking older clients.
func DecodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// EncodeForm encodes fields as an application/x-www-form-urlencoded body
// using standard query escaping. Keys are emitted in sorted order.
func EncodeForm(fields map[string]string) []byte {
	values := make(url.Values, len(fields))
	for k, v := range fields {
		values.Set(k, v)
	}
	return []byte(values.Encode())
}

// RequireKeys checks that data carries every key in keys with a non-null
// value. data must be an object or an array of objects; each element of an
// array is checked. A top-level null is rejected.
func RequireKeys(data []byte, keys ...string) error {
	r := gjson.ParseBytes(data)
	switch {
	case r.Type == gjson.Null:
		return ErrNullBody
	case r.IsArray():
		for i, el := range r.Array() {
			if err := requireObject(el, keys); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	default:
		return requireObject(r, keys)
	}
}

func requireObject(r gjson.Result, keys []string) error {
	if !r.IsObject() {
		return ErrNotObject
	}
	for _, k := range keys {
		if v := r.Get(gjson.Escape(k)); !v.Exists() || v.Type == gjson.Null {
			return fmt.Errorf("%w %q", ErrMissingField, k)
		}
	}
	return nil
}
