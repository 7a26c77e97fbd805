// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdadata

import (
	"io"
	"reflect"

	"github.com/ugorji/go/codec"
)

// jsonHandle decodes JSON objects into string-keyed maps so the rest
// of the library can treat every response uniformly as Dict values.
var jsonHandle = newJSONHandle()

func newJSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return h
}

// DecodeJSON decodes one JSON value from a reader.  out must be of
// pointer type.
func DecodeJSON(r io.Reader, out interface{}) error {
	return codec.NewDecoder(r, jsonHandle).Decode(out)
}

// DecodeJSONBytes decodes one JSON value from a byte slice.  out must
// be of pointer type.
func DecodeJSONBytes(b []byte, out interface{}) error {
	return codec.NewDecoderBytes(b, jsonHandle).Decode(out)
}

// EncodeJSON serializes a value as JSON.
func EncodeJSON(v interface{}) ([]byte, error) {
	var out []byte
	err := codec.NewEncoderBytes(&out, jsonHandle).Encode(v)
	return out, err
}

// DeepCopy recursively copies decoded JSON.  Data uses it so that
// later mutation of the caller's value cannot invalidate a cached
// projection.
func DeepCopy(v JSON) JSON {
	switch value := v.(type) {
	case Dict:
		out := make(Dict, len(value))
		for key, item := range value {
			out[key] = DeepCopy(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = DeepCopy(item)
		}
		return out
	default:
		return v
	}
}
