package sqlgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidRoot reports a document whose root is not a non-empty JSON
// object.
var ErrInvalidRoot = errors.New("JSON root must be a non-empty object")

// Member is one key/value pair of a decoded JSON object.
type Member struct {
	Key   string
	Value any
}

// Object is a decoded JSON object. Unlike map[string]any it preserves the
// document's key order, which fixes the column order of the generated
// statements. Values are Object, []any, json.Number, bool, string, or nil.
type Object []Member

// DecodeDocument decodes a single JSON document from r. The root must be a
// non-empty object; anything else returns [ErrInvalidRoot]. Numbers are
// decoded as json.Number so integer and floating-point leaves remain
// distinguishable.
func DecodeDocument(r io.Reader) (Object, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// A document is one value; anything after it is malformed.
	if dec.More() {
		return nil, fmt.Errorf("parsing JSON: %w: trailing data after document", io.ErrUnexpectedEOF)
	}

	obj, ok := v.(Object)
	if !ok || len(obj) == 0 {
		return nil, ErrInvalidRoot
	}
	return obj, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := tok.(json.Delim); ok {
		switch delim {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}

	// string, bool, json.Number, or nil.
	return tok, nil
}

func decodeObject(dec *json.Decoder) (Object, error) {
	obj := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, Member{Key: key, Value: val})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
