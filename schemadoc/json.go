package schemadoc

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// readJSON decodes a stream of JSON values into document trees. Key order is
// preserved and duplicate keys are rejected.
func readJSON(r io.Reader) ([]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var docs []any
	for {
		v, err := readJSONValue(dec, "")
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}

func readJSONValue(dec *json.Decoder, path string) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec, path)
		case '[':
			return readJSONArray(dec, path)
		}
		return nil, fmt.Errorf("schemadoc: unexpected %q at %s", string(rune(t)), pathOrRoot(path))
	case json.Number:
		return t.Float64()
	case string, bool, nil:
		return t, nil
	case float64:
		return t, nil
	}
	return nil, fmt.Errorf("schemadoc: unexpected token %v at %s", tok, pathOrRoot(path))
}

func readJSONObject(dec *json.Decoder, path string) (any, error) {
	m := mapping{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("schemadoc: expected object key at %s", pathOrRoot(path))
		}
		if _, dup := seen[key]; dup {
			return nil, &DuplicateKeyError{Key: key, Path: path}
		}
		seen[key] = struct{}{}
		v, err := readJSONValue(dec, pointer(path, key))
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		m.set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return m, nil
}

func readJSONArray(dec *json.Decoder, path string) (any, error) {
	arr := []any{}
	for i := 0; dec.More(); i++ {
		v, err := readJSONValue(dec, pointer(path, strconv.Itoa(i)))
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, unexpectedEOF(err)
	}
	return arr, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
