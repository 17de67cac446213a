package schemadoc

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
)

// member is one key/value pair of a document mapping.
type member struct {
	Key   string
	Value any
}

// mapping is a document object with key order preserved. Values are
// mapping, []any, string, float64, bool or nil.
type mapping []member

func (m mapping) get(key string) (any, bool) {
	for _, kv := range m {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return nil, false
}

func (m *mapping) set(key string, v any) {
	*m = append(*m, member{Key: key, Value: v})
}

// MarshalJSON writes the members in order.
func (m mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// pointer appends an escaped JSON Pointer token to path.
func pointer(path, token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return path + "/" + token
}
