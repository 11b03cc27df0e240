// Package serialize converts parsed records into ordered generic
// values, and to and from JSON.
//
// Value is total: any Go value converts, without error. Structs become
// a Map with one Pair per exported field, in declaration order, keyed
// by the field's json tag. Nil pointers and nil slices become nil, so
// absent elements serialize as JSON null while present but empty
// ones keep their empty value.
package serialize

import (
	"bytes"
	"encoding"
	"encoding/json"
	"reflect"
	"strings"
)

// Pair is one key and value of a Map.
type Pair struct {
	Key   string
	Value interface{}
}

// Map is an ordered string-keyed map.
type Map []Pair

// Get returns the value for key, and whether it is present.
func (m Map) Get(key string) (interface{}, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of m in order.
func (m Map) Keys() []string {
	keys := make([]string, len(m))
	for i, p := range m {
		keys[i] = p.Key
	}
	return keys
}

// MarshalJSON encodes m as a JSON object, keeping the key order.
// encoding/json escapes HTML characters in the result again unless the
// encoder has SetEscapeHTML(false), as JSON does.
func (m Map) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, p := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := encode(&b, p.Key); err != nil {
			return nil, err
		}
		b.WriteByte(':')
		if err := encode(&b, p.Value); err != nil {
			return nil, err
		}
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// encode writes v to b without escaping markup, which is common in
// table sources.
func encode(b *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	b.Truncate(b.Len() - 1) // trailing newline
	return nil
}

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

// Value returns the generic form of v, built from Map,
// []interface{}, map[string]interface{} and scalar values.
func Value(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return value(reflect.ValueOf(v))
}

func value(v reflect.Value) interface{} {
	if v.Type().Implements(textMarshalerType) && !isNil(v) {
		if text, err := v.Interface().(encoding.TextMarshaler).MarshalText(); err == nil {
			return string(text)
		}
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return value(v.Elem())
	case reflect.Struct:
		return structMap(v)
	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = value(v.Index(i))
		}
		return out
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = value(iter.Value())
		}
		return out
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil
	default:
		return v.Interface()
	}
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func structMap(v reflect.Value) Map {
	t := v.Type()
	m := make(Map, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		// untagged embedded structs are inlined, as by encoding/json
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("json") == "" {
			m = append(m, structMap(v.Field(i))...)
			continue
		}
		key := fieldKey(f)
		if key == "" {
			continue
		}
		m = append(m, Pair{Key: key, Value: value(v.Field(i))})
	}
	return m
}

// fieldKey returns the key of struct field f, or "" if the field is
// excluded by a `json:"-"` tag.
func fieldKey(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if name := strings.Split(tag, ",")[0]; name != "" {
		return name
	}
	return f.Name
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	b, _ := json.Marshal(k.Interface())
	return strings.Trim(string(b), `"`)
}

// ToMap returns the generic form of v as a Map. Values that do not
// convert to a Map are wrapped as {"value": v}.
func ToMap(v interface{}) Map {
	switch gv := Value(v).(type) {
	case Map:
		return gv
	default:
		return Map{{Key: "value", Value: gv}}
	}
}

// JSON returns the indented JSON encoding of v.
func JSON(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Value(v)); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decode decodes JSON produced by JSON into the record at v.
func Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
