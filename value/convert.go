package value

import (
	"fmt"
	"reflect"
	"time"
	"unicode"
	"unicode/utf8"
)

var timeType = reflect.TypeOf(time.Time{})

// New converts an arbitrary Go value into a template Value, using
// DefaultStructOptions for any structs encountered.
func New(v interface{}) Value {
	return NewWith(DefaultStructOptions, v)
}

// NewWith converts an arbitrary Go value into a template Value, using
// the given StructOptions for any structs encountered.
func NewWith(convert StructOptions, v interface{}) Value {
	if val, ok := v.(Value); ok {
		return val
	}
	if v == nil {
		return Null{}
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Null{}
	}

	if rv.Type() == timeType {
		return String(rv.Interface().(time.Time).Format(convert.TimeFormat))
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return String(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}
		}
		out := make(List, rv.Len())
		for i := range out {
			out[i] = NewWith(convert, rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		m := make(Map, rv.Len())
		for _, key := range rv.MapKeys() {
			if key.Kind() != reflect.String {
				panic("value: map keys must be strings")
			}
			m[key.String()] = NewWith(convert, rv.MapIndex(key).Interface())
		}
		return m
	case reflect.Struct:
		return convert.fromStruct(rv.Interface())
	default:
		panic(fmt.Errorf("value: unexpected data type: %T (%v)", v, v))
	}
}

// DefaultStructOptions converts struct field names to lowerCamelCase
// and formats time.Time with RFC3339.
var DefaultStructOptions = StructOptions{
	LowerCamel: true,
	TimeFormat: time.RFC3339,
}

// StructOptions controls how Go structs convert into a template Map.
type StructOptions struct {
	LowerCamel bool   // if true, convert exported field names to lowerCamel
	TimeFormat string // format string for time.Time fields
}

func (c StructOptions) fromStruct(obj interface{}) Map {
	v := reflect.ValueOf(obj)
	t := v.Type()
	m := make(Map, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		key := t.Field(i).Name
		if c.LowerCamel {
			first, size := utf8.DecodeRuneInString(key)
			key = string(unicode.ToLower(first)) + key[size:]
		}
		m[key] = NewWith(c, v.Field(i).Interface())
	}
	return m
}
