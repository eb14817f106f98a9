package rendering

import (
	"encoding/json"
	"sort"
)

// MaxDepth bounds how deeply nested a Value built by FromAny or DecodeJSON may be.
// Self-referential Go maps and slices hit this limit instead of recursing forever.
const MaxDepth = 512

// Kind identifies which of the four shapes a Value holds.
type Kind int

const (
	// KindScalar is any non-string leaf: numbers, booleans and null.
	KindScalar Kind = iota
	// KindString is a text leaf.
	KindString
	// KindList is an ordered sequence of values.
	KindList
	// KindMap is an ordered mapping from string keys to values.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Field is one key/value entry of a map Value.
type Field struct {
	Key   string
	Value Value
}

// Value is a tree of maps, lists, strings and scalars.
// The zero Value is the null scalar.
type Value struct {
	kind   Kind
	str    string
	scalar any
	items  []Value
	fields []Field
}

// String returns a string leaf.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Scalar returns a non-string leaf. A string argument yields a string leaf instead.
func Scalar(v any) Value {
	if s, ok := v.(string); ok {
		return String(s)
	}
	return Value{kind: KindScalar, scalar: v}
}

// Null returns the null scalar.
func Null() Value {
	return Value{}
}

// List returns a list of the given items.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// Map returns a map with the given fields in order.
func Map(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{kind: KindMap, fields: fields}
}

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the text of a string leaf, or "" for other kinds.
func (v Value) Str() string { return v.str }

// ScalarValue returns the payload of a scalar leaf.
func (v Value) ScalarValue() any { return v.scalar }

// Items returns the elements of a list.
func (v Value) Items() []Value { return v.items }

// Fields returns the entries of a map in order.
func (v Value) Fields() []Field { return v.fields }

// Get returns the value stored under key in a map. The first matching field wins.
func (v Value) Get(key string) (Value, bool) {
	for _, field := range v.fields {
		if field.Key == key {
			return field.Value, true
		}
	}
	return Value{}, false
}

// FromAny converts a decoded Go value into a Value.
// map[string]any keys are sorted since Go maps have no order; []any, []string and
// map[string]string are also understood. Anything else becomes a scalar.
func FromAny(v any) (Value, error) {
	return fromAny(v, 0)
}

func fromAny(v any, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, &NestingError{Limit: MaxDepth}
	}

	switch t := v.(type) {
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fields := make([]Field, 0, len(t))
		for _, key := range keys {
			child, err := fromAny(t[key], depth+1)
			if err != nil {
				return Value{}, err
			}
			fields = append(fields, Field{Key: key, Value: child})
		}
		return Map(fields...), nil
	case map[string]string:
		keys := make([]string, 0, len(t))
		for key := range t {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fields := make([]Field, 0, len(t))
		for _, key := range keys {
			fields = append(fields, Field{Key: key, Value: String(t[key])})
		}
		return Map(fields...), nil
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			child, err := fromAny(item, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, child)
		}
		return List(items...), nil
	case []string:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, String(item))
		}
		return List(items...), nil
	default:
		return Scalar(t), nil
	}
}

// ValueOf converts any JSON-marshalable Go value into a Value, keeping struct field order.
func ValueOf(v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, &DecodeError{Message: "failed to marshal value", Cause: err}
	}
	return DecodeJSON(data)
}
