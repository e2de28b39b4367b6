package marshal

import (
	"sort"
	"strconv"
)

// Kind is the tag of a decoded value.
type Kind byte

const (
	// KindString is a length prefixed string, tag 's'.
	KindString Kind = 's'
	// KindInt is a little-endian signed 32-bit integer, tag 'i'.
	KindInt Kind = 'i'
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single dictionary value. Str is set for KindString, Int for KindInt.
type Value struct {
	Kind Kind
	Str  string
	Int  int32
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func IntValue(i int32) Value {
	return Value{Kind: KindInt, Int: i}
}

// String returns the value as text, integers in decimal.
func (v Value) String() string {
	if v.Kind == KindInt {
		return strconv.FormatInt(int64(v.Int), 10)
	}
	return v.Str
}

// Dict is one decoded record. Integer values are already rendered as decimal strings.
type Dict map[string]string

// Keys returns dictionary keys in sorted order.
func (d Dict) Keys() []string {
	res := make([]string, 0, len(d))
	for k := range d {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
