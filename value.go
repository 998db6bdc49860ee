package gltfdoc

import (
	"bytes"
	"io"
	"sort"

	j "github.com/goccy/go-json"

	"github.com/lumel/gltfdoc/internal/jsontoken"
)

// ValueKind enumerates the variants of Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a schema-less JSON value: null, bool, number, string, array or
// object. Numbers keep their wire text verbatim (via json.Number) and object
// members keep their wire order, so arbitrary extension/extras content
// survives a decode/encode round trip untouched. The zero Value is null.
type Value struct {
	kind ValueKind
	b    bool
	num  j.Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the null Value.
func Null() Value { return Value{} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NumberValue wraps a number literal. The text is emitted verbatim.
func NumberValue(n j.Number) Value { return Value{kind: KindNumber, num: n} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ArrayValue wraps elems. The slice is not copied.
func ArrayValue(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// ObjectValue wraps o. A nil Object behaves as an empty one.
func ObjectValue(o *Object) Value { return Value{kind: KindObject, obj: o} }

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the bool payload; false for other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Number returns the number payload; "" for other kinds.
func (v Value) Number() j.Number {
	if v.kind != KindNumber {
		return ""
	}
	return v.num
}

// String returns the string payload; "" for other kinds.
func (v Value) String() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Array returns the array payload; nil for other kinds.
func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Object returns the object payload; nil for other kinds.
func (v Value) Object() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Equal reports semantic equality: same kind, same payload, with numbers
// compared by literal text and objects compared member-by-member in order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(w.obj)
	}
	return false
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers member order. Later Sets of an
// existing key replace the value in place.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty Object.
func NewObject() *Object { return &Object{} }

// Len reports the member count.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns the members in wire order. The slice is shared; treat it as
// read-only.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

// Get looks up key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil || o.index == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set inserts or replaces key. Insertion order is preserved.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Keys returns the member keys in wire order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// SortedKeys returns the member keys sorted lexically. Useful for
// deterministic reporting; encoding never reorders members.
func (o *Object) SortedKeys() []string {
	keys := o.Keys()
	sort.Strings(keys)
	return keys
}

// Equal compares member-by-member, order included.
func (o *Object) Equal(p *Object) bool {
	if o.Len() != p.Len() {
		return false
	}
	for i := range o.Members() {
		om, pm := o.members[i], p.members[i]
		if om.Key != pm.Key || !om.Value.Equal(pm.Value) {
			return false
		}
	}
	return true
}

// ParseValue parses a single JSON document into a Value.
func ParseValue(data []byte) (Value, error) {
	src := jsontoken.NewBytes(data)
	tok, err := src.Next()
	if err != nil {
		return Value{}, syntaxError(err, src.Offset())
	}
	v, err := parseValueFrom(src, tok)
	if err != nil {
		return Value{}, err
	}
	// Anything after the document is a framing error.
	if _, err := src.Next(); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return Value{}, syntaxError(err, src.Offset())
	}
	return v, nil
}

func parseValueFrom(src *jsontoken.Source, tok jsontoken.Token) (Value, error) {
	switch tok.Kind {
	case jsontoken.KindBeginObject:
		obj := NewObject()
		for {
			kt, err := src.Next()
			if err != nil {
				return Value{}, syntaxError(err, src.Offset())
			}
			if kt.Kind == jsontoken.KindEndObject {
				return ObjectValue(obj), nil
			}
			if kt.Kind != jsontoken.KindKey {
				return Value{}, syntaxError(io.ErrUnexpectedEOF, kt.Offset)
			}
			vt, err := src.Next()
			if err != nil {
				return Value{}, syntaxError(err, src.Offset())
			}
			v, err := parseValueFrom(src, vt)
			if err != nil {
				return Value{}, err
			}
			obj.Set(kt.String, v)
		}
	case jsontoken.KindBeginArray:
		var elems []Value
		for {
			et, err := src.Next()
			if err != nil {
				return Value{}, syntaxError(err, src.Offset())
			}
			if et.Kind == jsontoken.KindEndArray {
				return ArrayValue(elems), nil
			}
			v, err := parseValueFrom(src, et)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
	case jsontoken.KindString:
		return StringValue(tok.String), nil
	case jsontoken.KindNumber:
		return NumberValue(j.Number(tok.Number)), nil
	case jsontoken.KindBool:
		return BoolValue(tok.Bool), nil
	case jsontoken.KindNull:
		return Null(), nil
	}
	return Value{}, syntaxError(io.ErrUnexpectedEOF, tok.Offset)
}

// AppendJSON serializes v, appending to dst. Object members are written in
// stored order and number literals verbatim.
func (v Value) AppendJSON(dst []byte) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.b {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindNumber:
		if v.num == "" {
			return append(dst, '0'), nil
		}
		return append(dst, v.num...), nil
	case KindString:
		return appendJSONString(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = e.AppendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.obj.Members() {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendJSONString(dst, m.Key)
			if err != nil {
				return nil, err
			}
			dst = append(dst, ':')
			dst, err = m.Value.AppendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, errInvalidValueKind
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) { return v.AppendJSON(nil) }

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func appendJSONString(dst []byte, s string) ([]byte, error) {
	// Delegate escaping to the JSON library; it never fails on a string.
	b, err := j.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(dst, bytes.TrimRight(b, "\n")...), nil
}
