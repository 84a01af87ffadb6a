package models

import (
	"encoding/json"
	"github.com/tidwall/gjson"
	"strconv"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value holds a session attribute or slot value. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

func Null() Value {
	return Value{}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string payload and whether v holds a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String renders the value the way it would be spoken back: null becomes "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidRequest
	}
	*v = valueOf(gjson.ParseBytes(data))
	return nil
}

// valueOf collapses objects and arrays to their raw JSON text.
func valueOf(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return Number(r.Num)
	case gjson.True:
		return Bool(true)
	case gjson.False:
		return Bool(false)
	case gjson.JSON:
		return String(r.Raw)
	}
	return Null()
}

type Attributes map[string]Value

func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// decodeAttributes reads the wire shape {"key": {"value": ...}}. A record
// without a value field decodes to null and is kept.
func decodeAttributes(r gjson.Result) Attributes {
	attrs := Attributes{}
	if !r.IsObject() {
		return attrs
	}
	r.ForEach(func(key, record gjson.Result) bool {
		attrs[key.String()] = valueOf(record.Get("value"))
		return true
	})
	return attrs
}
