package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Field is one key of an object Value. Fields keep the order they had in the
// source document.
type Field struct {
	Key   string
	Value *Value
}

// Value is a JSON tree that remembers object key order. Scheme documents are
// authored by hand and the first matching benefit wins, so the order in which
// keys were written is part of the data.
type Value struct {
	Kind   ValueKind
	Str    string
	Num    json.Number
	Bool   bool
	Items  []*Value
	Fields []Field
}

// ParseValue decodes a single JSON document.
func ParseValue(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			v := &Value{Kind: KindObject, Fields: []Field{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T, not string", keyTok)
				}
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				v.Fields = append(v.Fields, Field{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		case '[':
			v := &Value{Kind: KindArray, Items: []*Value{}}
			for dec.More() {
				child, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				v.Items = append(v.Items, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return v, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return &Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return &Value{Kind: KindNumber, Num: t}, nil
	case bool:
		return &Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return &Value{Kind: KindNull}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// MarshalJSON implements json.Marshaler, writing object keys in source order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encode(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}

	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		b, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindNumber:
		buf.WriteString(v.Num.String())
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := f.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown value kind %d", v.Kind)
	}
	return nil
}

// Get returns the first field named key, or nil when v is not an object or
// has no such field.
func (v *Value) Get(key string) *Value {
	if v == nil || v.Kind != KindObject {
		return nil
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Truthy reports whether the value counts as present: non-empty strings,
// non-zero numbers, true, and any array or object.
func (v *Value) Truthy() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case KindString:
		return v.Str != ""
	case KindNumber:
		f, err := v.Num.Float64()
		return err == nil && f != 0
	case KindBool:
		return v.Bool
	case KindArray, KindObject:
		return true
	}
	return false
}

// Text returns the string content of a string value, trimmed.
func (v *Value) Text() string {
	if v == nil || v.Kind != KindString {
		return ""
	}
	return strings.TrimSpace(v.Str)
}

// Int returns the integer part of a numeric value, or of a string holding a
// number, and false otherwise.
func (v *Value) Int() (int, bool) {
	if v == nil {
		return 0, false
	}
	var num json.Number
	switch v.Kind {
	case KindNumber:
		num = v.Num
	case KindString:
		num = json.Number(strings.TrimSpace(v.Str))
	default:
		return 0, false
	}
	f, err := num.Float64()
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// Strings flattens a value into its string leaves. A lone string yields a
// single element; arrays contribute their string items in order.
func (v *Value) Strings() []string {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindString:
		if s := strings.TrimSpace(v.Str); s != "" {
			return []string{s}
		}
	case KindArray:
		out := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if item != nil && item.Kind == KindString {
				if s := strings.TrimSpace(item.Str); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return nil
}

// EmptyArray returns a fresh empty array value.
func EmptyArray() *Value {
	return &Value{Kind: KindArray, Items: []*Value{}}
}
