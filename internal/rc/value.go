package rc

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Kind is the JSON type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
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
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value that preserves object member order as received.
//
// Numbers keep their textual form so that they are rendered back exactly as
// the peer sent them.
type Value struct {
	Kind    Kind
	Bool    bool
	Text    string // string contents, or the literal number text
	Items   []Value
	Members []Member
}

// Get returns the member named key of an object value.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// set stores key in an object value. A repeated key keeps its first position
// and takes the last value.
func (v *Value) set(key string, val Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = val
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: val})
}

// String constructs a string value.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Object constructs an object value from members in order.
func Object(members ...Member) Value { return Value{Kind: KindObject, Members: members} }

// ParseValue parses one JSON document into an ordered Value tree.
func ParseValue(data []byte) (Value, error) {
	iter := jsoniter.ConfigDefault.BorrowIterator(data)
	defer jsoniter.ConfigDefault.ReturnIterator(iter)

	v := readValue(iter)
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return Value{}, iter.Error
	}
	if iter.WhatIsNext() != jsoniter.InvalidValue {
		return Value{}, errors.New("trailing data after JSON value")
	}
	return v, nil
}

// iterOK reports whether iteration may continue. io.EOF after a scalar is
// not yet an error; the enclosing array or object reports it if unterminated.
func iterOK(it *jsoniter.Iterator) bool {
	return it.Error == nil || errors.Is(it.Error, io.EOF)
}

func readValue(iter *jsoniter.Iterator) Value {
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		return Value{Kind: KindNull}
	case jsoniter.BoolValue:
		return Value{Kind: KindBool, Bool: iter.ReadBool()}
	case jsoniter.NumberValue:
		text := string(iter.ReadNumber())
		if !validNumber(text) {
			iter.ReportError("readValue", "invalid number "+text)
			return Value{}
		}
		return Value{Kind: KindNumber, Text: text}
	case jsoniter.StringValue:
		return String(iter.ReadString())
	case jsoniter.ArrayValue:
		v := Value{Kind: KindArray, Items: []Value{}}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			v.Items = append(v.Items, readValue(it))
			return iterOK(it)
		})
		return v
	case jsoniter.ObjectValue:
		v := Value{Kind: KindObject, Members: []Member{}}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			v.set(key, readValue(it))
			return iterOK(it)
		})
		return v
	default:
		iter.ReportError("readValue", "unexpected token")
		return Value{}
	}
}

// validNumber reports whether text is a complete JSON number. ReadNumber only
// collects the characters a number may contain, so the token is decoded again
// on its own.
func validNumber(text string) bool {
	it := jsoniter.ParseString(jsoniter.ConfigDefault, text)
	it.ReadFloat64()
	return iterOK(it) && it.WhatIsNext() == jsoniter.InvalidValue
}
