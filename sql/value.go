package sql

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Type is the dtype of a column value.
type Type byte

const (
	// Int64 is a signed 64-bit integer type.
	Int64 Type = iota + 1
	// Text is a variable-length string type.
	Text
)

func (t Type) String() string {
	switch t {
	case Int64:
		return "INT64"
	case Text:
		return "TEXT"
	default:
		return fmt.Sprintf("TYPE(%d)", byte(t))
	}
}

// Convert coerces v into the Go representation of t.
func (t Type) Convert(v interface{}) (interface{}, error) {
	switch t {
	case Int64:
		return cast.ToInt64E(v)
	case Text:
		return cast.ToStringE(v)
	default:
		return nil, ErrInvalidType.New(t)
	}
}

// Value is an immutable column value, a tagged union over the supported
// scalar types. Data holds an int64 for Int64 values and a string for Text
// values.
type Value struct {
	Type Type
	Data interface{}
}

// NewInt64 returns an Int64 value.
func NewInt64(i int64) Value {
	return Value{Type: Int64, Data: i}
}

// NewText returns a Text value.
func NewText(s string) Value {
	return Value{Type: Text, Data: s}
}

// NewValue coerces raw into a value of type t.
func NewValue(t Type, raw interface{}) (Value, error) {
	data, err := t.Convert(raw)
	if err != nil {
		return Value{}, err
	}
	return Value{Type: t, Data: data}, nil
}

// Compare orders v against o. The boolean result is false when the two
// values do not share a dtype; comparing across dtypes is not an error, the
// comparison just never holds.
func (v Value) Compare(o Value) (int, bool) {
	if v.Type != o.Type {
		return 0, false
	}

	switch v.Type {
	case Int64:
		a, aok := v.Data.(int64)
		b, bok := o.Data.(int64)
		if !aok || !bok {
			return 0, false
		}
		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		default:
			return 0, true
		}
	case Text:
		a, aok := v.Data.(string)
		b, bok := o.Data.(string)
		if !aok || !bok {
			return 0, false
		}
		return strings.Compare(a, b), true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Type {
	case Text:
		return fmt.Sprintf("%q", v.Data)
	default:
		return fmt.Sprintf("%v", v.Data)
	}
}
