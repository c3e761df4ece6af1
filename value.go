package cqcode

import "strconv"

// ValueType identifies which variant a Value holds.
type ValueType uint8

const (
	TypeAbsent ValueType = iota // no value provided; dropped from both serialization forms
	TypeNull                    // explicit null; kept on the wire, dropped from the structured form
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeNested // a nested tag sequence, e.g. a forward node's content
)

// String returns the variant name.
func (t ValueType) String() string {
	switch t {
	case TypeAbsent:
		return "absent"
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Value is one tag attribute value. The variant set is closed: string,
// int, float, bool, nested tag sequence, null, and the absent sentinel.
// The zero Value is absent.
type Value struct {
	typ  ValueType
	str  string
	num  int64
	flt  float64
	bit  bool
	tags []*Tag
}

// Str builds a string value.
func Str(s string) Value { return Value{typ: TypeString, str: s} }

// Int builds an integer value.
func Int(i int64) Value { return Value{typ: TypeInt, num: i} }

// Float builds a floating-point value.
func Float(f float64) Value { return Value{typ: TypeFloat, flt: f} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{typ: TypeBool, bit: b} }

// Nested builds a value holding a tag sequence.
func Nested(tags ...*Tag) Value { return Value{typ: TypeNested, tags: tags} }

// Null builds an explicit null value, distinct from absent.
func Null() Value { return Value{typ: TypeNull} }

// Absent builds the "no value provided" sentinel.
func Absent() Value { return Value{} }

// Type returns the variant held by v.
func (v Value) Type() ValueType { return v.typ }

// IsAbsent reports whether v is the absent sentinel.
func (v Value) IsAbsent() bool { return v.typ == TypeAbsent }

// IsNull reports whether v is an explicit null.
func (v Value) IsNull() bool { return v.typ == TypeNull }

// Text renders the wire stringification of v. Null renders as "null";
// a nested sequence renders as the concatenated wire text of its tags.
func (v Value) Text() string {
	switch v.typ {
	case TypeNull:
		return "null"
	case TypeString:
		return v.str
	case TypeInt:
		return strconv.FormatInt(v.num, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.bit)
	case TypeNested:
		return Message(v.tags).String()
	default:
		return ""
	}
}

// Native converts v to the plain Go representation used by the
// structured form: a nested sequence becomes a []Segment, null and
// absent become nil.
func (v Value) Native() any {
	switch v.typ {
	case TypeString:
		return v.str
	case TypeInt:
		return v.num
	case TypeFloat:
		return v.flt
	case TypeBool:
		return v.bit
	case TypeNested:
		return Message(v.tags).Segments()
	default:
		return nil
	}
}
