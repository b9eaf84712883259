package packmsg

import "fmt"

// Kind identifies which of the nine MessagePack variants a Value holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
	KindArray
	KindMap
	KindExtension
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBinary:
		return "Binary"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindExtension:
		return "Extension"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KV is one key/value pair of a Map, in encounter/declaration order.
type KV struct {
	Key Value
	Val Value
}

// Extension is a MessagePack extension payload: an application-defined
// signed type code together with its opaque data.
type Extension struct {
	Type int8
	Data []byte
}

// Value is a closed, immutable tagged union over the nine MessagePack
// variants. The zero Value is Nil.
//
// Value holds one field per variant rather than an interface{} union: the
// variant set is fixed by the wire format, so a struct avoids an allocation
// and a type-switch on every leaf value.
type Value struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string
	bin []byte
	arr []Value
	m   []KV
	ext Extension
}

// Nil constructs the Nil Value.
func Nil() Value { return Value{kind: KindNil} }

// Bool constructs a Boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs an Integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a Float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str constructs a String Value. The caller is responsible for s being
// valid UTF-8; Pack does not re-validate on encode.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Bin constructs a Binary Value. b is not copied.
func Bin(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// Arr constructs an Array Value. items is not copied.
func Arr(items []Value) Value { return Value{kind: KindArray, arr: items} }

// NewMap constructs a Map Value from ordered pairs. Duplicate keys are
// permitted and order is preserved. pairs is not copied.
func NewMap(pairs []KV) Value { return Value{kind: KindMap, m: pairs} }

// Ext constructs an Extension Value. data is not copied.
func Ext(typeCode int8, data []byte) Value {
	return Value{kind: KindExtension, ext: Extension{Type: typeCode, Data: data}}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the Nil variant.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns v's bool payload and whether v is a Boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns v's int64 payload and whether v is an Integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns v's float64 payload and whether v is a Float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns v's string payload and whether v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBinary returns v's byte payload and whether v is Binary.
func (v Value) AsBinary() ([]byte, bool) { return v.bin, v.kind == KindBinary }

// AsArray returns v's element slice and whether v is an Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsMap returns v's pair slice and whether v is a Map.
func (v Value) AsMap() ([]KV, bool) { return v.m, v.kind == KindMap }

// AsExtension returns v's extension payload and whether v is an Extension.
func (v Value) AsExtension() (Extension, bool) { return v.ext, v.kind == KindExtension }

// Equal reports whether v and other are the same Value: same Kind, and for
// containers, pairwise-equal elements/pairs in the same order. Two Maps
// with the same pairs in different orders are NOT equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindBinary:
		return bytesEqual(v.bin, other.bin)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for i := range v.m {
			if !v.m[i].Key.Equal(other.m[i].Key) || !v.m[i].Val.Equal(other.m[i].Val) {
				return false
			}
		}
		return true
	case KindExtension:
		return v.ext.Type == other.ext.Type && bytesEqual(v.ext.Data, other.ext.Data)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
