package packmsg

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnpackExactNil(t *testing.T) {
	v, err := UnpackExact([]byte{0xc0})
	if err != nil {
		t.Fatalf("UnpackExact: %v", err)
	}
	if !v.IsNil() {
		t.Fatalf("expected Nil, got %v", v.Kind())
	}
}

func TestRoundTripUniversal(t *testing.T) {
	values := []Value{
		Nil(),
		Bool(true),
		Bool(false),
		Int(0), Int(127), Int(128), Int(-1), Int(-32), Int(-33),
		Int(1 << 40), Int(-(1 << 40)),
		Float(3.14159),
		Str(""), Str("hello, world"),
		Bin([]byte{}), Bin([]byte{1, 2, 3, 4, 5}),
		Arr(nil),
		Arr([]Value{Int(1), Str("two"), Bool(true)}),
		NewMap([]KV{{Key: Str("a"), Val: Int(1)}, {Key: Str("b"), Val: Int(2)}}),
		Ext(7, []byte{0xde, 0xad, 0xbe, 0xef}),
	}
	for _, v := range values {
		b, err := Pack(v)
		if err != nil {
			t.Fatalf("Pack(%v): %v", v, err)
		}
		got, err := UnpackExact(b)
		if err != nil {
			t.Fatalf("UnpackExact(pack(%v)): %v", v, err)
		}
		if !got.Equal(v) {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got, v)
		}
	}
}

func TestStreamingLeavesSuffix(t *testing.T) {
	v := Arr([]Value{Int(1), Str("x")})
	b, err := Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	suffix := []byte{0xde, 0xad, 0xbe, 0xef}
	got, rest, err := Unpack(append(append([]byte{}, b...), suffix...))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("decoded value mismatch")
	}
	if !bytes.Equal(rest, suffix) {
		t.Fatalf("suffix mismatch: got % x, want % x", rest, suffix)
	}
}

func TestUnpackExactRejectsTrailingBytes(t *testing.T) {
	b, _ := Pack(Int(1))
	b = append(b, 0x00)
	_, err := UnpackExact(b)
	var te ErrTrailingBytes
	if !errors.As(err, &te) {
		t.Fatalf("expected ErrTrailingBytes, got %v", err)
	}
	if te.N != 1 {
		t.Fatalf("expected N=1, got %d", te.N)
	}
}

func TestUnpackRejectsReservedByte(t *testing.T) {
	_, _, err := Unpack([]byte{0xc1})
	var rf ErrReservedFormat
	if !errors.As(err, &rf) {
		t.Fatalf("expected ErrReservedFormat, got %v", err)
	}
}

func TestUnpackRejectsTruncatedInput(t *testing.T) {
	// str8 header declares 5 bytes but only 2 are present
	_, _, err := Unpack([]byte{0xd9, 0x05, 'h', 'i'})
	if !errors.As(err, new(ErrUnexpectedEOF)) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestUnpackRejectsInvalidUTF8(t *testing.T) {
	_, _, err := Unpack([]byte{0xa1, 0xff})
	if !errors.As(err, new(ErrInvalidUTF8)) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestUnpackAcceptsNonCanonicalIntegerWidths(t *testing.T) {
	// 1 is canonically a fixint, but a uint32-encoded 1 must still decode.
	v, _, err := Unpack([]byte{0xce, 0x00, 0x00, 0x00, 0x01})
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	n, ok := v.AsInt()
	if !ok || n != 1 {
		t.Fatalf("expected Integer(1), got %v", v)
	}
}

func TestUnpackAcceptsFloat32(t *testing.T) {
	// 0xca float32 1.5
	v, _, err := Unpack([]byte{0xca, 0x3f, 0xc0, 0x00, 0x00})
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	f, ok := v.AsFloat()
	if !ok || f != 1.5 {
		t.Fatalf("expected Float(1.5), got %v", v)
	}
}

func TestUnpackIntegerOverflow(t *testing.T) {
	// uint64 max: high bit set, exceeds int64 range
	b := []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, _, err := Unpack(b)
	if !errors.As(err, new(ErrIntegerOverflow)) {
		t.Fatalf("expected ErrIntegerOverflow, got %v", err)
	}
}

func TestUnpackWithLimitsRejectsOversizedCollection(t *testing.T) {
	// Array header declaring far more elements than the configured limit,
	// with no actual element bytes following. Must fail before allocating.
	b := []byte{0xdd, 0x7f, 0xff, 0xff, 0xff} // array32, huge count
	_, _, err := UnpackWithLimits(b, DecodeLimits{MaxCollectionLen: 10})
	var le ErrLimitExceeded
	if !errors.As(err, &le) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if le.Kind != "collection" {
		t.Fatalf("expected collection limit, got %q", le.Kind)
	}
}

func TestUnpackWithLimitsRejectsDeepNesting(t *testing.T) {
	// build 5-deep nested single-element arrays: [[[[[1]]]]]
	v := Int(1)
	for i := 0; i < 5; i++ {
		v = Arr([]Value{v})
	}
	b, err := Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = UnpackWithLimits(b, DecodeLimits{MaxDepth: 2})
	var le ErrLimitExceeded
	if !errors.As(err, &le) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
	if le.Kind != "depth" {
		t.Fatalf("expected depth limit, got %q", le.Kind)
	}
}

func TestMapEqualityIsOrderSensitive(t *testing.T) {
	a := NewMap([]KV{{Key: Str("x"), Val: Int(1)}, {Key: Str("y"), Val: Int(2)}})
	b := NewMap([]KV{{Key: Str("y"), Val: Int(2)}, {Key: Str("x"), Val: Int(1)}})
	if a.Equal(b) {
		t.Fatalf("maps with same pairs in different order must not be Equal")
	}
}
