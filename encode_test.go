package packmsg

import (
	"bytes"
	"testing"
)

func mustPack(t *testing.T, v Value) []byte {
	t.Helper()
	b, err := Pack(v)
	if err != nil {
		t.Fatalf("Pack(%v): %v", v, err)
	}
	return b
}

func TestCanonicalIntegerEncodings(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0xcc, 0x80}},
		{255, []byte{0xcc, 0xff}},
		{256, []byte{0xcd, 0x01, 0x00}},
		{65535, []byte{0xcd, 0xff, 0xff}},
		{65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{-1, []byte{0xff}},
		{-32, []byte{0xe0}},
		{-33, []byte{0xd0, 0xdf}},
		{-128, []byte{0xd0, 0x80}},
		{-129, []byte{0xd1, 0xff, 0x7f}},
		{-32768, []byte{0xd1, 0x80, 0x00}},
		{-32769, []byte{0xd2, 0xff, 0xff, 0x7f, 0xff}},
	}
	for _, tc := range cases {
		got := mustPack(t, Int(tc.n))
		if !bytes.Equal(got, tc.want) {
			t.Errorf("pack(%d) = % x, want % x", tc.n, got, tc.want)
		}
	}
}

func TestCanonicalNilBool(t *testing.T) {
	if got := mustPack(t, Nil()); !bytes.Equal(got, []byte{0xc0}) {
		t.Fatalf("pack(Nil) = % x", got)
	}
	if got := mustPack(t, Bool(false)); !bytes.Equal(got, []byte{0xc2}) {
		t.Fatalf("pack(false) = % x", got)
	}
	if got := mustPack(t, Bool(true)); !bytes.Equal(got, []byte{0xc3}) {
		t.Fatalf("pack(true) = % x", got)
	}
}

func TestCanonicalSimpleMap(t *testing.T) {
	v := NewMap([]KV{{Key: Str("a"), Val: Int(1)}})
	got := mustPack(t, v)
	want := []byte{0x81, 0xa1, 0x61, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("pack(map) = % x, want % x", got, want)
	}
}

func TestCanonicalStrings(t *testing.T) {
	// fixstr boundary at 31 bytes
	s31 := string(bytes.Repeat([]byte("a"), 31))
	got := mustPack(t, Str(s31))
	if got[0] != 0xbf {
		t.Fatalf("expected fixstr header 0xbf for len 31, got 0x%02x", got[0])
	}
	s32 := string(bytes.Repeat([]byte("a"), 32))
	got = mustPack(t, Str(s32))
	if got[0] != 0xd9 || got[1] != 32 {
		t.Fatalf("expected str8 header for len 32, got % x", got[:2])
	}
}

func TestCanonicalFloatAlwaysFloat64(t *testing.T) {
	got := mustPack(t, Float(1.5))
	if got[0] != 0xcb {
		t.Fatalf("expected float64 prefix 0xcb, got 0x%02x", got[0])
	}
	if len(got) != 9 {
		t.Fatalf("expected 9 bytes total, got %d", len(got))
	}
}

func TestCanonicalExtensionFixextPriority(t *testing.T) {
	got := mustPack(t, Ext(5, make([]byte, 8)))
	if got[0] != 0xd7 {
		t.Fatalf("expected fixext8 0xd7 for 8-byte ext, got 0x%02x", got[0])
	}
	// 3 bytes is not a fixext size -> falls to ext8
	got = mustPack(t, Ext(5, make([]byte, 3)))
	if got[0] != 0xc7 {
		t.Fatalf("expected ext8 0xc7 for 3-byte ext, got 0x%02x", got[0])
	}
}

func TestEncodeArrayMapLengthHeaders(t *testing.T) {
	items := make([]Value, 16) // just over fixarray max (15)
	for i := range items {
		items[i] = Int(0)
	}
	got := mustPack(t, Arr(items))
	if got[0] != 0xdc {
		t.Fatalf("expected array16 header 0xdc for 16 elements, got 0x%02x", got[0])
	}

	pairs := make([]KV, 16)
	for i := range pairs {
		pairs[i] = KV{Key: Int(int64(i)), Val: Nil()}
	}
	got = mustPack(t, NewMap(pairs))
	if got[0] != 0xde {
		t.Fatalf("expected map16 header 0xde for 16 pairs, got 0x%02x", got[0])
	}
}
