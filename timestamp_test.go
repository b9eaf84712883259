package packmsg

import (
	"bytes"
	"errors"
	"testing"
)

func TestTimestampZeroIsTimestamp32(t *testing.T) {
	v := EncodeTimestamp(Timestamp{})
	b, err := Pack(v)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0xd6, 0xff, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(b, want) {
		t.Fatalf("pack(Timestamp{}) = % x, want % x", b, want)
	}
	if !IsTimestamp(v) {
		t.Fatalf("expected IsTimestamp true")
	}
}

func TestTimestampRoundTripAllLayouts(t *testing.T) {
	cases := []struct {
		name string
		ts   Timestamp
	}{
		{"zero", Timestamp{Seconds: 0, Nanoseconds: 0}},
		{"32-max-seconds", Timestamp{Seconds: 0xFFFFFFFF, Nanoseconds: 0}},
		{"64-with-nanos", Timestamp{Seconds: 1_600_000_000, Nanoseconds: 123_456_789}},
		{"64-max-seconds", Timestamp{Seconds: (1 << 34) - 1, Nanoseconds: 1}},
		{"96-negative-seconds", Timestamp{Seconds: -1, Nanoseconds: 500}},
		{"96-seconds-too-large-for-64", Timestamp{Seconds: 1 << 34, Nanoseconds: 0}},
	}
	for _, tc := range cases {
		v := EncodeTimestamp(tc.ts)
		got, err := DecodeTimestamp(v)
		if err != nil {
			t.Fatalf("%s: DecodeTimestamp: %v", tc.name, err)
		}
		if got != tc.ts {
			t.Fatalf("%s: round trip mismatch: got %+v, want %+v", tc.name, got, tc.ts)
		}
	}
}

func TestTimestampLayoutSelection(t *testing.T) {
	// nanoseconds != 0 forces at least Timestamp-64, even for small seconds.
	v := EncodeTimestamp(Timestamp{Seconds: 1, Nanoseconds: 1})
	ext, ok := v.AsExtension()
	if !ok {
		t.Fatalf("expected Extension")
	}
	if len(ext.Data) != 8 {
		t.Fatalf("expected Timestamp-64 (8 bytes), got %d", len(ext.Data))
	}

	// negative seconds forces Timestamp-96.
	v = EncodeTimestamp(Timestamp{Seconds: -5, Nanoseconds: 0})
	ext, _ = v.AsExtension()
	if len(ext.Data) != 12 {
		t.Fatalf("expected Timestamp-96 (12 bytes), got %d", len(ext.Data))
	}
}

func TestTimestampFromUnixMillis(t *testing.T) {
	ts := FromUnixMillis(1500)
	if ts.Seconds != 1 || ts.Nanoseconds != 500_000_000 {
		t.Fatalf("got %+v", ts)
	}
	if got := ts.ToUnixMillis(); got != 1500 {
		t.Fatalf("ToUnixMillis: got %d, want 1500", got)
	}

	neg := FromUnixMillis(-1500)
	if neg.Seconds != -2 || neg.Nanoseconds != 500_000_000 {
		t.Fatalf("got %+v", neg)
	}
}

func TestDecodeTimestampWrongExtensionType(t *testing.T) {
	v := Ext(3, []byte{0, 0, 0, 0})
	_, err := DecodeTimestamp(v)
	var em ErrExtensionTypeMismatch
	if !errors.As(err, &em) {
		t.Fatalf("expected ErrExtensionTypeMismatch, got %v", err)
	}
}
