package fingerprint

import (
	"testing"

	mp "github.com/unkn0wn-root/packmsg"
)

func TestFingerprintStableAcrossEqualValues(t *testing.T) {
	a := mp.NewMap([]mp.KV{{Key: mp.Str("x"), Val: mp.Int(1)}})
	b := mp.NewMap([]mp.KV{{Key: mp.Str("x"), Val: mp.Int(1)}})

	fa, err := Fingerprint(a)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := Fingerprint(b)
	if err != nil {
		t.Fatal(err)
	}
	if fa != fb {
		t.Fatalf("expected equal fingerprints for equal values, got %d != %d", fa, fb)
	}
}

func TestFingerprintDiffersOnKeyOrder(t *testing.T) {
	a := mp.NewMap([]mp.KV{{Key: mp.Str("x"), Val: mp.Int(1)}, {Key: mp.Str("y"), Val: mp.Int(2)}})
	b := mp.NewMap([]mp.KV{{Key: mp.Str("y"), Val: mp.Int(2)}, {Key: mp.Str("x"), Val: mp.Int(1)}})

	fa, _ := Fingerprint(a)
	fb, _ := Fingerprint(b)
	if fa == fb {
		t.Fatalf("expected different fingerprints for different key order")
	}
}

func TestFingerprintDiffersOnContent(t *testing.T) {
	fa, _ := Fingerprint(mp.Int(1))
	fb, _ := Fingerprint(mp.Int(2))
	if fa == fb {
		t.Fatalf("expected different fingerprints for different values")
	}
}

func TestOfMatchesFingerprint(t *testing.T) {
	v := mp.Str("hello")
	want, err := Fingerprint(v)
	if err != nil {
		t.Fatal(err)
	}
	if got := Of(v); got != want {
		t.Fatalf("Of = %d, want %d", got, want)
	}
}
