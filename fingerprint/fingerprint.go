// Package fingerprint computes a stable content hash of a packmsg.Value,
// for use as a cache key or a cheap equality probe across process
// boundaries. Two Values that differ only in Map key order do NOT
// fingerprint the same, since Map order is part of Value identity. Apart
// from Floats, Equal Values always fingerprint the same. Equal compares
// Floats numerically while the fingerprint hashes their bit patterns, so
// 0.0 and -0.0 are Equal but fingerprint differently, and NaN fingerprints
// the same as itself although it is not Equal to itself.
package fingerprint

import (
	"github.com/cespare/xxhash/v2"
	mp "github.com/unkn0wn-root/packmsg"
)

// Fingerprint packs v canonically and hashes the resulting bytes with
// xxhash. The hash traded off here is sha256's in the pack this package
// inherits the pattern from: collision resistance isn't the goal, speed on
// hot cache-key paths is.
func Fingerprint(v mp.Value) (uint64, error) {
	b, err := mp.Pack(v)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(b), nil
}

// Of is Fingerprint with panics instead of an error return, for call sites
// that have already validated v encodes cleanly (e.g. Values built purely
// from in-process constructors, never from untrusted decode).
func Of(v mp.Value) uint64 {
	h, err := Fingerprint(v)
	if err != nil {
		panic("fingerprint: " + err.Error())
	}
	return h
}
