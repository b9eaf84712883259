// Package packmsg is a MessagePack wire codec and compositional value
// mapper.
//
// At the core is Value, a closed tagged union representing any MessagePack
// value. Pack and Unpack convert between Value and the canonical binary
// wire format (https://msgpack.org); Unpack also accepts every
// non-canonical encoding the format allows, per the MessagePack spec.
//
// On top of Value sits the codec subpackage: Codec[T] values compose
// primitive, container, and record-builder combinators into a bidirectional
// mapping between a Go type and a Value, with decode failures reported as a
// structured, path-tracking error tree. FormatError renders that tree as a
// human-readable diagnostic such as:
//
//	at $.users[2].email: expected String, got Nil
//
// The package is purely functional: Value, Codec[T], and every combinator
// are immutable once built and safe to share across goroutines. There is no
// I/O, no background state, and no cancellation; callers own buffering and
// concatenation for anything resembling streaming.
package packmsg
