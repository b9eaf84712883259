package packmsg

import (
	"time"

	"github.com/unkn0wn-root/packmsg/internal/wire"
)

// timestampTypeCode is the MessagePack-reserved extension type for
// Timestamp values.
const timestampTypeCode int8 = -1

// Timestamp is a MessagePack timestamp: a signed Unix second count plus a
// nanosecond fraction in [0, 999_999_999].
type Timestamp struct {
	Seconds     int64
	Nanoseconds uint32
}

// FromUnixSeconds constructs a Timestamp with zero nanoseconds.
func FromUnixSeconds(s int64) Timestamp { return Timestamp{Seconds: s} }

// FromUnixMillis constructs a Timestamp from a Unix millisecond count.
func FromUnixMillis(ms int64) Timestamp {
	sec := ms / 1000
	rem := ms % 1000
	if rem < 0 {
		rem += 1000
		sec--
	}
	return Timestamp{Seconds: sec, Nanoseconds: uint32(rem) * 1_000_000}
}

// ToUnixSeconds truncates the nanosecond fraction and returns the Unix
// second count.
func (t Timestamp) ToUnixSeconds() int64 { return t.Seconds }

// ToUnixMillis returns the Unix millisecond count, rounding the nanosecond
// fraction down.
func (t Timestamp) ToUnixMillis() int64 {
	return t.Seconds*1000 + int64(t.Nanoseconds)/1_000_000
}

// Time converts t to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.Seconds, int64(t.Nanoseconds)).UTC()
}

// TimestampFromTime builds a Timestamp from a time.Time.
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{Seconds: t.Unix(), Nanoseconds: uint32(t.Nanosecond())}
}

// IsTimestamp reports whether v is an Extension carrying the Timestamp
// type code (regardless of whether its payload length is a valid layout).
func IsTimestamp(v Value) bool {
	ext, ok := v.AsExtension()
	return ok && ext.Type == timestampTypeCode
}

// EncodeTimestamp packs t as the smallest Timestamp wire layout that can
// represent it exactly: Timestamp-32 (4 bytes) when nanoseconds is
// zero and seconds fits unsigned 32-bit; Timestamp-64 (8 bytes) when
// seconds fits unsigned 34-bit; otherwise Timestamp-96 (12 bytes).
func EncodeTimestamp(t Timestamp) Value {
	switch {
	case t.Nanoseconds == 0 && t.Seconds >= 0 && t.Seconds <= 0xFFFFFFFF:
		w := wire.NewWriter(4)
		w.WriteUint32(uint32(t.Seconds))
		return Ext(timestampTypeCode, w.Bytes())
	case t.Seconds >= 0 && t.Seconds < (1<<34):
		hi := (uint64(t.Nanoseconds) << 2) | (uint64(t.Seconds) >> 32)
		lo := uint32(t.Seconds & 0xFFFFFFFF)
		w := wire.NewWriter(8)
		w.WriteUint32(uint32(hi))
		w.WriteUint32(lo)
		return Ext(timestampTypeCode, w.Bytes())
	default:
		w := wire.NewWriter(12)
		w.WriteUint32(t.Nanoseconds)
		w.WriteUint64(uint64(t.Seconds))
		return Ext(timestampTypeCode, w.Bytes())
	}
}

// DecodeTimestamp unpacks a Timestamp from v, which must be an Extension
// with the Timestamp type code and a payload of length 4, 8, or 12.
func DecodeTimestamp(v Value) (Timestamp, error) {
	ext, ok := v.AsExtension()
	if !ok {
		return Timestamp{}, ErrTypeMismatch{Expected: "Extension(-1) (Timestamp)", Got: v.Kind().String()}
	}
	if ext.Type != timestampTypeCode {
		return Timestamp{}, ErrExtensionTypeMismatch{Expected: timestampTypeCode, Got: ext.Type}
	}
	r := wire.NewReader(ext.Data)
	switch len(ext.Data) {
	case 4:
		secs, _ := r.ReadUint32()
		return Timestamp{Seconds: int64(secs)}, nil
	case 8:
		hi, _ := r.ReadUint32()
		lo, _ := r.ReadUint32()
		nanos := hi >> 2
		secs := (uint64(hi&0x3) << 32) | uint64(lo)
		return Timestamp{Seconds: int64(secs), Nanoseconds: nanos}, nil
	case 12:
		nanos, _ := r.ReadUint32()
		secs, _ := r.ReadInt64()
		return Timestamp{Seconds: secs, Nanoseconds: nanos}, nil
	default:
		return Timestamp{}, ErrOutOfRange{Msg: "invalid timestamp payload length"}
	}
}
