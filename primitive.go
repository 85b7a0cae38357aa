package matroska

import (
	"encoding/binary"
	"math"
	"time"
	"unicode/utf8"
)

// matroskaEpoch is the reference instant Matroska Date elements count
// nanoseconds from, per the Matroska specification.
var matroskaEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// encodeUint returns the shortest big-endian byte-encoding of v (0..8
// bytes; 0 encodes as a zero-length body, per spec.md §4.5).
func encodeUint(v uint64) []byte {
	if v == 0 {
		return nil
	}
	n := 8
	for n > 1 && v>>(8*(n-1)) == 0 {
		n--
	}
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}

// decodeUint interprets data (0..8 bytes) as a big-endian unsigned
// integer; an empty slice decodes to 0.
func decodeUint(data []byte) (uint64, error) {
	if len(data) > 8 {
		return 0, &InvalidSizeError{Context: "unsigned integer element", Size: uint64(len(data))}
	}
	var v uint64
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// encodeInt returns the shortest two's-complement big-endian encoding of v
// that preserves its sign (0..8 bytes; 0 encodes as a zero-length body).
func encodeInt(v int64) []byte {
	if v == 0 {
		return nil
	}
	n := 8
	for n > 1 {
		// Shrinking is safe while the next-narrower width still
		// sign-extends back to v.
		shifted := v >> (8*uint(n-1) - 1)
		if shifted != 0 && shifted != -1 {
			break
		}
		n--
	}
	buf := make([]byte, n)
	uv := uint64(v)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(uv)
		uv >>= 8
	}
	return buf
}

// decodeInt interprets data (0..8 bytes) as a two's-complement big-endian
// signed integer, sign-extending from its actual width.
func decodeInt(data []byte) (int64, error) {
	if len(data) > 8 {
		return 0, &InvalidSizeError{Context: "signed integer element", Size: uint64(len(data))}
	}
	if len(data) == 0 {
		return 0, nil
	}
	negative := data[0]&0x80 != 0
	var v uint64
	if negative {
		v = ^uint64(0)
	}
	for _, b := range data {
		v = v<<8 | uint64(b)
	}
	return int64(v), nil
}

// encodeFloat returns the IEEE 754 big-endian encoding of v at the given
// width (4 or 8 bytes). A zero value MAY be encoded as a zero-length body;
// callers that want the canonical minimal encoding should check v == 0
// themselves (FloatLeaf.WriteBody does).
func encodeFloat(v float64, width int) []byte {
	buf := make([]byte, width)
	switch width {
	case 4:
		binary.BigEndian.PutUint32(buf, math.Float32bits(float32(v)))
	case 8:
		binary.BigEndian.PutUint64(buf, math.Float64bits(v))
	}
	return buf
}

// decodeFloat interprets data as an IEEE 754 big-endian float. Body size
// must be 0, 4, or 8 bytes; 0 decodes to 0.0.
func decodeFloat(data []byte) (float64, error) {
	switch len(data) {
	case 0:
		return 0, nil
	case 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(data))), nil
	case 8:
		return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
	default:
		return 0, &InvalidSizeError{Context: "float element", Size: uint64(len(data))}
	}
}

// encodeString returns s's raw UTF-8 bytes; no trailing NUL is added
// (writers are free to pad strings themselves when room must be reserved,
// but the canonical encoding this package produces never does).
func encodeString(s string) []byte { return []byte(s) }

// decodeUTF8String strips trailing NUL padding and validates the result is
// well-formed UTF-8.
func decodeUTF8String(data []byte) (string, error) {
	data = trimTrailingNUL(data)
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// decodeASCIIString strips trailing NUL padding and validates the result
// is 7-bit clean.
func decodeASCIIString(data []byte) (string, error) {
	data = trimTrailingNUL(data)
	for _, b := range data {
		if b > 0x7F {
			return "", &InvalidDataError{Context: "ascii string element", Reason: "byte >= 0x80"}
		}
	}
	return string(data), nil
}

func trimTrailingNUL(data []byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return data[:end]
}

// encodeDate returns v (nanoseconds since the Matroska epoch) as a signed
// 8-byte big-endian integer; the date primitive has no shortened form.
func encodeDate(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

// decodeDate requires exactly 8 bytes, per spec.md's Date encoding rule.
func decodeDate(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, &InvalidSizeError{Context: "date element", Size: uint64(len(data))}
	}
	return int64(binary.BigEndian.Uint64(data)), nil
}

// DateToTime converts a Matroska date value (nanoseconds since the
// Matroska epoch) to a time.Time.
func DateToTime(nsSinceEpoch int64) time.Time {
	return matroskaEpoch.Add(time.Duration(nsSinceEpoch))
}

// TimeToDate converts a time.Time to a Matroska date value.
func TimeToDate(t time.Time) int64 {
	return int64(t.Sub(matroskaEpoch))
}
