package matroska

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUint(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 256, 1 << 32, ^uint64(0)} {
		enc := encodeUint(v)
		got, err := decodeUint(enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	require.Empty(t, encodeUint(0))
}

func TestEncodeDecodeInt(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 300, -129, 1 << 40, -(1 << 40)} {
		enc := encodeInt(v)
		got, err := decodeInt(enc)
		require.NoError(t, err, "value %d", v)
		require.Equal(t, v, got, "value %d roundtrip via %x", v, enc)
	}
	require.Empty(t, encodeInt(0))
	require.Len(t, encodeInt(-1), 1)
	require.Len(t, encodeInt(-129), 2)
}

func TestEncodeDecodeFloat(t *testing.T) {
	for _, width := range []int{4, 8} {
		enc := encodeFloat(3.5, width)
		got, err := decodeFloat(enc)
		require.NoError(t, err)
		require.InDelta(t, 3.5, got, 0.0001)
	}
	got, err := decodeFloat(nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestDecodeFloatRejectsBadWidth(t *testing.T) {
	_, err := decodeFloat([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUTF8StringTrimsTrailingNUL(t *testing.T) {
	got, err := decodeUTF8String([]byte("hello\x00\x00"))
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

func TestUTF8StringRejectsInvalid(t *testing.T) {
	_, err := decodeUTF8String([]byte{0xFF, 0xFE})
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestASCIIStringRejectsHighBit(t *testing.T) {
	_, err := decodeASCIIString([]byte{0x80})
	require.Error(t, err)
}

func TestDateRoundTrip(t *testing.T) {
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	v := TimeToDate(now)
	enc := encodeDate(v)
	require.Len(t, enc, 8)

	got, err := decodeDate(enc)
	require.NoError(t, err)
	require.Equal(t, v, got)
	require.True(t, DateToTime(got).Equal(now))
}

func TestDecodeDateRejectsShortBuffer(t *testing.T) {
	_, err := decodeDate([]byte{1, 2, 3})
	require.Error(t, err)
}
