package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeVintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 126, 127, 128, 16383, 16384, maxKnownSize}
	for _, v := range cases {
		var buf bytes.Buffer
		require.NoError(t, writeSizeVint(NewBlockingWriter(&buf), v))

		got, err := readSizeVint(NewBlockingReader(bytes.NewReader(buf.Bytes())))
		require.NoError(t, err)
		require.True(t, got.IsKnown())
		gotVal, _ := got.Value()
		require.Equal(t, v, gotVal)
	}
}

func TestSizeVintUnknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeUnknownSizeVint(NewBlockingWriter(&buf)))
	require.Equal(t, []byte{0xFF}, buf.Bytes())

	got, err := readSizeVint(NewBlockingReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.False(t, got.IsKnown())
}

func TestSizeVintAllOnesAnyWidth(t *testing.T) {
	// A 2-byte all-ones-payload VINT (0x7F 0xFF) also means Unknown, not a
	// large known size, regardless of the width chosen to encode it.
	data := []byte{0x7F, 0xFF}
	got, err := readSizeVint(NewBlockingReader(bytes.NewReader(data)))
	require.NoError(t, err)
	require.False(t, got.IsKnown())
}

func TestIDVintRoundTrip(t *testing.T) {
	ids := []ID{IDEBML, IDSegment, IDCRC32, IDVoid, IDSimpleBlock}
	for _, id := range ids {
		var buf bytes.Buffer
		require.NoError(t, writeIDVint(NewBlockingWriter(&buf), id))

		got, err := readIDVint(NewBlockingReader(bytes.NewReader(buf.Bytes())))
		require.NoError(t, err)
		require.Equal(t, id, got)
	}
}

func TestReadVintRejectsFirstByteZero(t *testing.T) {
	_, _, err := readVintRaw(NewBlockingReader(bytes.NewReader([]byte{0x00, 0x01})), false)
	require.ErrorIs(t, err, ErrVintFirstByteZero)
}

func TestReadIDVintRejectsWiderThanFour(t *testing.T) {
	// A 5-byte-wide marker (0x08) is legal for a size VINT but must be
	// rejected for an ID VINT, whose maximum width is 4.
	data := []byte{0x08, 0, 0, 0, 0}
	_, err := readIDVint(NewBlockingReader(bytes.NewReader(data)))
	require.ErrorIs(t, err, ErrVintTooLong)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{ID: IDSegment, Size: KnownSize(12345)}
	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(NewBlockingWriter(&buf)))

	got, err := ReadHeader(NewBlockingReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderRoundTripUnknownSize(t *testing.T) {
	h := Header{ID: IDSegment, Size: UnknownSize()}
	var buf bytes.Buffer
	require.NoError(t, h.WriteTo(NewBlockingWriter(&buf)))

	got, err := ReadHeader(NewBlockingReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	require.False(t, got.Size.IsKnown())
	require.Equal(t, IDSegment, got.ID)
}
