package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeafRoundTrip(t *testing.T) {
	orig := newUintLeaf(IDTrackNumber, 7)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(NewBlockingWriter(&buf), orig))

	var got UintLeaf
	require.NoError(t, ReadFrom(NewBlockingReader(bytes.NewReader(buf.Bytes())), &got))
	require.Equal(t, uint64(7), got.Value)
	require.Equal(t, IDTrackNumber, got.ElementID())
}

func TestReadElementRejectsIDMismatch(t *testing.T) {
	h := Header{ID: IDTrackUID, Size: KnownSize(1)}
	var target UintLeaf
	target = newUintLeaf(IDTrackNumber, 0)

	var buf bytes.Buffer
	require.NoError(t, NewBlockingWriter(&buf).WriteAll([]byte{1}))

	err := ReadElement(h, NewBlockingReader(bytes.NewReader(buf.Bytes())), &target)
	require.Error(t, err)
	var mismatch *UnexpectedIDError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, IDTrackNumber, mismatch.Expected)
	require.Equal(t, IDTrackUID, mismatch.Found)
}

func TestReadElementRejectsUnknownSize(t *testing.T) {
	h := Header{ID: IDTrackNumber, Size: UnknownSize()}
	var target UintLeaf
	err := ReadElement(h, NewBlockingReader(bytes.NewReader(nil)), &target)
	require.ErrorIs(t, err, ErrBodySizeUnknown)
}

func TestCountingWriterTracksExactBytes(t *testing.T) {
	leaf := newStringLeaf(IDTitle, "hello")
	cw := NewCountingWriter(NewBlockingWriter(&bytes.Buffer{}))
	require.NoError(t, WriteTo(cw, leaf))
	require.Equal(t, leaf.BodySize()+headerEncodedSize(leaf.ElementID(), leaf.BodySize()), cw.Count())
}

func TestLimitedReaderEnforcesBudget(t *testing.T) {
	lr := Take(NewBlockingReader(bytes.NewReader([]byte{1, 2, 3})), 2)
	buf := make([]byte, 3)
	err := lr.ReadExact(buf)
	require.Error(t, err)
}
