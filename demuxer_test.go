package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemuxerReadsSimplePackets(t *testing.T) {
	data := buildSampleStream(t)
	d, err := NewDemuxer(bytes.NewReader(data))
	require.NoError(t, err)

	require.Len(t, d.Tracks(), 1)
	require.Equal(t, "V_TEST", d.Tracks()[0].CodecID)

	p, err := d.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, uint64(1), p.Track)
	require.Equal(t, []byte("abc"), p.Data)
	require.True(t, p.Keyframe)

	_, err = d.ReadPacket()
	require.ErrorIs(t, err, ErrNoMorePackets)
}

func TestSplitFixedLacing(t *testing.T) {
	// 3 frames of 2 bytes each.
	payload := append([]byte{2}, []byte("aabbcc")...)
	frames := splitFixedLacing(payload)
	require.Equal(t, [][]byte{[]byte("aa"), []byte("bb"), []byte("cc")}, frames)
}

func TestSplitXiphLacing(t *testing.T) {
	// 3 frames; sizes 2 and 300 (encoded as 0xFF,0x2D = 255+45=300) explicit,
	// remainder is the third frame.
	frame0 := []byte("ab")
	frame1 := bytes.Repeat([]byte{'x'}, 300)
	frame2 := []byte("zz")

	payload := []byte{2, 2} // frameCount-1=2, first size byte = 2
	payload = append(payload, 0xFF, 0x2D)
	payload = append(payload, frame0...)
	payload = append(payload, frame1...)
	payload = append(payload, frame2...)

	frames := splitXiphLacing(payload)
	require.Len(t, frames, 3)
	require.Equal(t, frame0, frames[0])
	require.Equal(t, frame1, frames[1])
	require.Equal(t, frame2, frames[2])
}

func TestSplitEBMLLacing(t *testing.T) {
	// 2 frames: first size 3 (VINT 0x83), remainder is second frame.
	payload := []byte{1, 0x83}
	payload = append(payload, []byte("xyz")...)
	payload = append(payload, []byte("remain")...)

	frames := splitEBMLLacing(payload)
	require.Len(t, frames, 2)
	require.Equal(t, []byte("xyz"), frames[0])
	require.Equal(t, []byte("remain"), frames[1])
}

func TestReadEBMLSignedVintBias(t *testing.T) {
	// width 1: bias = 2^6 - 1 = 63. Raw payload 63 (0xBF after marker)
	// decodes to delta 0.
	raw := []byte{0x80 | 63}
	delta, width, err := readEBMLSignedVint(raw)
	require.NoError(t, err)
	require.Equal(t, 1, width)
	require.Equal(t, int64(0), delta)
}
