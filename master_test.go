package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEBMLHeaderRoundTrip(t *testing.T) {
	orig := &EBMLHeaderElem{
		Version:       u64p(1),
		ReadVersion:   u64p(1),
		MaxIDLength:   u64p(4),
		MaxSizeLength: u64p(8),
		DocType:       "matroska",
		DocTypeVersion: u64p(4),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(NewBlockingWriter(&buf), orig))

	var got EBMLHeaderElem
	require.NoError(t, ReadFrom(NewBlockingReader(bytes.NewReader(buf.Bytes())), &got))
	require.Equal(t, "matroska", got.DocType)
	require.Equal(t, uint64(4), *got.DocTypeVersion)
	require.Nil(t, got.DocTypeReadVersion)
}

func TestEBMLHeaderRequiresDocType(t *testing.T) {
	var h EBMLHeaderElem
	err := h.ReadBody(NewBlockingReader(bytes.NewReader(nil)), KnownSize(0))
	require.Error(t, err)
	var missing *MissingChildError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, IDDocType, missing.Child)
}

func TestMasterSkipsUnknownChildren(t *testing.T) {
	// Encode a SeekHead with one Seek child, then prepend an unknown id
	// the decoder has never heard of with a 3-byte body. Decoding must
	// skip it and still recover the Seek child that follows.
	unknown := Header{ID: 0xEF, Size: KnownSize(3)}
	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)
	require.NoError(t, unknown.WriteTo(w))
	require.NoError(t, w.WriteAll([]byte{9, 9, 9}))

	seek := &Seek{SeekID: []byte{1, 2, 3, 4}, SeekPosition: 42}
	require.NoError(t, WriteTo(w, seek))

	sh := &SeekHead{}
	err := sh.ReadBody(NewBlockingReader(bytes.NewReader(buf.Bytes())), KnownSize(uint64(buf.Len())))
	require.NoError(t, err)
	require.Len(t, sh.Entries, 1)
	require.Equal(t, uint64(42), sh.Entries[0].SeekPosition)
}

func TestMasterCarriesCrc32AndVoidVerbatim(t *testing.T) {
	crcChild := Header{ID: IDCRC32, Size: KnownSize(4)}
	voidChild := Header{ID: IDVoid, Size: KnownSize(2)}

	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)
	require.NoError(t, crcChild.WriteTo(w))
	require.NoError(t, w.WriteAll([]byte{0xAA, 0xBB, 0xCC, 0xDD}))
	require.NoError(t, voidChild.WriteTo(w))
	require.NoError(t, w.WriteAll([]byte{0, 0}))

	seek := &Seek{SeekID: []byte{1}, SeekPosition: 1}
	require.NoError(t, WriteTo(w, seek))

	u, err := decodeMasterChildren(IDSeekHead, NewBlockingReader(bytes.NewReader(buf.Bytes())), KnownSize(uint64(buf.Len())),
		func(h Header, body *LimitedReader) (bool, error) {
			if h.ID != IDSeek {
				return false, nil
			}
			child := &Seek{}
			if err := ReadElement(h, body, child); err != nil {
				return false, err
			}
			return true, nil
		})
	require.NoError(t, err)
	require.True(t, u.crc32Set)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xDD}, u.crc32)
	require.Len(t, u.void, 1)
}

func TestSegmentRoundTripWithTrackAndCluster(t *testing.T) {
	seg := &Segment{
		Info: &Info{TimestampScale: 1_000_000, Title: strp("demo")},
		Tracks: &Tracks{Entries: []*TrackEntry{{
			TrackNumber: 1,
			TrackUID:    100,
			TrackType:   1,
			CodecID:     "V_TEST",
			Video:       &Video{PixelWidth: 640, PixelHeight: 480},
		}}},
		Clusters: []*Cluster{{
			Timestamp: 0,
			Entries: []ClusterEntry{
				{SimpleBlock: []byte{0x81, 0, 0, 0x80, 'f', 'r', 'a', 'm', 'e'}},
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTo(NewBlockingWriter(&buf), seg))

	var got Segment
	require.NoError(t, ReadFrom(NewBlockingReader(bytes.NewReader(buf.Bytes())), &got))

	require.Equal(t, "demo", *got.Info.Title)
	require.Len(t, got.Tracks.Entries, 1)
	require.Equal(t, "V_TEST", got.Tracks.Entries[0].CodecID)
	require.Equal(t, uint64(640), got.Tracks.Entries[0].Video.PixelWidth)
	require.Len(t, got.Clusters, 1)
	require.Len(t, got.Clusters[0].Entries, 1)
	require.Equal(t, []byte("frame"), got.Clusters[0].Entries[0].SimpleBlock[4:])
}
