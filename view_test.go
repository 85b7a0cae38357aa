package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildSampleStream(t *testing.T) []byte {
	t.Helper()
	header := &EBMLHeaderElem{DocType: "matroska", DocTypeVersion: u64p(4)}
	seg := &Segment{
		Info: &Info{TimestampScale: 1_000_000},
		Tracks: &Tracks{Entries: []*TrackEntry{{
			TrackNumber: 1, TrackUID: 1, TrackType: 1, CodecID: "V_TEST",
		}}},
		Clusters: []*Cluster{{
			Timestamp: 0,
			Entries: []ClusterEntry{
				{SimpleBlock: []byte{0x81, 0, 0, 0x80, 'a', 'b', 'c'}},
			},
		}},
	}

	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)
	require.NoError(t, WriteTo(w, header))
	require.NoError(t, WriteTo(w, seg))
	return buf.Bytes()
}

func TestMatroskaViewParsesMetadataAndSkipsClusters(t *testing.T) {
	data := buildSampleStream(t)
	v, err := NewMatroskaView(NewBlockingReader(bytes.NewReader(data)))
	require.NoError(t, err)

	require.Equal(t, "matroska", v.Header.DocType)
	require.NotNil(t, v.Segment.Info)
	require.Len(t, v.Segment.Tracks.Entries, 1)
	require.Len(t, v.Segment.Clusters, 1)
	require.Greater(t, v.Segment.Clusters[0].Size, uint64(0))
}

func TestMatroskaViewRejectsUnknownSizeByDefault(t *testing.T) {
	header := &EBMLHeaderElem{DocType: "matroska"}
	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)
	require.NoError(t, WriteTo(w, header))
	require.NoError(t, Header{ID: IDSegment, Size: UnknownSize()}.WriteTo(w))

	_, err := NewMatroskaView(NewBlockingReader(bytes.NewReader(buf.Bytes())))
	require.ErrorIs(t, err, ErrBodySizeUnknown)
}

func TestMatroskaViewAcceptsUnknownSizeWithOption(t *testing.T) {
	header := &EBMLHeaderElem{DocType: "matroska"}
	info := &Info{TimestampScale: 1_000_000}

	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)
	require.NoError(t, WriteTo(w, header))
	require.NoError(t, Header{ID: IDSegment, Size: UnknownSize()}.WriteTo(w))
	require.NoError(t, WriteTo(w, info))

	v, err := NewMatroskaView(NewBlockingReader(bytes.NewReader(buf.Bytes())), WithAcceptUnknownSegmentSize())
	require.NoError(t, err)
	require.NotNil(t, v.Segment.Info)
	require.Equal(t, uint64(1_000_000), v.Segment.Info.TimestampScale)
}
