package matroska

import (
	"errors"
	"io"
)

// Packet is one decoded frame: a track, its time range, and its payload
// bytes, with any block lacing already expanded into one Packet per laced
// frame. This is the unit luispater-matroska-go's Demuxer/parser.go was
// building toward (its ReadPacket/Packet types are referenced by its own
// tests but never implemented); ReadPacket below is a working version
// built on this package's typed Segment/Cluster/Block decode instead of
// byte-slicing an io.Reader directly.
type Packet struct {
	Track     uint64
	StartTime int64 // raw timestamp ticks: Cluster.Timestamp + block-relative offset
	EndTime   int64 // StartTime + BlockDuration, or StartTime if unknown
	Data      []byte
	Keyframe  bool
}

// ErrNoMorePackets is returned by ReadPacket once every packet has been
// delivered.
var ErrNoMorePackets = errors.New("matroska: no more packets")

// Demuxer exposes a parsed Segment's tracks, metadata, and packets in
// stream order (the order blocks are stored, which is not necessarily
// presentation order). Unlike MatroskaView, it fully decodes every
// Cluster's block data up front; it is meant for moderate-size files read
// once, not huge files or live streams (see MatroskaView for the
// streaming, metadata-only alternative).
type Demuxer struct {
	header  EBMLHeaderElem
	segment Segment

	packets []Packet
	next    int
}

// NewDemuxer parses a complete Matroska stream from a seekable reader.
func NewDemuxer(r io.ReadSeeker) (*Demuxer, error) {
	return newDemuxer(NewBlockingReader(r))
}

// NewStreamingDemuxer parses a complete Matroska stream from a forward-only
// reader (e.g. a network pipe). It still materializes the whole stream
// before ReadPacket returns anything, the same as NewDemuxer; the
// distinction is only that it never assumes r supports Seek.
func NewStreamingDemuxer(r io.Reader) (*Demuxer, error) {
	return newDemuxer(NewBlockingReader(r))
}

func newDemuxer(br *BlockingReader) (*Demuxer, error) {
	d := &Demuxer{}

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	if h.ID != IDEBML {
		return nil, &UnexpectedIDError{Expected: IDEBML, Found: h.ID}
	}
	if err := ReadElement(h, br, &d.header); err != nil {
		return nil, err
	}

	sh, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	if sh.ID != IDSegment {
		return nil, &UnexpectedIDError{Expected: IDSegment, Found: sh.ID}
	}
	if err := ReadElement(sh, br, &d.segment); err != nil {
		return nil, err
	}

	d.packets = buildPackets(&d.segment)
	return d, nil
}

// buildPackets flattens every cluster's SimpleBlock/BlockGroup entries
// into a flat, arrival-ordered packet list, expanding lacing.
func buildPackets(s *Segment) []Packet {
	var out []Packet
	for _, cl := range s.Clusters {
		for _, entry := range cl.Entries {
			if entry.Group != nil {
				out = append(out, packetsFromBlock(cl.Timestamp, entry.Group.Block, entry.Group.BlockDuration, false)...)
				continue
			}
			out = append(out, packetsFromBlock(cl.Timestamp, entry.SimpleBlock, nil, true)...)
		}
	}
	return out
}

// packetsFromBlock parses one (Simple)Block payload into one Packet per
// laced frame. keyframeFromFlags controls whether the keyframe bit is
// read from the block's own flags byte (true SimpleBlock semantics) or
// left false (BlockGroup blocks carry no keyframe bit of their own — that
// information lives in ReferenceBlock, which this package exposes on
// BlockGroup directly rather than folding into Packet).
func packetsFromBlock(clusterTimestamp uint64, raw []byte, duration *uint64, keyframeFromFlags bool) []Packet {
	track, n, err := readTrackVint(raw)
	if err != nil || len(raw) < n+3 {
		return nil
	}
	rel := int16(raw[n])<<8 | int16(raw[n+1])
	flags := raw[n+2]
	payload := raw[n+3:]

	start := int64(clusterTimestamp) + int64(rel)
	end := start
	if duration != nil {
		end = start + int64(*duration)
	}
	keyframe := keyframeFromFlags && flags&0x80 != 0

	frames := splitLacedFrames(flags, payload)
	packets := make([]Packet, 0, len(frames))
	for _, f := range frames {
		packets = append(packets, Packet{
			Track:     track,
			StartTime: start,
			EndTime:   end,
			Data:      f,
			Keyframe:  keyframe,
		})
	}
	return packets
}

// readTrackVint decodes a Block's track number field: an EBML size-flavored
// VINT (marker bit stripped from the returned value).
func readTrackVint(data []byte) (value uint64, width int, err error) {
	if len(data) == 0 {
		return 0, 0, errors.New("matroska: empty block")
	}
	b := data[0]
	if b == 0 {
		return 0, 0, ErrVintFirstByteZero
	}
	width = 1
	mask := byte(0x80)
	for mask != 0 && b&mask == 0 {
		width++
		mask >>= 1
	}
	if width > 8 || len(data) < width {
		return 0, 0, ErrVintTooLong
	}
	value = uint64(b &^ mask)
	for i := 1; i < width; i++ {
		value = value<<8 | uint64(data[i])
	}
	return value, width, nil
}

// lacing flag values, per the Matroska block header: bits 1-2 of the
// flags byte, masked 0x06.
const (
	lacingNone  = 0x00
	lacingXiph  = 0x02
	lacingFixed = 0x04
	lacingEBML  = 0x06
)

// splitLacedFrames expands a block's payload into its constituent frames.
// Frame count and size bytes follow the flags byte and precede the first
// frame's data; with no lacing the whole payload is one frame.
func splitLacedFrames(flags byte, payload []byte) [][]byte {
	switch flags & 0x06 {
	case lacingNone:
		return [][]byte{payload}
	case lacingXiph:
		return splitXiphLacing(payload)
	case lacingFixed:
		return splitFixedLacing(payload)
	case lacingEBML:
		return splitEBMLLacing(payload)
	default:
		return [][]byte{payload}
	}
}

func splitFixedLacing(payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	count := int(payload[0]) + 1
	data := payload[1:]
	if count <= 0 || len(data)%count != 0 {
		return [][]byte{data}
	}
	frameSize := len(data) / count
	frames := make([][]byte, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, data[i*frameSize:(i+1)*frameSize])
	}
	return frames
}

func splitXiphLacing(payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	count := int(payload[0]) + 1
	pos := 1
	sizes := make([]int, 0, count-1)
	for i := 0; i < count-1; i++ {
		size := 0
		for pos < len(payload) && payload[pos] == 0xFF {
			size += 0xFF
			pos++
		}
		if pos >= len(payload) {
			return [][]byte{payload[1:]}
		}
		size += int(payload[pos])
		pos++
		sizes = append(sizes, size)
	}
	return framesFromSizes(payload[pos:], sizes)
}

func splitEBMLLacing(payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}
	count := int(payload[0]) + 1
	pos := 1
	sizes := make([]int, 0, count-1)

	firstSize, width, err := readTrackVint(payload[pos:])
	if err != nil {
		return [][]byte{payload[1:]}
	}
	pos += width
	prev := int64(firstSize)
	sizes = append(sizes, int(prev))

	for i := 1; i < count-1; i++ {
		delta, width, err := readEBMLSignedVint(payload[pos:])
		if err != nil {
			return framesFromSizes(payload[pos:], sizes)
		}
		pos += width
		prev += delta
		sizes = append(sizes, int(prev))
	}
	return framesFromSizes(payload[pos:], sizes)
}

// readEBMLSignedVint decodes an EBML lacing size delta: an unsigned VINT
// whose value is biased by 2^(7*width-1) - 1, per the Matroska
// specification's EBML lacing encoding.
func readEBMLSignedVint(data []byte) (int64, int, error) {
	raw, width, err := readTrackVint(data)
	if err != nil {
		return 0, 0, err
	}
	bias := int64(1)<<(uint(7*width)-1) - 1
	return int64(raw) - bias, width, nil
}

// framesFromSizes splits data into len(explicitSizes)+1 frames: the given
// sizes in order, then one final frame consuming whatever remains.
func framesFromSizes(data []byte, explicitSizes []int) [][]byte {
	frames := make([][]byte, 0, len(explicitSizes)+1)
	pos := 0
	for _, size := range explicitSizes {
		if pos+size > len(data) {
			return frames
		}
		frames = append(frames, data[pos:pos+size])
		pos += size
	}
	frames = append(frames, data[pos:])
	return frames
}

// ReadPacket returns the next packet in stream order, or
// ErrNoMorePackets once exhausted.
func (d *Demuxer) ReadPacket() (Packet, error) {
	if d.next >= len(d.packets) {
		return Packet{}, ErrNoMorePackets
	}
	p := d.packets[d.next]
	d.next++
	return p, nil
}

// Info returns the segment's information block, if present.
func (d *Demuxer) Info() *Info { return d.segment.Info }

// Tracks returns the segment's declared tracks, if present.
func (d *Demuxer) Tracks() []*TrackEntry {
	if d.segment.Tracks == nil {
		return nil
	}
	return d.segment.Tracks.Entries
}

// Cues returns the segment's seek index, if present.
func (d *Demuxer) Cues() *Cues { return d.segment.Cues }

// Attachments returns the segment's embedded files, if present.
func (d *Demuxer) Attachments() *Attachments { return d.segment.Attachments }

// Chapters returns the segment's chapter editions, if present.
func (d *Demuxer) Chapters() *Chapters { return d.segment.Chapters }

// Tags returns the segment's metadata tags, if present.
func (d *Demuxer) Tags() *Tags { return d.segment.Tags }
