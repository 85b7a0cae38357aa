package matroska

import "github.com/cespare/xxhash/v2"

// MatroskaView is a streaming, metadata-only parse of a Matroska stream: it
// fully decodes every top-level child except Cluster, whose body is left
// unread — only its byte offset, size, and a content fingerprint are
// recorded. This matches how most Matroska tooling actually works:
// metadata is cheap and wanted up front, cluster payloads are wanted lazily
// and in order. (Demuxer does not use the view: it decodes every Cluster
// of the Segment up front.)
type MatroskaView struct {
	Header  EBMLHeaderElem
	Segment SegmentView
}

// SegmentView is one Segment's decoded metadata plus its cluster index.
type SegmentView struct {
	SeekHead    *SeekHead
	Info        *Info
	Tracks      *Tracks
	Cues        *Cues
	Attachments *Attachments
	Chapters    *Chapters
	Tags        *Tags
	Clusters    []ClusterRef
}

// ClusterRef locates one Cluster without having decoded its body.
type ClusterRef struct {
	// Offset is the byte position of the Cluster's body, relative to the
	// start of the Reader the view was built from.
	Offset int64
	Size   uint64
	// Fingerprint is an xxHash64 digest of the first 64 bytes of the
	// cluster's child payloads taken in order, child headers excluded
	// (normally the Timestamp and the start of the first block), letting callers cheaply
	// tell two cluster regions apart without decoding either in full. It
	// is not a substitute for the CRC-32 element (see the crc package);
	// Matroska streams rarely carry one per cluster, this always does.
	Fingerprint uint64
}

// ViewOption configures NewMatroskaView.
type ViewOption func(*viewConfig)

type viewConfig struct {
	acceptUnknownSegmentSize bool
}

// WithAcceptUnknownSegmentSize lets NewMatroskaView parse a Segment written
// with Unknown size, ending it at the first header that cannot be read
// (normally EOF) instead of rejecting it with ErrBodySizeUnknown. A
// top-level id met inside such a Segment is skipped like any other unknown
// child rather than ending it, and a Cluster with Unknown size is still
// rejected with ErrBodySizeUnknown.
func WithAcceptUnknownSegmentSize() ViewOption {
	return func(c *viewConfig) { c.acceptUnknownSegmentSize = true }
}

// NewMatroskaView reads the EBML header and then one Segment's worth of
// top-level elements from r, streaming over Cluster bodies.
func NewMatroskaView(r Reader, opts ...ViewOption) (*MatroskaView, error) {
	cfg := viewConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &MatroskaView{}
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if h.ID != IDEBML {
		return nil, &UnexpectedIDError{Expected: IDEBML, Found: h.ID}
	}
	if err := ReadElement(h, r, &v.Header); err != nil {
		return nil, err
	}

	sh, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if sh.ID != IDSegment {
		return nil, &UnexpectedIDError{Expected: IDSegment, Found: sh.ID}
	}

	if sh.Size.IsKnown() {
		size, _ := sh.Size.Value()
		err = v.readSegmentKnown(r, size)
	} else if cfg.acceptUnknownSegmentSize {
		err = v.readSegmentUntilEOF(r)
	} else {
		err = ErrBodySizeUnknown
	}
	return v, err
}

// positionOf reports r's current byte offset, if it tracks one. A
// BlockingReader does; a LimitedReader (what readSegmentKnown hands
// recordCluster) reports the offset of the Reader it wraps. Any other
// Reader (e.g. a CoopReader) reports (0, false), so ClusterRef.Offset is 0
// for a view built over one.
func positionOf(r Reader) (int64, bool) {
	type positioner interface{ Position() int64 }
	if p, ok := r.(positioner); ok {
		return p.Position(), true
	}
	if l, ok := r.(*LimitedReader); ok {
		return positionOf(l.r)
	}
	return 0, false
}

func (v *MatroskaView) readSegmentKnown(r Reader, size uint64) error {
	body := Take(r, size)
	for body.Remaining() > 0 {
		h, err := ReadHeader(body)
		if err != nil {
			return err
		}
		if err := v.dispatchSegmentChild(body, h); err != nil {
			return err
		}
	}
	return nil
}

// readSegmentUntilEOF implements the EOF-terminated relaxation for an
// Unknown-size Segment: keep reading top-level children until the
// underlying reader is exhausted. Since there is no byte budget to check
// against, a short read on the next header is treated as the terminating
// EOF rather than an error.
func (v *MatroskaView) readSegmentUntilEOF(r Reader) error {
	for {
		h, err := ReadHeader(r)
		if err != nil {
			return nil // EOF (or any read failure) ends an unknown-size segment
		}
		if err := v.dispatchSegmentChild(r, h); err != nil {
			return err
		}
	}
}

func (v *MatroskaView) dispatchSegmentChild(r Reader, h Header) error {
	switch h.ID {
	case IDSeekHead:
		child := &SeekHead{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.SeekHead = child
	case IDInfo:
		child := &Info{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Info = child
	case IDTracks:
		child := &Tracks{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Tracks = child
	case IDCues:
		child := &Cues{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Cues = child
	case IDAttachments:
		child := &Attachments{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Attachments = child
	case IDChapters:
		child := &Chapters{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Chapters = child
	case IDTags:
		child := &Tags{}
		if err := ReadElement(h, r, child); err != nil {
			return err
		}
		v.Segment.Tags = child
	case IDCluster:
		return v.recordCluster(r, h)
	default:
		// Segment-level CRC-32/Void and any unknown id are skipped the same
		// way: spec.md's forward-compatible unknown-child handling applies
		// to master.go's loop, but a view walks the segment body itself
		// rather than going through decodeMasterChildren.
		size, err := h.Size.MustValue()
		if err != nil {
			return err
		}
		return r.Skip(int64(size))
	}
	return nil
}

// recordCluster reads only the first 64 bytes of the cluster's child
// payloads (normally its Timestamp and the start of its first block) to
// compute a fingerprint, then skips the rest of its declared body without
// decoding it.
func (v *MatroskaView) recordCluster(r Reader, h Header) error {
	size, err := h.Size.MustValue()
	if err != nil {
		return err
	}
	pos, _ := positionOf(r)

	body := Take(r, size)
	var fpInput []byte
	for body.Remaining() > 0 && len(fpInput) < 64 {
		ch, err := ReadHeader(body)
		if err != nil {
			return err
		}
		childSize, err := ch.Size.MustValue()
		if err != nil {
			return err
		}
		n := childSize
		if n > 64-uint64(len(fpInput)) {
			n = 64 - uint64(len(fpInput))
		}
		buf := make([]byte, n)
		if n > 0 {
			if err := body.ReadExact(buf); err != nil {
				return err
			}
		}
		fpInput = append(fpInput, buf...)
		if err := body.Skip(int64(childSize - n)); err != nil {
			return err
		}
	}
	if err := body.Skip(body.Remaining()); err != nil {
		return err
	}

	v.Segment.Clusters = append(v.Segment.Clusters, ClusterRef{
		Offset:      pos,
		Size:        size,
		Fingerprint: xxhash.Sum64(fpInput),
	})
	return nil
}
