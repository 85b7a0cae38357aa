// Package matroska implements a parser and writer for Matroska/WebM media
// container files, built on a generic EBML (Extensible Binary Meta Language)
// element codec.
//
// EBML is a self-describing binary format: every datum is a triple of
// variable-length identifier, variable-length size, and payload. This
// package translates between that byte stream and a strongly-typed
// in-memory representation of the elements defined by the Matroska
// specification, in both directions, over either a blocking or a
// cooperative I/O driver.
//
// The entry points are Header (the generic id+size framing), the Element
// protocol (ElementID/BodySize/ReadBody/WriteBody, satisfied by every leaf
// and master element type), MatroskaView (a streaming metadata-only
// parser), and Demuxer (a packet-level reader that decodes the whole
// Segment, Clusters included).
//
// Example usage:
//
//	file, err := os.Open("video.mkv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	view, err := matroska.NewMatroskaView(matroska.NewBlockingReader(file))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(*view.Segment.Info.Title)
package matroska

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; the structured error
// types below carry additional context and are matched with errors.As.
var (
	// ErrVintFirstByteZero is returned when a VINT's first byte is 0x00,
	// which carries no length marker and is always malformed.
	ErrVintFirstByteZero = errors.New("matroska: vint first byte is zero")

	// ErrVintTooLong is returned when a VINT's length marker implies a
	// width greater than the format allows (8 bytes for sizes, 4 for ids).
	ErrVintTooLong = errors.New("matroska: vint width exceeds maximum")

	// ErrBodySizeUnknown is returned when an API that requires a concrete
	// body size is handed a header whose size is Unknown.
	ErrBodySizeUnknown = errors.New("matroska: element body size is unknown")

	// ErrInvalidUTF8 is returned when a UTF-8 string leaf's bytes are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("matroska: invalid utf-8 in string element")
)

// UnexpectedIDError is returned by ReadFrom/ReadElement when the header's
// id does not match the element type being decoded into.
type UnexpectedIDError struct {
	Expected ID
	Found    ID
}

func (e *UnexpectedIDError) Error() string {
	return fmt.Sprintf("matroska: unexpected element id: expected %s, found %s", e.Expected, e.Found)
}

// MissingChildError is returned when a master element's required child
// slot was never filled by the time its body was exhausted.
type MissingChildError struct {
	Parent ID
	Child  ID
}

func (e *MissingChildError) Error() string {
	return fmt.Sprintf("matroska: master %s missing required child %s", e.Parent, e.Child)
}

// DuplicateChildError is returned when a universal Crc32 appears more than
// once in a master's body. Other non-repeated children are not checked for
// duplicates: a later occurrence overwrites the earlier one.
type DuplicateChildError struct {
	Parent ID
	Child  ID
}

func (e *DuplicateChildError) Error() string {
	return fmt.Sprintf("matroska: master %s has duplicate child %s", e.Parent, e.Child)
}

// InvalidSizeError is returned when a leaf's body size is illegal for its
// type (e.g. a float body that isn't 0, 4, or 8 bytes).
type InvalidSizeError struct {
	Context string
	Size    uint64
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("matroska: invalid size %d for %s", e.Size, e.Context)
}

// InvalidDataError is a catch-all for schema violations that don't fit the
// more specific error types above.
type InvalidDataError struct {
	Context string
	Reason  string
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("matroska: invalid data in %s: %s", e.Context, e.Reason)
}
