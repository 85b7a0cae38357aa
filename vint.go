package matroska

import "fmt"

// ID identifies an EBML element type. Unlike a size VINT, an ID VINT's
// marker bit is part of the value, so two IDs are compared (and hashed,
// and printed) as their raw on-wire byte sequence reinterpreted as a
// big-endian integer — not as the "payload" integer a size VINT decodes
// to. IDs are at most 4 bytes wide.
type ID uint32

// String renders the ID the way the Matroska specification and most
// tooling prints element ids: as an unpadded hex constant (0xBF,
// 0x1A45DFA3).
func (id ID) String() string {
	return fmt.Sprintf("0x%X", uint32(id))
}

// width returns the number of on-wire bytes id occupies. Matroska element
// id constants are defined with their marker bit already set at the
// correct width, so the smallest byte count that can hold the value is
// exactly the wire width.
func (id ID) width() int {
	for w := 1; w <= 4; w++ {
		if uint32(id) < uint32(1)<<(8*uint(w)) {
			return w
		}
	}
	return 4
}

// maxKnownSize is the largest size a size VINT can legally encode: 2^56 - 2.
// 2^56 - 1 (all payload bits one) is reserved for Unknown.
const maxKnownSize = (uint64(1) << 56) - 2

// writeIDVint writes id's canonical on-wire bytes to w.
func writeIDVint(w Writer, id ID) error {
	n := id.width()
	buf := make([]byte, n)
	v := uint32(id)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return w.WriteAll(buf)
}

// readIDVint reads an element ID. Per spec.md §4.1, IDs wider than 4 bytes
// are rejected even though the general VINT width ceiling is 8.
func readIDVint(r Reader) (ID, error) {
	v, _, err := readVintRaw(r, true)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// BodySize is an element header's size field: either a known byte count or
// the EBML "unknown size" sentinel (used for streamed Segments/Clusters).
type BodySize struct {
	known bool
	value uint64
}

// KnownSize constructs a BodySize carrying a concrete byte count.
func KnownSize(v uint64) BodySize { return BodySize{known: true, value: v} }

// UnknownSize is the BodySize value meaning "extends to EOF or the next
// sibling/ancestor", i.e. an all-ones size VINT payload.
func UnknownSize() BodySize { return BodySize{known: false} }

// IsKnown reports whether s carries a concrete size.
func (s BodySize) IsKnown() bool { return s.known }

// Value returns s's byte count and true, or (0, false) if s is Unknown.
func (s BodySize) Value() (uint64, bool) { return s.value, s.known }

// MustValue returns s's byte count, or ErrBodySizeUnknown if s is Unknown.
func (s BodySize) MustValue() (uint64, error) {
	if !s.known {
		return 0, ErrBodySizeUnknown
	}
	return s.value, nil
}

func (s BodySize) String() string {
	if !s.known {
		return "unknown"
	}
	return fmt.Sprintf("%d", s.value)
}

// sizeWidth returns the minimal VINT width (1..8) that can encode v as a
// known size. Widths are chosen so the all-ones payload (Unknown) stays
// reserved, matching spec.md §4.1's strict-inequality rule.
func sizeWidth(v uint64) int {
	for w := 1; w <= 8; w++ {
		if v < (uint64(1)<<(7*uint(w)))-1 {
			return w
		}
	}
	return 8
}

// writeSizeVint writes v as a minimal-width known size VINT.
func writeSizeVint(w Writer, v uint64) error {
	width := sizeWidth(v)
	return writeSizeVintWidth(w, v, width)
}

// writeSizeVintWidth writes v as a size VINT padded to an explicit width,
// for the rare "reserve space for later rewriting" use case noted in
// spec.md §4.1. width must be large enough to hold v.
func writeSizeVintWidth(w Writer, v uint64, width int) error {
	buf := make([]byte, width)
	marker := byte(1) << uint(8-width)
	top := v >> uint(8*(width-1))
	buf[0] = marker | byte(top)
	rem := v
	for i := width - 1; i >= 1; i-- {
		buf[i] = byte(rem)
		rem >>= 8
	}
	return w.WriteAll(buf)
}

// writeUnknownSizeVint writes the canonical single-byte Unknown size VINT.
func writeUnknownSizeVint(w Writer) error {
	return w.WriteAll([]byte{0xFF})
}

// readSizeVint reads a size VINT, returning Unknown if its payload bits are
// all ones regardless of which width encoded it.
func readSizeVint(r Reader) (BodySize, error) {
	v, allOnes, err := readVintRaw(r, false)
	if err != nil {
		return BodySize{}, err
	}
	if allOnes {
		return UnknownSize(), nil
	}
	return KnownSize(v), nil
}

// readVintRaw reads one VINT (size or id flavor) and returns its value, a
// flag reporting whether every payload bit was set (the Unknown sentinel
// for sizes), and an error.
//
// keepMarker selects id-VINT semantics (marker bit retained in the
// returned value, max width 4) versus size-VINT semantics (marker bit
// stripped, max width 8).
func readVintRaw(r Reader, keepMarker bool) (uint64, bool, error) {
	var first [1]byte
	if err := r.ReadExact(first[:]); err != nil {
		return 0, false, err
	}
	b := first[0]
	if b == 0 {
		return 0, false, ErrVintFirstByteZero
	}

	width := 1
	mask := byte(0x80)
	for mask != 0 && b&mask == 0 {
		width++
		mask >>= 1
	}

	maxWidth := 8
	if keepMarker {
		maxWidth = 4
	}
	if width > maxWidth {
		return 0, false, ErrVintTooLong
	}

	rest := make([]byte, width-1)
	if width > 1 {
		if err := r.ReadExact(rest); err != nil {
			return 0, false, err
		}
	}

	var value uint64
	allOnes := true
	if keepMarker {
		value = uint64(b)
	} else {
		payload := b &^ mask
		if payload != mask-1 {
			allOnes = false
		}
		value = uint64(payload)
	}
	for _, rb := range rest {
		if rb != 0xFF {
			allOnes = false
		}
		value = value<<8 | uint64(rb)
	}
	if keepMarker {
		allOnes = false
	}
	return value, allOnes, nil
}
