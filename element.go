package matroska

// Element is the capability every EBML element type satisfies: it knows
// its own id, can report its encoded body size, and can write its body.
// This is spec.md §4.4's Element contract.
type Element interface {
	ElementID() ID
	BodySize() uint64
	WriteBody(w Writer) error
}

// Decodable adds the read side of the Element contract. It's a separate
// interface from Element because ReadBody mutates its receiver (decode
// builds the element in place), which Go idiom prefers to express with a
// pointer receiver distinct from the value-receiver read-side methods.
type Decodable interface {
	Element
	ReadBody(r Reader, size BodySize) error
}

// ReadFrom reads a header from r and, if its id matches target's, decodes
// target's body from it. It fails UnexpectedIDError on an id mismatch and
// ErrBodySizeUnknown if the header's size is Unknown — matching spec.md
// §4.4's read_from.
func ReadFrom[T Decodable](r Reader, target T) error {
	h, err := ReadHeader(r)
	if err != nil {
		return err
	}
	return ReadElement(h, r, target)
}

// ReadElement is ReadFrom, but for a header already consumed by the
// caller (spec.md §4.4's read_element).
func ReadElement[T Decodable](h Header, r Reader, target T) error {
	if h.ID != target.ElementID() {
		return &UnexpectedIDError{Expected: target.ElementID(), Found: h.ID}
	}
	size, err := h.Size.MustValue()
	if err != nil {
		return err
	}
	return target.ReadBody(r, KnownSize(size))
}

// WriteTo writes e's header (id + minimal-width size = e.BodySize()) then
// its body, matching spec.md §4.4's write_to.
func WriteTo(w Writer, e Element) error {
	h := Header{ID: e.ElementID(), Size: KnownSize(e.BodySize())}
	if err := h.WriteTo(w); err != nil {
		return err
	}
	return e.WriteBody(w)
}

// headerEncodedSize returns the number of bytes Header{id, KnownSize(bodySize)}
// occupies when written, used by master BodySize() implementations to sum
// header-plus-body costs without actually writing anything.
func headerEncodedSize(id ID, bodySize uint64) uint64 {
	return uint64(id.width()) + uint64(sizeWidth(bodySize))
}
