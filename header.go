package matroska

// Header is the (id, size) pair that prefixes every EBML element's body.
type Header struct {
	ID   ID
	Size BodySize
}

// ReadHeader reads an element header: an ID VINT followed by a size VINT.
func ReadHeader(r Reader) (Header, error) {
	id, err := readIDVint(r)
	if err != nil {
		return Header{}, err
	}
	size, err := readSizeVint(r)
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Size: size}, nil
}

// WriteTo writes h's id and size as two VINTs.
func (h Header) WriteTo(w Writer) error {
	if err := writeIDVint(w, h.ID); err != nil {
		return err
	}
	if !h.Size.known {
		return writeUnknownSizeVint(w)
	}
	return writeSizeVint(w, h.Size.value)
}

// writeHeaderPadded writes h with its size VINT padded to an explicit
// width, reserving room to rewrite the size in place later.
func writeHeaderPadded(w Writer, id ID, size uint64, sizeWidth int) error {
	if err := writeIDVint(w, id); err != nil {
		return err
	}
	return writeSizeVintWidth(w, size, sizeWidth)
}
