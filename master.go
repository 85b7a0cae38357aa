package matroska

import "github.com/ebmlkit/matroska/internal/bufpool"

// Master elements are records whose body is a sequence of child elements
// rather than a single primitive value. spec.md §4.6 describes their
// decode as: wrap the reader in a limited take(size) view; loop reading
// child headers; dispatch each against a field table, skipping unknown
// ids by the header's declared size; reject if a required slot is still
// empty once the view is exhausted.
//
// Every master element in this package (elements_master.go) is built on
// the shared helper below instead of duplicating that loop, the same way
// deepteams/webp's mux/demux.go centralizes RIFF chunk dispatch into one
// loop keyed on FourCC rather than writing it out per chunk type.

// universalSlots holds the Crc32/Void children every master implicitly
// accepts, per spec.md §3 ("Every master MAY contain Crc32 and Void
// children in any position").
type universalSlots struct {
	crc32    []byte
	crc32Set bool
	void     [][]byte
}

// dispatchFunc is called once per child header encountered in a master's
// body, with a LimitedReader positioned at the start of that child's
// value. It returns true if it consumed exactly h.Size bytes (a known
// child was decoded); false tells decodeMasterChildren to skip the child
// itself.
type dispatchFunc func(h Header, body *LimitedReader) (consumed bool, err error)

// decodeMasterChildren implements the shared loop every master element's
// ReadBody runs: wrap r in take(size), dispatch each child to fn (after
// intercepting the universal Crc32/Void ids), skip anything fn declines.
func decodeMasterChildren(parent ID, r Reader, size BodySize, fn dispatchFunc) (*universalSlots, error) {
	known, err := size.MustValue()
	if err != nil {
		return nil, err
	}
	body := Take(r, known)
	u := &universalSlots{}

	for body.Remaining() > 0 {
		h, err := ReadHeader(body)
		if err != nil {
			return nil, err
		}
		childSize, err := h.Size.MustValue()
		if err != nil {
			return nil, err
		}

		switch h.ID {
		case IDCRC32:
			if u.crc32Set {
				return nil, &DuplicateChildError{Parent: parent, Child: h.ID}
			}
			// Rented from bufpool rather than make. These bytes are carried
			// verbatim into the returned struct and never Put back, so each
			// Get is served by the pool's New function (a fresh slice).
			buf := bufpool.Get(int(childSize))
			if err = body.ReadExact(buf); err != nil {
				return nil, err
			}
			u.crc32 = buf
			u.crc32Set = true
			continue
		case IDVoid:
			buf := bufpool.Get(int(childSize))
			if err = body.ReadExact(buf); err != nil {
				return nil, err
			}
			u.void = append(u.void, buf)
			continue
		}

		consumed, err := fn(h, body)
		if err != nil {
			return nil, err
		}
		if !consumed {
			if err = body.Skip(int64(childSize)); err != nil {
				return nil, err
			}
		}
	}

	return u, nil
}

// masterChildCost is the header+body byte cost of writing child as a
// child of a master, used by BodySize() implementations.
func masterChildCost(child Element) uint64 {
	bs := child.BodySize()
	return headerEncodedSize(child.ElementID(), bs) + bs
}

// writeChild writes child's header+body, used by master WriteBody
// implementations.
func writeChild(w Writer, child Element) error {
	return WriteTo(w, child)
}
