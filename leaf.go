package matroska

// Leaf elements are thin value-carrying records binding one primitive
// codec (primitive.go) to one fixed id. Per spec.md §4.5/§9, their sole
// behavior is tagging a primitive value with an id; schema-bound types
// (elements_leaf.go) are one-line wrappers naming a fixed id for a
// generic leaf below, giving callers both a type-safe accessor and direct
// access to the underlying value.

// UintLeaf is an unsigned-integer leaf element (0..8 bytes, big-endian).
type UintLeaf struct {
	id    ID
	Value uint64
}

func newUintLeaf(id ID, v uint64) UintLeaf { return UintLeaf{id: id, Value: v} }

func (l UintLeaf) ElementID() ID     { return l.id }
func (l UintLeaf) BodySize() uint64  { return uint64(len(encodeUint(l.Value))) }
func (l UintLeaf) WriteBody(w Writer) error {
	return w.WriteAll(encodeUint(l.Value))
}
func (l *UintLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeUint(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

// IntLeaf is a signed-integer leaf element (0..8 bytes, two's complement).
type IntLeaf struct {
	id    ID
	Value int64
}

func newIntLeaf(id ID, v int64) IntLeaf { return IntLeaf{id: id, Value: v} }

func (l IntLeaf) ElementID() ID    { return l.id }
func (l IntLeaf) BodySize() uint64 { return uint64(len(encodeInt(l.Value))) }
func (l IntLeaf) WriteBody(w Writer) error {
	return w.WriteAll(encodeInt(l.Value))
}
func (l *IntLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeInt(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

// FloatLeaf is a floating-point leaf element. Width selects the encoded
// size (4 or 8 bytes); it defaults to 8 (float64) unless set explicitly by
// the schema-bound wrapper. A zero value encodes as a zero-length body.
type FloatLeaf struct {
	id    ID
	Width int
	Value float64
}

func newFloatLeaf(id ID, width int, v float64) FloatLeaf {
	return FloatLeaf{id: id, Width: width, Value: v}
}

func (l FloatLeaf) ElementID() ID { return l.id }
func (l FloatLeaf) BodySize() uint64 {
	if l.Value == 0 {
		return 0
	}
	return uint64(l.width())
}
func (l FloatLeaf) width() int {
	if l.Width == 4 {
		return 4
	}
	return 8
}
func (l FloatLeaf) WriteBody(w Writer) error {
	if l.Value == 0 {
		return nil
	}
	return w.WriteAll(encodeFloat(l.Value, l.width()))
}
func (l *FloatLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeFloat(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

// StringLeaf is a UTF-8 string leaf element.
type StringLeaf struct {
	id    ID
	Value string
}

func newStringLeaf(id ID, v string) StringLeaf { return StringLeaf{id: id, Value: v} }

func (l StringLeaf) ElementID() ID    { return l.id }
func (l StringLeaf) BodySize() uint64 { return uint64(len(encodeString(l.Value))) }
func (l StringLeaf) WriteBody(w Writer) error {
	return w.WriteAll(encodeString(l.Value))
}
func (l *StringLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeUTF8String(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

// ASCIILeaf is a 7-bit ASCII string leaf element.
type ASCIILeaf struct {
	id    ID
	Value string
}

func newASCIILeaf(id ID, v string) ASCIILeaf { return ASCIILeaf{id: id, Value: v} }

func (l ASCIILeaf) ElementID() ID    { return l.id }
func (l ASCIILeaf) BodySize() uint64 { return uint64(len(encodeString(l.Value))) }
func (l ASCIILeaf) WriteBody(w Writer) error {
	return w.WriteAll(encodeString(l.Value))
}
func (l *ASCIILeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeASCIIString(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}

// BinaryLeaf is a raw binary leaf element: identity encoding.
type BinaryLeaf struct {
	id    ID
	Value []byte
}

func newBinaryLeaf(id ID, v []byte) BinaryLeaf { return BinaryLeaf{id: id, Value: v} }

func (l BinaryLeaf) ElementID() ID    { return l.id }
func (l BinaryLeaf) BodySize() uint64 { return uint64(len(l.Value)) }
func (l BinaryLeaf) WriteBody(w Writer) error {
	return w.WriteAll(l.Value)
}
func (l *BinaryLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	l.Value = buf
	return nil
}

// DateLeaf is a Matroska date leaf element: nanoseconds since
// 2001-01-01T00:00:00Z, always encoded as a signed 8-byte big-endian
// integer (no shortened form).
type DateLeaf struct {
	id    ID
	Value int64
}

func newDateLeaf(id ID, v int64) DateLeaf { return DateLeaf{id: id, Value: v} }

func (l DateLeaf) ElementID() ID    { return l.id }
func (l DateLeaf) BodySize() uint64 { return 8 }
func (l DateLeaf) WriteBody(w Writer) error {
	return w.WriteAll(encodeDate(l.Value))
}
func (l *DateLeaf) ReadBody(r Reader, size BodySize) error {
	n, err := size.MustValue()
	if err != nil {
		return err
	}
	buf := make([]byte, n)
	if err = r.ReadExact(buf); err != nil {
		return err
	}
	v, err := decodeDate(buf)
	if err != nil {
		return err
	}
	l.Value = v
	return nil
}
