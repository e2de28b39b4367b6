package marshal

import (
	"encoding/binary"
	"io"
)

const (
	tagDictStart = '{'
	tagDictEnd   = '0'
)

// Decode decodes the first dictionary in b. Bytes after its terminator are ignored.
func Decode(b []byte) (Dict, error) {
	d := &decoder{b: b}
	return d.dict()
}

// DecodeAll decodes every dictionary in b, in order.
func DecodeAll(b []byte) (res []Dict, _ error) {
	r := NewReader(b)
	for {
		dict, err := r.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, err
		}
		res = append(res, dict)
	}
}

// Reader reads consecutive dictionaries from a buffer. p4 -G writes one per record.
type Reader struct {
	d decoder
}

func NewReader(b []byte) *Reader {
	return &Reader{d: decoder{b: b}}
}

// Next returns the next dictionary or io.EOF when the buffer is fully consumed.
func (r *Reader) Next() (Dict, error) {
	if r.d.off >= len(r.d.b) {
		return nil, io.EOF
	}
	return r.d.dict()
}

type decoder struct {
	b   []byte
	off int
}

func (d *decoder) dict() (Dict, error) {
	start := d.off
	b, ok := d.readByte()
	if !ok || b != tagDictStart {
		return nil, &DecodeError{Kind: NotADictionary, Offset: start}
	}
	res := Dict{}
	for {
		tagOff := d.off
		tag, ok := d.readByte()
		if !ok || tag == tagDictEnd {
			return res, nil
		}
		if tag != byte(KindString) {
			return nil, &DecodeError{Kind: UnexpectedTag, Tag: tag, Pos: PosKey, Offset: tagOff}
		}
		key, err := d.readString()
		if err != nil {
			return nil, err
		}
		tagOff = d.off
		tag, ok = d.readByte()
		if !ok {
			// key without a value
			return nil, &DecodeError{Kind: TruncatedStream, Offset: tagOff}
		}
		v, err := d.readValue(tag, tagOff)
		if err != nil {
			return nil, err
		}
		res[key] = v.String()
	}
}

// readValue dispatches on the value tag. New kinds need a Kind constant and a case here.
func (d *decoder) readValue(tag byte, tagOff int) (Value, error) {
	switch Kind(tag) {
	case KindString:
		s, err := d.readString()
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil
	case KindInt:
		i, err := d.readInt()
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil
	}
	return Value{}, &DecodeError{Kind: UnexpectedTag, Tag: tag, Pos: PosValue, Offset: tagOff}
}

func (d *decoder) readByte() (byte, bool) {
	if d.off >= len(d.b) {
		return 0, false
	}
	b := d.b[d.off]
	d.off++
	return b, true
}

func (d *decoder) readUint32() (uint32, error) {
	if len(d.b)-d.off < 4 {
		return 0, &DecodeError{Kind: TruncatedStream, Offset: d.off}
	}
	v := binary.LittleEndian.Uint32(d.b[d.off : d.off+4])
	d.off += 4
	return v, nil
}

func (d *decoder) readInt() (int32, error) {
	v, err := d.readUint32()
	return int32(v), err
}

func (d *decoder) readString() (string, error) {
	lenOff := d.off
	l, err := d.readUint32()
	if err != nil {
		return "", err
	}
	if uint64(l) > uint64(len(d.b)-d.off) {
		return "", &DecodeError{Kind: TruncatedStream, Offset: lenOff}
	}
	n := int(l)
	s := string(d.b[d.off : d.off+n])
	d.off += n
	return s, nil
}
