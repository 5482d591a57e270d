package binkv

import (
	"github.com/rawbytedev/shortcuts/internal/common"
)

// Decoder walks a container buffer with a simple cursor. The zero
// value is ready to use; a Decoder may be reused across buffers but
// not concurrently.
type Decoder struct {
	buf []byte
	pos int
}

// DecodeFile parses a complete container file: one named root object
// followed by the single padding end tag the producer appends after
// the root close. Exactly that many closing tags must be present and
// the buffer must end there. All decoded strings are copies; nothing
// in the result aliases buf.
func (d *Decoder) DecodeFile(buf []byte) (string, *Object, error) {
	d.buf = buf
	d.pos = 0

	tag, err := d.readTag()
	if err != nil {
		return "", nil, err
	}
	if tag == TagEnd {
		return "", nil, d.errAt(d.pos-1, tag, "object open", ErrUnbalanced)
	}
	if tag != TagObject {
		return "", nil, d.errAt(d.pos-1, tag, "object open", ErrBadTag)
	}
	key, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	root, err := d.readObject()
	if err != nil {
		return "", nil, err
	}

	// producer padding: one extra end tag, then nothing
	pad, err := d.readTag()
	if err != nil {
		return "", nil, err
	}
	if pad != TagEnd {
		return "", nil, d.errAt(d.pos-1, pad, "padding end tag", ErrTrailingData)
	}
	if d.pos != len(d.buf) {
		return "", nil, d.errAt(d.pos, d.buf[d.pos], "end of buffer", ErrTrailingData)
	}
	return key, root, nil
}

// readObject consumes fields up to and including the object's own
// TagEnd. The opening tag and key have already been consumed.
func (d *Decoder) readObject() (*Object, error) {
	obj := &Object{}
	for {
		tag, err := d.readTag()
		if err != nil {
			return nil, err
		}
		switch tag {
		case TagEnd:
			return obj, nil
		case TagObject:
			key, err := d.readString()
			if err != nil {
				return nil, err
			}
			child, err := d.readObject()
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, Field{Tag: TagObject, Key: key, Obj: child})
		case TagString:
			key, err := d.readString()
			if err != nil {
				return nil, err
			}
			val, err := d.readString()
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, Field{Tag: TagString, Key: key, Str: val})
		case TagInt32:
			key, err := d.readString()
			if err != nil {
				return nil, err
			}
			val, err := d.readUint32()
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, Field{Tag: TagInt32, Key: key, U32: val})
		default:
			return nil, d.errAt(d.pos-1, tag, "field tag or end", ErrBadTag)
		}
	}
}

func (d *Decoder) readTag() (byte, error) {
	if d.pos >= len(d.buf) {
		return 0, d.errAt(d.pos, 0, "", ErrTruncated)
	}
	tag := d.buf[d.pos]
	d.pos++
	return tag, nil
}

func (d *Decoder) readString() (string, error) {
	s, n := common.CString(d.buf[d.pos:])
	if n == 0 {
		return "", d.errAt(d.pos, 0, "", ErrUnterminatedString)
	}
	d.pos += n
	return s, nil
}

func (d *Decoder) readUint32() (uint32, error) {
	if d.pos+4 > len(d.buf) {
		return 0, d.errAt(d.pos, 0, "", ErrTruncated)
	}
	v := common.Uint32(d.buf[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *Decoder) errAt(off int, found byte, want string, kind error) error {
	return &DecodeError{Offset: off, Found: found, Expected: want, Err: kind}
}
