package binkv

import (
	"fmt"

	"github.com/rawbytedev/shortcuts/internal/common"
)

// Encoder serializes Object trees, reusing its output buffer across
// calls. The zero value is ready to use. The returned slice is only
// valid until the next EncodeFile call on the same Encoder.
type Encoder struct {
	out []byte
}

// EncodeFile serializes the named root object plus the trailing
// padding end tag. Encoding is all-or-nothing: the whole tree is
// validated before any bytes are produced, so a string carrying an
// embedded NUL fails without partial output.
func (e *Encoder) EncodeFile(key string, root *Object) ([]byte, error) {
	if err := checkString(key, key); err != nil {
		return nil, err
	}
	if root == nil {
		root = &Object{}
	}
	if err := checkObject(root); err != nil {
		return nil, err
	}

	e.out = e.out[:0]
	e.out = append(e.out, TagObject)
	e.out = common.AppendCString(e.out, key)
	e.appendObject(root)
	e.out = append(e.out, TagEnd)
	return e.out, nil
}

func (e *Encoder) appendObject(obj *Object) {
	for _, f := range obj.Fields {
		e.out = append(e.out, f.Tag)
		e.out = common.AppendCString(e.out, f.Key)
		switch f.Tag {
		case TagObject:
			if f.Obj == nil {
				e.out = append(e.out, TagEnd)
				continue
			}
			e.appendObject(f.Obj)
			continue
		case TagString:
			e.out = common.AppendCString(e.out, f.Str)
		case TagInt32:
			e.out = common.AppendUint32(e.out, f.U32)
		}
	}
	e.out = append(e.out, TagEnd)
}

func checkObject(obj *Object) error {
	for i := range obj.Fields {
		f := &obj.Fields[i]
		if !validTag(f.Tag) {
			return fmt.Errorf("field %q: tag 0x%02x: %w", f.Key, f.Tag, ErrBadTag)
		}
		if err := checkString(f.Key, f.Key); err != nil {
			return err
		}
		switch f.Tag {
		case TagString:
			if err := checkString(f.Key, f.Str); err != nil {
				return err
			}
		case TagObject:
			if f.Obj != nil {
				if err := checkObject(f.Obj); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkString(key, s string) error {
	if common.HasNull(s) {
		return fmt.Errorf("field %q: %w", key, ErrEmbeddedNull)
	}
	return nil
}
