package common

import (
	"bytes"
	"encoding/binary"
)

// AppendUint32 appends v to dst in fixed 4-byte little-endian form.
func AppendUint32(dst []byte, v uint32) []byte {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], v)
	return append(dst, scratch[:]...)
}

// Uint32 decodes a fixed 4-byte little-endian value from b.
// b must hold at least 4 bytes.
func Uint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// AppendCString appends s to dst followed by the NUL terminator.
// The caller is responsible for rejecting strings that already
// contain a NUL byte.
func AppendCString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	return append(dst, 0x00)
}

// CString scans a NUL-terminated string from b returning the string
// and the total bytes consumed including the terminator. Returns
// consumed == 0 when no terminator exists before the end of b.
func CString(b []byte) (string, int) {
	i := bytes.IndexByte(b, 0x00)
	if i < 0 {
		return "", 0
	}
	return string(b[:i]), i + 1
}

// HasNull reports whether s contains an embedded NUL byte, which
// would desynchronize the terminator convention on the wire.
func HasNull(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x00 {
			return true
		}
	}
	return false
}
