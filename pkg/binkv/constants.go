// Package binkv implements the sentinel-delimited binary key-value
// container the Steam client uses for files like shortcuts.vdf.
// Objects nest via open/close tag bytes instead of length prefixes,
// keys and string values are NUL-terminated, and integers are fixed
// 4-byte little-endian.
package binkv

// Wire type tags. Each field in the container starts with one of
// these bytes; TagEnd closes the current object and carries no
// payload.
const (
	TagObject byte = 0x00
	TagString byte = 0x01
	TagInt32  byte = 0x02
	TagEnd    byte = 0x08
)

// validTag reports whether b opens a field (TagEnd is handled by the
// object loop itself).
func validTag(b byte) bool {
	switch b {
	case TagObject, TagString, TagInt32:
		return true
	default:
		return false
	}
}
