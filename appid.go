package shortcuts

import "hash/crc32"

// CalculateAppID derives the id Steam uses to key grid images and
// other custom artwork for a non-Steam shortcut: the CRC-32 of the
// exe path concatenated with the app name, with the high bit forced
// on.
func CalculateAppID(exe, appName string) uint32 {
	sum := crc32.ChecksumIEEE([]byte(exe + appName))
	return sum | 0x80000000
}
