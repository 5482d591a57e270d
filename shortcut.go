// Package shortcuts decodes and re-encodes the binary shortcuts.vdf
// container the Steam client uses to persist non-Steam game
// shortcuts, usually found at
// $SteamDirectory/userdata/$SteamUserId/config/shortcuts.vdf.
// The codec is a faithful transcoder: for a file written by the Steam
// client, ShortcutsToBytes(ParseShortcuts(b)) reproduces b exactly,
// including the trailing padding tag. Locating the file and reading
// or writing it on disk is the caller's job; both directions operate
// purely on in-memory buffers.
package shortcuts

import "github.com/rawbytedev/shortcuts/pkg/binkv"

// Shortcut is one user-defined shortcut entry.
type Shortcut struct {
	// Order is the entry's position in the file. It is informational
	// on read; the writer re-keys entries by slice position.
	Order int

	AppID              int32
	AppName            string
	Exe                string
	StartDir           string
	Icon               string
	ShortcutPath       string
	LaunchOptions      string
	IsHidden           bool
	AllowDesktopConfig bool
	AllowOverlay       bool
	OpenVR             uint32
	Devkit             uint32
	DevkitGameID       string
	LastPlayTime       uint32

	// Tags in file order. An entry with no tags still carries an
	// explicit empty tags object on the wire.
	Tags []string

	// Extra holds fields this model does not recognize, kept with
	// their position inside the entry so files written by newer Steam
	// clients survive a decode/encode cycle byte for byte.
	Extra []ExtraField
}

// ExtraField is an unrecognized entry field preserved for
// re-emission.
type ExtraField struct {
	// Pos is the field's index within the entry's field sequence at
	// decode time. The writer re-inserts the field at the same index.
	Pos   int
	Field binkv.Field
}

// NewShortcut builds a shortcut with the defaults the Steam client
// applies to fresh entries: overlay and desktop configuration
// allowed, the stock "Installed"/"Ready To Play" tags, and an AppID
// derived from exe and name.
func NewShortcut(order int, appName, exe, startDir, icon, shortcutPath, launchOptions string) Shortcut {
	return Shortcut{
		Order:              order,
		AppID:              int32(CalculateAppID(exe, appName)),
		AppName:            appName,
		Exe:                exe,
		StartDir:           startDir,
		Icon:               icon,
		ShortcutPath:       shortcutPath,
		LaunchOptions:      launchOptions,
		AllowDesktopConfig: true,
		AllowOverlay:       true,
		Tags:               []string{"Installed", "Ready To Play"},
	}
}
