package shortcuts

// Canonical key names used by the Steam client. Casing is mixed but
// exact: the producer writes these byte-for-byte and the writer must
// reproduce them.
const (
	RootKey = "shortcuts"

	KeyAppID              = "appid"
	KeyAppName            = "AppName"
	KeyExe                = "Exe"
	KeyStartDir           = "StartDir"
	KeyIcon               = "icon"
	KeyShortcutPath       = "ShortcutPath"
	KeyLaunchOptions      = "LaunchOptions"
	KeyIsHidden           = "IsHidden"
	KeyAllowDesktopConfig = "AllowDesktopConfig"
	KeyAllowOverlay       = "AllowOverlay"
	KeyOpenVR             = "OpenVR"
	KeyDevkit             = "Devkit"
	KeyDevkitGameID       = "DevkitGameID"
	KeyLastPlayTime       = "LastPlayTime"
	KeyTags               = "tags"
)
