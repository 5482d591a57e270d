package shortcuts

import (
	"strconv"

	"github.com/rawbytedev/shortcuts/pkg/binkv"
)

// ShortcutsToBytes serializes entries into the shortcuts.vdf wire
// format. Entries and tags are re-keyed "0","1",... by slice position,
// scalar fields are written in the Steam client's canonical order,
// and preserved Extra fields are re-inserted at their recorded
// positions. Encoding is all-or-nothing: a string with an embedded
// NUL byte fails before any output is produced.
func ShortcutsToBytes(list []Shortcut) ([]byte, error) {
	root := &binkv.Object{Fields: make([]binkv.Field, 0, len(list))}
	for i, sc := range list {
		root.Fields = append(root.Fields, binkv.ObjectField(strconv.Itoa(i), shortcutToObject(sc)))
	}
	var e binkv.Encoder
	return e.EncodeFile(RootKey, root)
}

func shortcutToObject(sc Shortcut) *binkv.Object {
	fields := make([]binkv.Field, 0, 15+len(sc.Extra))
	fields = append(fields,
		binkv.Uint32Field(KeyAppID, uint32(sc.AppID)),
		binkv.StringField(KeyAppName, sc.AppName),
		binkv.StringField(KeyExe, sc.Exe),
		binkv.StringField(KeyStartDir, sc.StartDir),
		binkv.StringField(KeyIcon, sc.Icon),
		binkv.StringField(KeyShortcutPath, sc.ShortcutPath),
		binkv.StringField(KeyLaunchOptions, sc.LaunchOptions),
		binkv.Uint32Field(KeyIsHidden, boolUint32(sc.IsHidden)),
		binkv.Uint32Field(KeyAllowDesktopConfig, boolUint32(sc.AllowDesktopConfig)),
		binkv.Uint32Field(KeyAllowOverlay, boolUint32(sc.AllowOverlay)),
		binkv.Uint32Field(KeyOpenVR, sc.OpenVR),
		binkv.Uint32Field(KeyDevkit, sc.Devkit),
		binkv.StringField(KeyDevkitGameID, sc.DevkitGameID),
		binkv.Uint32Field(KeyLastPlayTime, sc.LastPlayTime),
		binkv.ObjectField(KeyTags, tagsToObject(sc.Tags)),
	)
	for _, ex := range sc.Extra {
		fields = insertField(fields, ex.Pos, ex.Field)
	}
	return &binkv.Object{Fields: fields}
}

// tagsToObject keys each tag by its decimal position, matching the
// reader's positional re-keying. Zero tags still yields the explicit
// empty object.
func tagsToObject(tags []string) *binkv.Object {
	obj := &binkv.Object{Fields: make([]binkv.Field, 0, len(tags))}
	for j, tag := range tags {
		obj.Fields = append(obj.Fields, binkv.StringField(strconv.Itoa(j), tag))
	}
	return obj
}

// insertField splices f into fields at pos, clamping out-of-range
// positions to the end. Callers insert extras in ascending Pos order
// so recorded positions stay meaningful.
func insertField(fields []binkv.Field, pos int, f binkv.Field) []binkv.Field {
	if pos < 0 || pos > len(fields) {
		pos = len(fields)
	}
	fields = append(fields, binkv.Field{})
	copy(fields[pos+1:], fields[pos:])
	fields[pos] = f
	return fields
}

func boolUint32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
