package shortcuts

import (
	"fmt"

	"github.com/rawbytedev/shortcuts/pkg/binkv"
)

// ParseShortcuts decodes a shortcuts.vdf byte buffer into its ordered
// entry list. Entry order and tag order follow the positional index
// keys as encountered; the numeric key values themselves are not
// validated. Unknown fields are preserved in Shortcut.Extra rather
// than dropped. On any format error no partial list is returned.
func ParseShortcuts(data []byte) ([]Shortcut, error) {
	var d binkv.Decoder
	key, root, err := d.DecodeFile(data)
	if err != nil {
		return nil, err
	}
	if key != RootKey {
		return nil, fmt.Errorf("root object key %q, want %q", key, RootKey)
	}

	out := make([]Shortcut, 0, len(root.Fields))
	for i, f := range root.Fields {
		if f.Tag != binkv.TagObject {
			return nil, fmt.Errorf("entry %q: tag 0x%02x, want object", f.Key, f.Tag)
		}
		sc, err := shortcutFromObject(i, f.Obj)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", f.Key, err)
		}
		out = append(out, sc)
	}
	return out, nil
}

// entrySetters dispatches a scalar field by key name into the record
// under construction. Dispatch is by name, not position: reordered
// keys are structurally legal in the container.
var entrySetters = map[string]func(*Shortcut, binkv.Field) error{
	KeyAppID: func(sc *Shortcut, f binkv.Field) error {
		v, err := wantUint32(f)
		sc.AppID = int32(v)
		return err
	},
	KeyAppName: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.AppName)
	},
	KeyExe: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.Exe)
	},
	KeyStartDir: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.StartDir)
	},
	KeyIcon: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.Icon)
	},
	KeyShortcutPath: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.ShortcutPath)
	},
	KeyLaunchOptions: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.LaunchOptions)
	},
	KeyIsHidden: func(sc *Shortcut, f binkv.Field) error {
		return wantBool(f, &sc.IsHidden)
	},
	KeyAllowDesktopConfig: func(sc *Shortcut, f binkv.Field) error {
		return wantBool(f, &sc.AllowDesktopConfig)
	},
	KeyAllowOverlay: func(sc *Shortcut, f binkv.Field) error {
		return wantBool(f, &sc.AllowOverlay)
	},
	KeyOpenVR: func(sc *Shortcut, f binkv.Field) error {
		v, err := wantUint32(f)
		sc.OpenVR = v
		return err
	},
	KeyDevkit: func(sc *Shortcut, f binkv.Field) error {
		v, err := wantUint32(f)
		sc.Devkit = v
		return err
	},
	KeyDevkitGameID: func(sc *Shortcut, f binkv.Field) error {
		return wantString(f, &sc.DevkitGameID)
	},
	KeyLastPlayTime: func(sc *Shortcut, f binkv.Field) error {
		v, err := wantUint32(f)
		sc.LastPlayTime = v
		return err
	},
}

func shortcutFromObject(order int, obj *binkv.Object) (Shortcut, error) {
	sc := Shortcut{Order: order, Tags: []string{}}
	for pos, f := range obj.Fields {
		if f.Key == KeyTags && f.Tag == binkv.TagObject {
			tags, err := tagsFromObject(f.Obj)
			if err != nil {
				return Shortcut{}, err
			}
			sc.Tags = tags
			continue
		}
		if set, ok := entrySetters[f.Key]; ok {
			if err := set(&sc, f); err != nil {
				return Shortcut{}, err
			}
			continue
		}
		sc.Extra = append(sc.Extra, ExtraField{Pos: pos, Field: f})
	}
	return sc, nil
}

// tagsFromObject flattens the nested tags object into an ordered
// string list.
func tagsFromObject(obj *binkv.Object) ([]string, error) {
	tags := make([]string, 0, len(obj.Fields))
	for _, f := range obj.Fields {
		if f.Tag != binkv.TagString {
			return nil, fmt.Errorf("tags child %q: tag 0x%02x, want string", f.Key, f.Tag)
		}
		tags = append(tags, f.Str)
	}
	return tags, nil
}

func wantUint32(f binkv.Field) (uint32, error) {
	if f.Tag != binkv.TagInt32 {
		return 0, fmt.Errorf("field %q: tag 0x%02x, want int32", f.Key, f.Tag)
	}
	return f.U32, nil
}

func wantString(f binkv.Field, dst *string) error {
	if f.Tag != binkv.TagString {
		return fmt.Errorf("field %q: tag 0x%02x, want string", f.Key, f.Tag)
	}
	*dst = f.Str
	return nil
}

func wantBool(f binkv.Field, dst *bool) error {
	v, err := wantUint32(f)
	if err != nil {
		return err
	}
	*dst = v != 0
	return nil
}
