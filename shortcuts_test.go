package shortcuts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/shortcuts/pkg/binkv"
)

// wire builds shortcuts.vdf buffers by hand so expected bytes never
// come from the writer under test.
type wire struct {
	b []byte
}

func (w *wire) open(key string) *wire {
	w.b = append(w.b, 0x00)
	w.b = append(w.b, key...)
	w.b = append(w.b, 0x00)
	return w
}

func (w *wire) str(key, val string) *wire {
	w.b = append(w.b, 0x01)
	w.b = append(w.b, key...)
	w.b = append(w.b, 0x00)
	w.b = append(w.b, val...)
	w.b = append(w.b, 0x00)
	return w
}

func (w *wire) u32(key string, v uint32) *wire {
	w.b = append(w.b, 0x02)
	w.b = append(w.b, key...)
	w.b = append(w.b, 0x00)
	w.b = append(w.b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	return w
}

func (w *wire) end() *wire {
	w.b = append(w.b, 0x08)
	return w
}

// entry appends one entry in the Steam client's canonical field
// order. extra, when non-nil, is called between DevkitGameID and
// LastPlayTime to splice in additional fields.
func (w *wire) entry(idx, name string, appid uint32, tags []string, extra func(*wire)) *wire {
	w.open(idx)
	w.u32("appid", appid)
	w.str("AppName", name)
	w.str("Exe", `"C:\Games\`+name+`.exe"`)
	w.str("StartDir", `"C:\Games\"`)
	w.str("icon", "")
	w.str("ShortcutPath", "")
	w.str("LaunchOptions", "")
	w.u32("IsHidden", 0)
	w.u32("AllowDesktopConfig", 1)
	w.u32("AllowOverlay", 1)
	w.u32("OpenVR", 0)
	w.u32("Devkit", 0)
	w.str("DevkitGameID", "")
	if extra != nil {
		extra(w)
	}
	w.u32("LastPlayTime", 1628913700)
	w.open("tags")
	for j, tag := range tags {
		w.str(string(rune('0'+j)), tag)
	}
	w.end()
	w.end()
	return w
}

func (w *wire) close() []byte {
	w.end() // root close
	w.end() // producer padding
	return w.b
}

func celesteFile() []byte {
	w := &wire{}
	w.open("shortcuts")
	w.entry("0", "Celeste", 12345, []string{"Platformer", "Indie", "Great Soundtrack"}, nil)
	return w.close()
}

func TestParseCelesteScenario(t *testing.T) {
	src := celesteFile()
	list, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Len(t, list, 1)

	sc := list[0]
	assert.Equal(t, 0, sc.Order)
	assert.Equal(t, int32(12345), sc.AppID)
	assert.Equal(t, "Celeste", sc.AppName)
	assert.Equal(t, `"C:\Games\Celeste.exe"`, sc.Exe)
	assert.False(t, sc.IsHidden)
	assert.True(t, sc.AllowDesktopConfig)
	assert.True(t, sc.AllowOverlay)
	assert.Equal(t, uint32(1628913700), sc.LastPlayTime)
	assert.Equal(t, []string{"Platformer", "Indie", "Great Soundtrack"}, sc.Tags)
	assert.Empty(t, sc.Extra)

	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, src, out, "re-encode must reproduce the source bytes")
}

func TestParseDeterminism(t *testing.T) {
	src := celesteFile()
	first, err := ParseShortcuts(src)
	require.NoError(t, err)
	second, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestOrderPreservation(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.entry("0", "Alpha", 1, nil, nil)
	w.entry("1", "Beta", 2, nil, nil)
	w.entry("2", "Gamma", 3, nil, nil)
	src := w.close()

	list, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range []string{"Alpha", "Beta", "Gamma"} {
		assert.Equal(t, name, list[i].AppName)
		assert.Equal(t, i, list[i].Order)
	}

	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestIndexKeysRegenerated(t *testing.T) {
	// A producer could in principle skip index values; encountered
	// order is the record order and the writer re-keys from zero.
	sparse := &wire{}
	sparse.open("shortcuts")
	sparse.entry("5", "Alpha", 1, nil, nil)
	sparse.entry("9", "Beta", 2, nil, nil)

	canonical := &wire{}
	canonical.open("shortcuts")
	canonical.entry("0", "Alpha", 1, nil, nil)
	canonical.entry("1", "Beta", 2, nil, nil)

	list, err := ParseShortcuts(sparse.close())
	require.NoError(t, err)
	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, canonical.close(), out)
}

func TestEmptyTagsFidelity(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.entry("0", "Alpha", 1, nil, nil)
	src := w.close()

	list, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Tags)

	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, src, out)
	// the open+close pair for tags must be explicit
	assert.True(t, bytes.Contains(out, append(append([]byte{0x00}, "tags"...), 0x00, 0x08)))
}

func TestBooleanRoundTrip(t *testing.T) {
	sc := NewShortcut(0, "Alpha", `"C:\a.exe"`, `"C:\"`, "", "", "")
	sc.IsHidden = true
	out, err := ShortcutsToBytes([]Shortcut{sc})
	require.NoError(t, err)

	field := append(append([]byte{0x02}, "IsHidden"...), 0x00, 0x01, 0x00, 0x00, 0x00)
	assert.True(t, bytes.Contains(out, field), "IsHidden must be written as 4-byte LE 1")

	back, err := ParseShortcuts(out)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].IsHidden)

	again, err := ShortcutsToBytes(back)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestUnknownFieldPreserved(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.entry("0", "Alpha", 1, []string{"Installed"}, func(w *wire) {
		w.u32("DevkitOverrideAppID", 0)
	})
	src := w.close()

	list, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Extra, 1)
	assert.Equal(t, 13, list[0].Extra[0].Pos)
	assert.Equal(t, "DevkitOverrideAppID", list[0].Extra[0].Field.Key)

	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, src, out, "unknown fields must be re-emitted at the same position")
}

func TestUnknownNestedObjectPreserved(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.entry("0", "Alpha", 1, nil, func(w *wire) {
		w.open("PlaytimeByPlatform")
		w.u32("linux", 120)
		w.end()
	})
	src := w.close()

	list, err := ParseShortcuts(src)
	require.NoError(t, err)
	require.Len(t, list[0].Extra, 1)
	assert.Equal(t, binkv.TagObject, list[0].Extra[0].Field.Tag)

	out, err := ShortcutsToBytes(list)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRootKeyMismatch(t *testing.T) {
	w := &wire{}
	w.open("snapshots")
	src := w.close()
	_, err := ParseShortcuts(src)
	require.Error(t, err)
	assert.ErrorContains(t, err, `want "shortcuts"`)
}

func TestKnownKeyWrongType(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.open("0")
	w.str("appid", "12345")
	w.end()
	src := w.close()
	_, err := ParseShortcuts(src)
	require.Error(t, err)
	assert.ErrorContains(t, err, `"appid"`)
}

func TestTagsChildWrongType(t *testing.T) {
	w := &wire{}
	w.open("shortcuts")
	w.open("0")
	w.open("tags")
	w.u32("0", 7)
	w.end()
	w.end()
	src := w.close()
	_, err := ParseShortcuts(src)
	require.Error(t, err)
	assert.ErrorContains(t, err, "tags child")
}

func TestTruncatedFile(t *testing.T) {
	src := celesteFile()
	_, err := ParseShortcuts(src[:len(src)-3])
	require.Error(t, err)
	assert.ErrorIs(t, err, binkv.ErrTruncated)
}

func TestEncodeRejectsEmbeddedNull(t *testing.T) {
	sc := NewShortcut(0, "Alpha", `"C:\a.exe"`, `"C:\"`, "", "", "")
	sc.LaunchOptions = "--name\x00oops"
	out, err := ShortcutsToBytes([]Shortcut{sc})
	require.Error(t, err)
	assert.ErrorIs(t, err, binkv.ErrEmbeddedNull)
	assert.Nil(t, out)
}

func TestStructRoundTrip(t *testing.T) {
	entries := []Shortcut{
		NewShortcut(0, "Alpha", `"C:\Games\alpha.exe"`, `"C:\Games\"`, "", "", "--fullscreen"),
		NewShortcut(1, "Beta", `"C:\Games\beta.exe"`, `"C:\Games\"`, `"C:\icons\beta.ico"`, "", ""),
	}
	entries[1].IsHidden = true
	entries[1].LastPlayTime = 1700000000

	out, err := ShortcutsToBytes(entries)
	require.NoError(t, err)
	back, err := ParseShortcuts(out)
	require.NoError(t, err)
	require.Equal(t, entries, back)

	again, err := ShortcutsToBytes(back)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestNewShortcutDefaults(t *testing.T) {
	sc := NewShortcut(3, "Alpha", `"C:\a.exe"`, `"C:\"`, "", "", "")
	assert.Equal(t, 3, sc.Order)
	assert.True(t, sc.AllowDesktopConfig)
	assert.True(t, sc.AllowOverlay)
	assert.False(t, sc.IsHidden)
	assert.Equal(t, []string{"Installed", "Ready To Play"}, sc.Tags)
	assert.Equal(t, int32(CalculateAppID(`"C:\a.exe"`, "Alpha")), sc.AppID)
}
