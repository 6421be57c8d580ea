package nextui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

const sampleNextVal = `{
  "font": 1,
  "fontPath": "/mnt/SDCARD/.system/res/font1.ttf",
  "color1": "0xFFFFFF",
  "color2": "0x9B2257",
  "color3": "0x1E2329",
  "color4": "0xFFFFFF",
  "color5": "0x000000",
  "color6": "0xAAAAAA",
  "bgColor": "0x404040"
}`

func TestThemeFromNextVal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextval.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleNextVal), 0o644))

	nv, err := InitStaticNextVal(path)
	require.NoError(t, err)

	theme := ThemeFromNextVal(nv)
	require.Equal(t, sdl.Color{R: 0x9B, G: 0x22, B: 0x57, A: 255}, theme.AccentColor)
	require.Equal(t, sdl.Color{R: 0x1E, G: 0x23, B: 0x29, A: 255}, theme.TriggerIconColor)
	require.Equal(t, sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: scrimAlpha}, theme.ScrimColor)
	require.Equal(t, "/mnt/SDCARD/.system/res/font1.ttf", theme.FontPath)
}

func TestParseHexColorFallsBackToRed(t *testing.T) {
	require.Equal(t, sdl.Color{R: 255, G: 0, B: 0, A: 255}, parseHexColor("nope"))
	require.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, parseHexColor("#123456"))
}

func TestInitStaticNextValErrors(t *testing.T) {
	_, err := InitStaticNextVal(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = parseNextVal([]byte("not json"))
	require.Error(t, err)
}
