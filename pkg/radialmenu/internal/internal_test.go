package internal

import (
	"image/color"
	"log/slog"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestHatDirectionChangeQueuesPress(t *testing.T) {
	ip := NewInputProcessor(DefaultInputMapping())

	press := ip.processHat(0, sdl.HAT_UP)
	require.NotNil(t, press)
	require.Equal(t, constants.VirtualButtonUp, press.Button)
	require.True(t, press.Pressed)

	release := ip.processHat(0, sdl.HAT_RIGHT)
	require.NotNil(t, release)
	require.Equal(t, constants.VirtualButtonUp, release.Button)
	require.False(t, release.Pressed)
	require.True(t, ip.Pending())

	queued := ip.ProcessSDLEvent(nil)
	require.NotNil(t, queued)
	require.Equal(t, constants.VirtualButtonRight, queued.Button)
	require.True(t, queued.Pressed)
	require.False(t, ip.Pending())

	centered := ip.processHat(0, sdl.HAT_CENTERED)
	require.NotNil(t, centered)
	require.Equal(t, constants.VirtualButtonRight, centered.Button)
	require.False(t, centered.Pressed)

	require.Nil(t, ip.processHat(0, sdl.HAT_CENTERED))
}

func TestInputMappingJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")

	mapping := DefaultInputMapping()
	require.NoError(t, mapping.SaveToJSON(path))

	loaded, err := LoadInputMappingFromJSON(path)
	require.NoError(t, err)
	require.Equal(t, mapping.KeyboardMap, loaded.KeyboardMap)
	require.Equal(t, mapping.ControllerButtonMap, loaded.ControllerButtonMap)
	require.Equal(t, mapping.JoystickHatMap, loaded.JoystickHatMap)

	_, err = LoadInputMappingFromBytes([]byte("{"))
	require.Error(t, err)
}

func TestClassifyPress(t *testing.T) {
	pbc := PowerButtonConfig{ShortPressMax: 2 * time.Second, CoolDownTime: time.Second}

	require.Equal(t, pressSuspend, classifyPress(500*time.Millisecond, time.Hour, pbc))
	require.Equal(t, pressShutdown, classifyPress(3*time.Second, time.Hour, pbc))
	require.Equal(t, pressIgnored, classifyPress(500*time.Millisecond, 200*time.Millisecond, pbc))

	require.False(t, PowerButtonConfig{}.enabled())
	require.True(t, PowerButtonConfig{DevicePath: "/dev/input/event1", ButtonCode: 116}.enabled())
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLogLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLogLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestRotatePoint(t *testing.T) {
	x, y := RotatePoint(10, 0, 90)
	require.InDelta(t, 0, x, 1e-9)
	require.InDelta(t, 10, y, 1e-9)

	x, y = RotatePoint(10, 0, 45)
	require.InDelta(t, 10/math.Sqrt2, x, 1e-9)
	require.InDelta(t, 10/math.Sqrt2, y, 1e-9)
}

func TestColorHelpers(t *testing.T) {
	require.Equal(t, sdl.Color{R: 0x9B, G: 0x22, B: 0x57, A: 255}, HexToColor(0x9B2257))
	require.Equal(t, sdl.Color{R: 1, G: 2, B: 3, A: 4}, FromRGBA(color.RGBA{R: 1, G: 2, B: 3, A: 4}))

	c := sdl.Color{R: 10, G: 20, B: 30, A: 200}
	require.Equal(t, uint8(100), WithOpacity(c, 0.5).A)
	require.Equal(t, uint8(0), WithOpacity(c, -1).A)
	require.Equal(t, uint8(200), WithOpacity(c, 2).A)
}

func TestFontScale(t *testing.T) {
	require.Equal(t, 40, CalculateFontSizeForResolution(40, 1024))
	require.Equal(t, 20, CalculateFontSizeForResolution(40, 512))
	require.Equal(t, 55, CalculateFontSizeForResolution(40, 1536))
}
