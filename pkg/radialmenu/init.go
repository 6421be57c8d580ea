package radialmenu

import (
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/internal"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/platform/cannoli"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/platform/nextui"
	"github.com/holoplot/go-evdev"
)

type Options struct {
	WindowTitle          string
	ShowBackground       bool
	PrimaryThemeColorHex uint32
	IsCannoli            bool
	IsNextUI             bool
	FontPath             string
	InputMappingBytes    []byte
	LogFilename          string
	LogDir               string
}

// Init initializes SDL and the UI
// Must be called before any other UI functions!
func Init(options Options) {
	internal.SetLogDir(options.LogDir)
	internal.SetLogFilename(options.LogFilename)

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if len(options.InputMappingBytes) > 0 {
		internal.SetInputMappingBytes(options.InputMappingBytes)
	}

	pbc := internal.PowerButtonConfig{}

	switch {
	case options.IsNextUI:
		internal.SetTheme(nextui.InitNextUITheme())
		pbc = internal.PowerButtonConfig{
			ButtonCode:      evdev.KEY_POWER,
			DevicePath:      "/dev/input/event1",
			ShortPressMax:   2 * time.Second,
			CoolDownTime:    1 * time.Second,
			SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
			ShutdownCommand: "/sbin/poweroff",
		}
	case options.IsCannoli:
		internal.SetTheme(cannoli.InitCannoliTheme("/mnt/SDCARD/System/fonts/Cannoli.ttf"))
	default:
		internal.SetTheme(cannoli.InitCannoliTheme(""))
	}

	theme := internal.GetTheme()
	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	internal.SetTheme(theme)

	internal.Init(options.WindowTitle, options.ShowBackground, pbc)
}

// Close Tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	internal.SDLCleanup()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func GetWindow() *internal.Window {
	return internal.GetWindow()
}

func HideWindow() {
	internal.GetWindow().Window.Hide()
}

func ShowWindow() {
	internal.GetWindow().Window.Show()
}
