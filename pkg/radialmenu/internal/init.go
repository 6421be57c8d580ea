package internal

import (
	"os"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func Init(title string, showBackground bool, pbc PowerButtonConfig) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK | sdl.INIT_EVENTS); err != nil {
		GetInternalLogger().Error("Failed to initialize SDL", "error", err)
		os.Exit(1)
	}

	if err := ttf.Init(); err != nil {
		GetInternalLogger().Error("Failed to initialize SDL_ttf", "error", err)
		os.Exit(1)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	window = initWindow(title, showBackground)

	if !constants.IsDevMode() && pbc.enabled() {
		window.initPowerButtonHandling(pbc)
	}

	initFonts(DefaultFontSizes)
	InitInputProcessor()
}

func SDLCleanup() {
	closeInputProcessor()
	closeFonts()
	if window != nil {
		window.closeWindow()
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
