package cannoli

import (
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		HighlightColor:   internal.HexToColor(0xFFFFFF),
		AccentColor:      internal.HexToColor(0x008080),
		TriggerIconColor: internal.HexToColor(0xFFFFFF),
		TextColor:        internal.HexToColor(0xFFFFFF),
		HintColor:        internal.HexToColor(0x000000),
		BackgroundColor:  internal.HexToColor(0xF9F9F9),
		ScrimColor:       sdl.Color{R: 0, G: 0, B: 0, A: constants.DefaultScrimAlpha},
		FontPath:         fontPath,
	}
}
