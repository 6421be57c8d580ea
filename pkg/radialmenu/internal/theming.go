package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor      sdl.Color // Focus ring around the selected item
	AccentColor         sdl.Color // Trigger button fill and footer pills
	TriggerIconColor    sdl.Color // Plus glyph on the trigger
	TextColor           sdl.Color // Item labels and title
	HintColor           sdl.Color // Footer help text
	BackgroundColor     sdl.Color // Screen background
	ScrimColor          sdl.Color // Backdrop behind the open menu; alpha is the fully open opacity
	FontPath            string
	BackgroundImagePath string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
