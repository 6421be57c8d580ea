package internal

import (
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

// systemFontPaths are tried in order when neither the theme nor FALLBACK_FONT yields a font.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
}

type FontSizes struct {
	Large  int `json:"large" toml:"large"`
	Medium int `json:"medium" toml:"medium"`
	Small  int `json:"small" toml:"small"`
	Tiny   int `json:"tiny" toml:"tiny"`
}

var DefaultFontSizes = FontSizes{
	Large:  50,
	Medium: 40,
	Small:  30,
	Tiny:   22,
}

var Fonts fontsManager

type fontsManager struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	TinyFont   *ttf.Font
}

const referenceWidth int32 = 1024

// scaleForWidth damps growth above the reference width to 75%.
func scaleForWidth(screenWidth int32) float32 {
	scaleFactor := float32(screenWidth) / float32(referenceWidth)
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}
	return scaleFactor
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	return int(float32(baseSize) * scaleForWidth(screenWidth))
}

// GetScaleFactor returns the scale factor based on current screen width
func GetScaleFactor() float32 {
	return scaleForWidth(GetWindow().GetWidth())
}

func initFonts(sizes FontSizes) {
	screenWidth := GetWindow().GetWidth()

	candidates := []string{GetTheme().FontPath, os.Getenv(FallbackFontEnvVar)}
	candidates = append(candidates, systemFontPaths...)

	load := func(base int) *ttf.Font {
		return loadFont(candidates, CalculateFontSizeForResolution(base, screenWidth))
	}

	Fonts = fontsManager{
		LargeFont:  load(sizes.Large),
		MediumFont: load(sizes.Medium),
		SmallFont:  load(sizes.Small),
		TinyFont:   load(sizes.Tiny),
	}
}

// loadFont returns nil when no candidate can be opened; text rendering is then skipped.
func loadFont(candidates []string, size int) *ttf.Font {
	for _, path := range candidates {
		if path == "" {
			continue
		}

		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
		GetInternalLogger().Debug("Failed to load font candidate", "path", path, "size", size, "error", err)
	}

	GetInternalLogger().Error("No usable font found; labels will not be drawn", "size", size)
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont, Fonts.TinyFont} {
		if font != nil {
			font.Close()
		}
	}
}
