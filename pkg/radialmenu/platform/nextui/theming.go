package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	nextValPath       = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"
	defaultBackground = "/mnt/SDCARD/bg.png"
	nextValPathEnvVar = "NEXTVAL_PATH"
	scrimAlpha        = 180
)

// NextVal is the system palette reported by the NextUI nextval tool.
type NextVal struct {
	Font     int    `json:"font"`
	FontPath string `json:"fontPath"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgColor"`
}

var defaultTheme = internal.Theme{
	HighlightColor:      internal.HexToColor(0xFFFFFF),
	AccentColor:         internal.HexToColor(0x9B2257),
	TriggerIconColor:    internal.HexToColor(0xFFFFFF),
	TextColor:           internal.HexToColor(0xFFFFFF),
	HintColor:           internal.HexToColor(0xFFFFFF),
	BackgroundColor:     internal.HexToColor(0x000000),
	ScrimColor:          sdl.Color{R: 0, G: 0, B: 0, A: scrimAlpha},
	BackgroundImagePath: defaultBackground,
}

func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv(nextValPathEnvVar))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		internal.GetInternalLogger().Warn("Using default NextUI theme", "error", err)
		return defaultTheme
	}

	theme := ThemeFromNextVal(nv)
	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	}

	return theme
}

// ThemeFromNextVal maps the NextUI palette slots onto the menu theme.
func ThemeFromNextVal(nv *NextVal) internal.Theme {
	bg := parseHexColor(nv.BGColor)

	return internal.Theme{
		HighlightColor:      parseHexColor(nv.Color1),
		AccentColor:         parseHexColor(nv.Color2),
		TriggerIconColor:    parseHexColor(nv.Color3),
		TextColor:           parseHexColor(nv.Color4),
		HintColor:           parseHexColor(nv.Color6),
		BackgroundColor:     bg,
		ScrimColor:          sdl.Color{R: bg.R / 4, G: bg.G / 4, B: bg.B / 4, A: scrimAlpha},
		FontPath:            nv.FontPath,
		BackgroundImagePath: defaultBackground,
	}
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return parseNextVal(data)
}

func loadNextVal() (*NextVal, error) {
	output, err := exec.Command(nextValPath).Output()
	if err != nil {
		return nil, fmt.Errorf("error executing nextval: %w", err)
	}
	return parseNextVal(output)
}

func parseNextVal(data []byte) (*NextVal, error) {
	var nextval NextVal
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &nextval); err != nil {
		return nil, fmt.Errorf("error parsing nextval JSON: %w", err)
	}
	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "0x"), "#")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{R: 255, G: 0, B: 0, A: 255}
	}

	return internal.HexToColor(uint32(hex))
}
