package internal

import (
	"os"
	"strconv"
	"sync"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

type Window struct {
	Window            *sdl.Window
	Renderer          *sdl.Renderer
	Title             string
	Background        *sdl.Texture
	DisplayBackground bool
	PowerButtonWG     sync.WaitGroup
	PowerButtonConfig PowerButtonConfig
}

var window *Window

func initWindow(title string, displayBackground bool) *Window {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	return initWindowWithSize(title, displayMode.W, displayMode.H, displayBackground)
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "variable", name, "value", v, "error", err)
		return fallback
	}

	return int32(n)
}

func initWindowWithSize(title string, width, height int32, displayBackground bool) *Window {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	windowFlags := uint32(sdl.WINDOW_SHOWN)

	if constants.IsDevMode() {
		x, y = 50, 50
		width = envDimension("WINDOW_WIDTH", devWindowWidth)
		height = envDimension("WINDOW_HEIGHT", devWindowHeight)
		windowFlags |= sdl.WINDOW_BORDERLESS
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, windowFlags)
	if err != nil {
		panic(err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Error("Failed to create renderer", "error", err)
		os.Exit(1)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	win := &Window{
		Window:            w,
		Renderer:          renderer,
		Title:             title,
		DisplayBackground: displayBackground,
	}

	win.loadBackground()

	return win
}

func (window *Window) initPowerButtonHandling(pbc PowerButtonConfig) {
	window.PowerButtonConfig = pbc
	window.PowerButtonWG.Add(1)

	go PowerButtonHandler(&window.PowerButtonWG, pbc)
}

func (window *Window) loadBackground() {
	window.Background = nil

	path := GetTheme().BackgroundImagePath
	if !window.DisplayBackground || path == "" {
		return
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	texture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		GetInternalLogger().Debug("No background image loaded", "path", path, "error", err)
		return
	}

	window.Background = texture
}

func (window *Window) closeWindow() {
	if window.Background != nil {
		window.Background.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()

	img.Quit()
}

func GetWindow() *Window {
	return window
}

func (window *Window) GetWidth() int32 {
	w, _ := window.Window.GetSize()
	return w
}

func (window *Window) GetHeight() int32 {
	_, h := window.Window.GetSize()
	return h
}

// RenderBackground clears the frame to the theme background, then draws the background image if one is loaded.
func (window *Window) RenderBackground() {
	bg := GetTheme().BackgroundColor
	window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	window.Renderer.Clear()

	if window.Background != nil {
		window.Renderer.Copy(window.Background, nil, &sdl.Rect{X: 0, Y: 0, W: window.GetWidth(), H: window.GetHeight()})
	}
}

func ResetBackground() {
	window.loadBackground()
}
