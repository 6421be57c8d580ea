package internal

import (
	"image/color"
	"math"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if radius <= 0 {
		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(rect)
		return
	}

	gfx.BoxColor(renderer, rect.X+radius, rect.Y, rect.X+rect.W-radius, rect.Y+rect.H, color)
	gfx.BoxColor(renderer, rect.X, rect.Y+radius, rect.X+radius, rect.Y+rect.H-radius, color)
	gfx.BoxColor(renderer, rect.X+rect.W-radius, rect.Y+radius, rect.X+rect.W, rect.Y+rect.H-radius, color)

	DrawFilledCircle(renderer, rect.X+radius, rect.Y+radius, radius, color)
	DrawFilledCircle(renderer, rect.X+rect.W-radius, rect.Y+radius, radius, color)
	DrawFilledCircle(renderer, rect.X+radius, rect.Y+rect.H-radius, radius, color)
	DrawFilledCircle(renderer, rect.X+rect.W-radius, rect.Y+rect.H-radius, radius, color)
}

// DrawFilledCircle fills a circle and smooths its edge with anti-aliased rings.
func DrawFilledCircle(renderer *sdl.Renderer, centerX, centerY, radius int32, color sdl.Color) {
	if radius <= 0 {
		return
	}

	gfx.FilledCircleColor(renderer, centerX, centerY, radius, color)
	gfx.AACircleColor(renderer, centerX, centerY, radius, color)

	if radius > 15 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
		gfx.AACircleColor(renderer, centerX, centerY, radius-2, color)
	} else if radius > 2 {
		gfx.AACircleColor(renderer, centerX, centerY, radius-1, color)
	}
}

// DrawRing draws a circle outline of the given thickness.
func DrawRing(renderer *sdl.Renderer, centerX, centerY, radius, thickness int32, color sdl.Color) {
	for i := int32(0); i < thickness; i++ {
		gfx.AACircleColor(renderer, centerX, centerY, radius+i, color)
	}
}

// RotatePoint rotates (x, y) around the origin by degrees, clockwise on screen.
func RotatePoint(x, y, degrees float64) (float64, float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// DrawRotatedPlus draws a plus glyph of half-length arm centered on (cx, cy), rotated by degrees.
func DrawRotatedPlus(renderer *sdl.Renderer, cx, cy int32, arm float64, thickness int32, degrees float64, color sdl.Color) {
	for _, axis := range [][2]float64{{arm, 0}, {0, arm}} {
		dx, dy := RotatePoint(axis[0], axis[1], degrees)
		gfx.ThickLineColor(
			renderer,
			cx-int32(math.Round(dx)),
			cy-int32(math.Round(dy)),
			cx+int32(math.Round(dx)),
			cy+int32(math.Round(dy)),
			thickness,
			color,
		)
	}
}

// RenderText draws a single line of text, scaled and faded, aligned on x and vertically centered on y.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, scale float64, align constants.TextAlign) {
	if font == nil || text == "" || scale <= 0 || color.A == 0 {
		return
	}

	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: color.R, G: color.G, B: color.B, A: 255})
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	texture.SetAlphaMod(color.A)

	w := int32(float64(surface.W) * scale)
	h := int32(float64(surface.H) * scale)

	rect := sdl.Rect{Y: y - h/2, W: w, H: h}
	switch align {
	case constants.TextAlignCenter:
		rect.X = x - w/2
	case constants.TextAlignRight:
		rect.X = x - w
	default:
		rect.X = x
	}

	renderer.Copy(texture, nil, &rect)
}

func TextWidth(font *ttf.Font, text string) int32 {
	if font == nil {
		return 0
	}
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func HexToColor(hex uint32) sdl.Color {
	r := uint8((hex >> 16) & 0xFF)
	g := uint8((hex >> 8) & 0xFF)
	b := uint8(hex & 0xFF)

	return sdl.Color{R: r, G: g, B: b, A: 255}
}

func FromRGBA(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithOpacity scales the alpha channel of c by opacity in [0,1].
func WithOpacity(c sdl.Color, opacity float64) sdl.Color {
	opacity = math.Max(0, math.Min(1, opacity))
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}
