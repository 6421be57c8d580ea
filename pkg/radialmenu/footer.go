package radialmenu

import (
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem represents a button and its help text that should be displayed in the footer.
// ButtonName is the text that will be displayed in the inner pill.
// HelpText is the text that will be displayed in the outer pill to the right of the button.
type FooterHelpItem struct {
	HelpText   string
	ButtonName string
}

// splitFooterItems puts the first two items on the left and up to two more on the right.
func splitFooterItems(items []FooterHelpItem) (left, right []FooterHelpItem) {
	switch {
	case len(items) <= 2:
		return items[:min(1, len(items))], items[min(1, len(items)):]
	case len(items) == 3:
		return items[:2], items[2:]
	default:
		return items[:2], items[2:4]
	}
}

func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomPadding int32) {
	if len(items) == 0 || font == nil {
		return
	}

	scaleFactor := internal.GetScaleFactor()
	window := internal.GetWindow()
	outerPillHeight := int32(float32(60) * scaleFactor)
	innerPillMargin := int32(float32(6) * scaleFactor)
	y := window.GetHeight() - bottomPadding - outerPillHeight

	left, right := splitFooterItems(items)

	renderPillGroup(renderer, font, left, bottomPadding, y, outerPillHeight, innerPillMargin)

	if len(right) > 0 {
		width := pillGroupWidth(font, right, outerPillHeight, innerPillMargin)
		renderPillGroup(renderer, font, right, window.GetWidth()-bottomPadding-width, y, outerPillHeight, innerPillMargin)
	}
}

func innerPillWidth(font *ttf.Font, buttonName string, innerPillHeight int32) int32 {
	w := internal.TextWidth(font, buttonName)
	if w <= innerPillHeight-20 {
		return innerPillHeight
	}
	return w + 20
}

func pillGroupWidth(font *ttf.Font, items []FooterHelpItem, outerPillHeight, innerPillMargin int32) int32 {
	scaleFactor := internal.GetScaleFactor()
	innerPillHeight := outerPillHeight - innerPillMargin*2
	gap := int32(float32(10) * scaleFactor)

	total := gap * 2
	for i, item := range items {
		total += innerPillWidth(font, item.ButtonName, innerPillHeight) + gap + internal.TextWidth(font, item.HelpText)
		if i < len(items)-1 {
			total += gap * 2
		}
	}
	return total
}

func renderPillGroup(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, startX, y, outerPillHeight, innerPillMargin int32) {
	if len(items) == 0 {
		return
	}

	theme := internal.GetTheme()
	scaleFactor := internal.GetScaleFactor()
	gap := int32(float32(10) * scaleFactor)
	innerPillHeight := outerPillHeight - innerPillMargin*2
	midY := y + outerPillHeight/2

	outer := &sdl.Rect{X: startX, Y: y, W: pillGroupWidth(font, items, outerPillHeight, innerPillMargin), H: outerPillHeight}
	internal.DrawRoundedRect(renderer, outer, outerPillHeight/2, theme.AccentColor)

	x := startX + gap
	for _, item := range items {
		w := innerPillWidth(font, item.ButtonName, innerPillHeight)
		inner := &sdl.Rect{X: x, Y: y + innerPillMargin, W: w, H: innerPillHeight}
		internal.DrawRoundedRect(renderer, inner, innerPillHeight/2, theme.HighlightColor)
		internal.RenderText(renderer, font, item.ButtonName, x+w/2, midY, theme.HintColor, 1, constants.TextAlignCenter)
		x += w + gap

		internal.RenderText(renderer, font, item.HelpText, x, midY, theme.TextColor, 1, constants.TextAlignLeft)
		x += internal.TextWidth(font, item.HelpText) + gap*2
	}
}
