package radialmenu

import (
	"math"
	"time"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/engine"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/i18n"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/internal"
	"github.com/tanema/gween/ease"
	"github.com/veandco/go-sdl2/sdl"
)

// RadialMenuSettings configures the radial menu component.
type RadialMenuSettings struct {
	// Title is drawn at the top of the screen when set
	Title string
	// Radius of the item circle in pixels (default: 30% of the shorter screen edge)
	Radius float64
	// TriggerX and TriggerY place the trigger button (default: screen center)
	TriggerX, TriggerY int32
	// ItemSize is the diameter of a fully open item (default: scales with the radius)
	ItemSize int32
	// StartOpen opens the menu as soon as the component is shown
	StartOpen bool
	// Duration of one open or close transition (default: 300ms)
	Duration time.Duration
	// Easing applied to each transition (default: ease.InOutQuad)
	Easing ease.TweenFunc
	// ConfirmButton opens the menu or selects the focused item (default: VirtualButtonA)
	ConfirmButton constants.VirtualButton
	// BackButton closes the menu, or leaves the component when the menu is closed (default: VirtualButtonB)
	BackButton      constants.VirtualButton
	FooterHelpItems []FooterHelpItem
}

// touchMouseID marks mouse events synthesized from touches, which arrive separately as finger events.
const touchMouseID = math.MaxUint32

type radialMenuController struct {
	window          *internal.Window
	menu            *engine.Menu
	items           []engine.ActionItem
	labels          []string
	title           string
	footerHelpItems []FooterHelpItem
	confirmButton   constants.VirtualButton
	backButton      constants.VirtualButton

	centerX, centerY int32
	itemRadius       float64
	triggerRadius    int32

	focusedIndex  int
	selected      *RadialMenuResult
	cancelled     bool
	inputDelay    time.Duration
	lastInputTime time.Time
}

// RadialMenu shows a trigger button that expands into a circle of actions.
// It returns once an action has been chosen and the menu has finished closing.
// Returns ErrCancelled if the user backs out while the menu is closed.
func RadialMenu(items []engine.ActionItem, settings RadialMenuSettings) (*RadialMenuResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	c := &radialMenuController{
		window:          window,
		items:           items,
		title:           settings.Title,
		footerHelpItems: settings.FooterHelpItems,
		confirmButton:   settings.ConfirmButton,
		backButton:      settings.BackButton,
		inputDelay:      constants.DefaultInputDelay,
		lastInputTime:   time.Now(),
	}

	if c.confirmButton == constants.VirtualButtonUnassigned {
		c.confirmButton = constants.VirtualButtonA
	}
	if c.backButton == constants.VirtualButtonUnassigned {
		c.backButton = constants.VirtualButtonB
	}

	c.layout(settings)

	radius := settings.Radius
	if radius == 0 {
		radius = defaultRadius(window.GetWidth(), window.GetHeight())
	}

	menu, err := engine.NewMenu(items, radius, engine.MenuOptions{
		Duration: settings.Duration,
		Easing:   settings.Easing,
		OnSelect: c.onSelect,
		Logger:   internal.GetInternalLogger(),
	})
	if err != nil {
		internal.GetInternalLogger().Error("Unable to build radial menu", "error", err)
		return nil, err
	}
	c.menu = menu

	if settings.ItemSize > 0 {
		c.itemRadius = float64(settings.ItemSize) / 2
	} else {
		c.itemRadius = defaultItemRadius(radius, len(items))
	}

	c.labels = make([]string, len(items))
	for i, item := range items {
		c.labels[i] = i18n.Localize(&i18n.Message{ID: "radial." + item.ID, Other: item.Label}, nil)
	}

	if settings.StartOpen {
		c.menu.Toggle()
	}

	lastFrame := time.Now()
	for {
		if !c.handleEvents() {
			break
		}

		now := time.Now()
		c.menu.Update(now.Sub(lastFrame))
		lastFrame = now

		if c.selected != nil && c.menu.State() == engine.StateClosed {
			break
		}

		c.render(renderer)
		sdl.Delay(constants.FrameDelay)
	}

	if c.cancelled {
		return nil, ErrCancelled
	}

	return c.selected, nil
}

func defaultRadius(width, height int32) float64 {
	return float64(internal.Min32(width, height)) * constants.DefaultRadiusRatio
}

// defaultItemRadius keeps neighbouring items from overlapping when fully open.
func defaultItemRadius(radius float64, n int) float64 {
	size := radius * 0.28
	if n > 1 {
		chord := 2 * radius * math.Sin(math.Pi/float64(n))
		size = math.Min(size, chord*0.45)
	}
	return math.Max(size, 12)
}

func (c *radialMenuController) layout(settings RadialMenuSettings) {
	w, h := c.window.GetWidth(), c.window.GetHeight()

	c.centerX, c.centerY = w/2, h/2
	if settings.TriggerX != 0 || settings.TriggerY != 0 {
		c.centerX, c.centerY = settings.TriggerX, settings.TriggerY
	}

	c.triggerRadius = int32(float32(44) * internal.GetScaleFactor())
}

func (c *radialMenuController) onSelect(item engine.ActionItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.selected = &RadialMenuResult{Item: item, Index: i}
			internal.GetInternalLogger().Debug("Radial menu item selected", "id", item.ID, "index", i)
			return
		}
	}
}

func (c *radialMenuController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.MouseButtonEvent:
			if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT || e.Which == touchMouseID {
				continue
			}
			c.handleTap(e.X, e.Y)

		case *sdl.TouchFingerEvent:
			if e.Type != sdl.FINGERDOWN {
				continue
			}
			c.handleTap(int32(e.X*float32(c.window.GetWidth())), int32(e.Y*float32(c.window.GetHeight())))

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.JoyButtonEvent, *sdl.JoyHatEvent:
			for inputEvent := processor.ProcessSDLEvent(event); inputEvent != nil; inputEvent = c.nextQueued(processor) {
				if !inputEvent.Pressed {
					continue
				}
				if time.Since(c.lastInputTime) < c.inputDelay {
					continue
				}
				c.lastInputTime = time.Now()

				if !c.handleButton(inputEvent.Button) {
					return false
				}
			}
		}
	}

	return true
}

func (c *radialMenuController) nextQueued(processor *internal.Processor) *internal.Event {
	if !processor.Pending() {
		return nil
	}
	return processor.ProcessSDLEvent(nil)
}

// handleButton returns false when the component should exit.
func (c *radialMenuController) handleButton(button constants.VirtualButton) bool {
	if c.selected != nil {
		return true
	}

	n := len(c.items)

	switch button {
	case constants.VirtualButtonLeft, constants.VirtualButtonUp:
		if c.menu.IsOpen() {
			c.focusedIndex = (c.focusedIndex - 1 + n) % n
		}
	case constants.VirtualButtonRight, constants.VirtualButtonDown:
		if c.menu.IsOpen() {
			c.focusedIndex = (c.focusedIndex + 1) % n
		}
	case c.confirmButton, constants.VirtualButtonStart:
		if c.menu.IsOpen() {
			c.menu.SelectItem(c.items[c.focusedIndex])
		} else {
			c.menu.Toggle()
		}
	case constants.VirtualButtonMenu:
		c.menu.Toggle()
	case c.backButton:
		if c.menu.IsOpen() {
			c.menu.TapScrim()
			return true
		}
		c.cancelled = true
		return false
	}

	return true
}

func (c *radialMenuController) handleTap(x, y int32) {
	if c.selected != nil {
		return
	}

	dx := float64(x - c.centerX)
	dy := float64(y - c.centerY)

	if math.Hypot(dx, dy) <= float64(c.triggerRadius) {
		c.menu.Toggle()
		return
	}

	if c.menu.IsOpen() {
		if i := engine.HitTest(c.menu.Visuals(), c.itemRadius, dx, dy); i >= 0 {
			c.focusedIndex = i
			c.menu.SelectItem(c.items[i])
			return
		}
	}

	if c.menu.ScrimVisible() {
		c.menu.TapScrim()
	}
}

func (c *radialMenuController) render(renderer *sdl.Renderer) {
	theme := internal.GetTheme()

	c.window.RenderBackground()

	if c.title != "" {
		internal.RenderText(renderer, internal.Fonts.LargeFont, c.title, 40, 60, theme.TextColor, 1, constants.TextAlignLeft)
	}

	if c.menu.ScrimVisible() {
		scrim := internal.WithOpacity(theme.ScrimColor, c.menu.ScrimOpacity())
		renderer.SetDrawColor(scrim.R, scrim.G, scrim.B, scrim.A)
		renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: c.window.GetWidth(), H: c.window.GetHeight()})
	}

	c.renderItems(renderer)
	c.renderTrigger(renderer)

	renderFooter(renderer, internal.Fonts.TinyFont, c.footerHelpItems, 20)

	renderer.Present()
}

func (c *radialMenuController) renderItems(renderer *sdl.Renderer) {
	theme := internal.GetTheme()

	for i, v := range c.menu.Visuals() {
		if v.Opacity <= 0 {
			continue
		}

		x := c.centerX + int32(math.Round(v.OffsetX))
		y := c.centerY + int32(math.Round(v.OffsetY))
		r := int32(math.Round(c.itemRadius * v.Scale))

		if i == c.focusedIndex && c.menu.IsOpen() {
			internal.DrawRing(renderer, x, y, r+2, 4, internal.WithOpacity(theme.HighlightColor, v.Opacity))
		}

		accent := internal.WithOpacity(internal.FromRGBA(c.items[i].AccentColor), v.Opacity)
		internal.DrawFilledCircle(renderer, x, y, r, accent)

		text := internal.WithOpacity(theme.TextColor, v.Opacity)
		internal.RenderText(renderer, internal.Fonts.MediumFont, c.items[i].IconToken, x, y, text, v.Scale, constants.TextAlignCenter)
		internal.RenderText(renderer, internal.Fonts.TinyFont, c.labels[i], x, y+r+int32(14*v.Scale), text, v.Scale, constants.TextAlignCenter)
	}
}

func (c *radialMenuController) renderTrigger(renderer *sdl.Renderer) {
	theme := internal.GetTheme()

	internal.DrawFilledCircle(renderer, c.centerX, c.centerY, c.triggerRadius, theme.AccentColor)
	internal.DrawRotatedPlus(
		renderer,
		c.centerX,
		c.centerY,
		float64(c.triggerRadius)*0.45,
		internal.Max32(3, c.triggerRadius/8),
		c.menu.TriggerRotation(),
		theme.TriggerIconColor,
	)
}
