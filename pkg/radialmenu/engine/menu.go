package engine

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/constants"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/atomic"
)

// State is the discrete phase of the menu.
type State int32

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// MenuOptions configures a Menu.
type MenuOptions struct {
	// Duration of a single transition (default: 300ms)
	Duration time.Duration
	// Easing applied to progress over time (default: ease.InOutQuad)
	Easing ease.TweenFunc
	// OnSelect receives the item chosen through SelectItem
	OnSelect func(ActionItem)
	// Logger receives transition logs (default: discarded)
	Logger *slog.Logger
}

// Menu owns the open/closed state and animation progress of one radial menu.
//
// Toggle, SelectItem, TapScrim and Update must be called from the UI loop.
// Progress, State, Visuals and VisualState are safe to call from any goroutine.
type Menu struct {
	items    []ActionItem
	indexOf  map[string]int
	radius   float64
	duration time.Duration
	easing   ease.TweenFunc
	onSelect func(ActionItem)
	logger   *slog.Logger

	progress *atomic.Float64
	state    *atomic.Int32
	target   float64
	tween    *gween.Tween
}

// NewMenu builds a closed menu with progress 0.
// It fails with a ConfigurationError when items is empty, an item id is empty or repeated, or radius is not a positive number.
func NewMenu(items []ActionItem, radius float64, options MenuOptions) (*Menu, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return nil, configErrorf("radius must be a positive number, got %v", radius)
	}

	owned := make([]ActionItem, len(items))
	copy(owned, items)

	indexOf := make(map[string]int, len(owned))
	for i, item := range owned {
		indexOf[item.ID] = i
	}

	m := &Menu{
		items:    owned,
		indexOf:  indexOf,
		radius:   radius,
		duration: options.Duration,
		easing:   options.Easing,
		onSelect: options.OnSelect,
		logger:   options.Logger,
		progress: atomic.NewFloat64(0),
		state:    atomic.NewInt32(int32(StateClosed)),
	}

	if m.duration <= 0 {
		m.duration = constants.DefaultMenuAnimationDuration
	}
	if m.easing == nil {
		m.easing = ease.InOutQuad
	}
	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return m, nil
}

func (m *Menu) Items() []ActionItem {
	items := make([]ActionItem, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Menu) Radius() float64 {
	return m.radius
}

func (m *Menu) Progress() float64 {
	return m.progress.Load()
}

func (m *Menu) State() State {
	return State(m.state.Load())
}

// IsOpen reports whether the menu is open or heading there.
func (m *Menu) IsOpen() bool {
	s := m.State()
	return s == StateOpen || s == StateOpening
}

// Settled reports whether no transition is in flight.
func (m *Menu) Settled() bool {
	return m.tween == nil
}

// Toggle flips the target state and animates progress toward it from wherever it currently sits.
// A transition already in flight is replaced, not restarted.
func (m *Menu) Toggle() {
	switch m.State() {
	case StateClosed, StateClosing:
		m.startTransition(StateOpening, 1)
	default:
		m.startTransition(StateClosing, 0)
	}
}

// SelectItem closes the menu and hands item to the OnSelect callback.
// It does nothing and returns false unless the menu is open or opening and item belongs to it.
func (m *Menu) SelectItem(item ActionItem) bool {
	if !m.IsOpen() {
		m.logger.Debug("Ignoring selection while menu is not open", "id", item.ID, "state", m.State().String())
		return false
	}

	if _, ok := m.indexOf[item.ID]; !ok {
		m.logger.Warn("Ignoring selection of unknown action item", "id", item.ID)
		return false
	}

	m.Toggle()

	if m.onSelect != nil {
		m.onSelect(m.items[m.indexOf[item.ID]])
	}

	return true
}

// TapScrim closes the menu when it is open or opening, as a tap outside every item would.
func (m *Menu) TapScrim() bool {
	if !m.IsOpen() {
		return false
	}
	m.Toggle()
	return true
}

// ScrimVisible reports whether the dimmed backdrop should be drawn.
func (m *Menu) ScrimVisible() bool {
	return m.Progress() > 0 || m.State() == StateOpening
}

// ScrimOpacity is the scrim opacity relative to its fully open value.
func (m *Menu) ScrimOpacity() float64 {
	return m.Progress()
}

// TriggerRotation returns the trigger icon rotation in degrees.
func (m *Menu) TriggerRotation() float64 {
	return TriggerRotationAt(m.Progress())
}

// Visuals returns the visual state of every item in menu order.
func (m *Menu) Visuals() []ItemVisual {
	return VisualsAt(len(m.items), m.radius, m.Progress())
}

// VisualState maps each item id to its visual state at the current progress.
func (m *Menu) VisualState() map[string]ItemVisual {
	visuals := m.Visuals()
	state := make(map[string]ItemVisual, len(visuals))
	for i, item := range m.items {
		state[item.ID] = visuals[i]
	}
	return state
}

// Update advances the in-flight transition by dt and commits the open or closed state once it reaches its target.
func (m *Menu) Update(dt time.Duration) {
	if m.tween == nil {
		return
	}

	current, finished := m.tween.Update(float32(dt.Seconds()))
	p := clampProgress(float64(current))

	if finished || math.Abs(p-m.target) < constants.ProgressEpsilon {
		m.settle()
		return
	}

	m.progress.Store(p)
}

func (m *Menu) startTransition(state State, target float64) {
	from := m.Progress()

	m.target = target
	m.state.Store(int32(state))
	m.tween = gween.New(float32(from), float32(target), float32(m.duration.Seconds()), m.easing)

	m.logger.Debug("Radial menu transition started",
		"state", state.String(),
		"from", from,
		"target", target,
	)
}

func (m *Menu) settle() {
	m.tween = nil
	m.progress.Store(m.target)

	if m.target >= 1 {
		m.state.Store(int32(StateOpen))
	} else {
		m.state.Store(int32(StateClosed))
	}

	m.logger.Debug("Radial menu transition settled", "state", m.State().String())
}
