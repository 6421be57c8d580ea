package engine

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func testItems(n int) []ActionItem {
	ids := []string{"post", "story", "reel", "live", "poll", "event", "note"}
	items := make([]ActionItem, n)
	for i := range items {
		items[i] = ActionItem{
			ID:          ids[i%len(ids)] + string(rune('a'+i/len(ids))),
			Label:       ids[i%len(ids)],
			IconToken:   "+",
			AccentColor: color.RGBA{R: uint8(i * 30), G: 90, B: 200, A: 255},
		}
	}
	return items
}

func newLinearMenu(t *testing.T, n int, onSelect func(ActionItem)) *Menu {
	t.Helper()

	m, err := NewMenu(testItems(n), 100, MenuOptions{
		Duration: 300 * time.Millisecond,
		Easing:   ease.Linear,
		OnSelect: onSelect,
	})
	require.NoError(t, err)
	return m
}

func TestNewMenuRejectsEmptyItems(t *testing.T) {
	t.Parallel()

	for _, items := range [][]ActionItem{nil, {}} {
		m, err := NewMenu(items, 100, MenuOptions{})
		require.Nil(t, m)
		require.ErrorIs(t, err, ErrConfiguration)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		require.NotEmpty(t, cfgErr.Reason)
	}
}

func TestNewMenuRejectsBadRadius(t *testing.T) {
	t.Parallel()

	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		m, err := NewMenu(testItems(3), radius, MenuOptions{})
		require.Nil(t, m, "radius %v", radius)
		require.ErrorIs(t, err, ErrConfiguration, "radius %v", radius)
	}
}

func TestNewMenuRejectsBadIDs(t *testing.T) {
	t.Parallel()

	items := testItems(3)
	items[2].ID = items[0].ID
	_, err := NewMenu(items, 100, MenuOptions{})
	require.ErrorIs(t, err, ErrConfiguration)

	items = testItems(2)
	items[1].ID = ""
	_, err = NewMenu(items, 100, MenuOptions{})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestNewMenuStartsClosed(t *testing.T) {
	t.Parallel()

	m, err := NewMenu(testItems(4), 60, MenuOptions{})
	require.NoError(t, err)
	require.Equal(t, StateClosed, m.State())
	require.Zero(t, m.Progress())
	require.True(t, m.Settled())
	require.False(t, m.ScrimVisible())
	require.Zero(t, m.TriggerRotation())
}

func TestMenuOwnsItsItems(t *testing.T) {
	t.Parallel()

	items := testItems(3)
	m, err := NewMenu(items, 100, MenuOptions{})
	require.NoError(t, err)

	items[0].Label = "changed"
	require.Equal(t, "post", m.Items()[0].Label)

	copied := m.Items()
	copied[1].Label = "changed"
	require.Equal(t, "story", m.Items()[1].Label)
}

func TestToggleOpensAndCloses(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 5, nil)

	m.Toggle()
	require.Equal(t, StateOpening, m.State())
	require.True(t, m.ScrimVisible())
	require.False(t, m.Settled())

	m.Update(300 * time.Millisecond)
	require.Equal(t, StateOpen, m.State())
	require.Equal(t, 1.0, m.Progress())
	require.True(t, m.Settled())
	require.InDelta(t, 45, m.TriggerRotation(), 1e-12)

	m.Toggle()
	require.Equal(t, StateClosing, m.State())

	m.Update(300 * time.Millisecond)
	require.Equal(t, StateClosed, m.State())
	require.Equal(t, 0.0, m.Progress())
	require.False(t, m.ScrimVisible())
}

func TestProgressAdvancesPerFrame(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 5, nil)
	m.Toggle()

	last := m.Progress()
	for m.State() == StateOpening {
		m.Update(16 * time.Millisecond)
		require.GreaterOrEqual(t, m.Progress(), last)
		last = m.Progress()
	}

	require.Equal(t, StateOpen, m.State())
	require.Equal(t, 1.0, m.Progress())
}

func TestEvenTogglesSettleClosed(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 3, nil)

	m.Toggle()
	m.Update(100 * time.Millisecond)
	m.Toggle()
	m.Update(50 * time.Millisecond)
	m.Toggle()
	m.Toggle()
	m.Update(time.Second)

	require.Equal(t, StateClosed, m.State())
	require.Equal(t, 0.0, m.Progress())

	for i := 0; i < 6; i++ {
		m.Toggle()
		m.Update(time.Second)
	}
	require.Equal(t, StateClosed, m.State())
	require.Equal(t, 0.0, m.Progress())
}

func TestReversalContinuesFromCurrentProgress(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 5, nil)

	m.Toggle()
	m.Update(150 * time.Millisecond)
	mid := m.Progress()
	require.InDelta(t, 0.5, mid, 1e-3)
	require.Equal(t, StateOpening, m.State())

	m.Toggle()
	require.Equal(t, StateClosing, m.State())
	require.Equal(t, mid, m.Progress())

	m.Update(30 * time.Millisecond)
	require.Less(t, m.Progress(), mid)
	require.InDelta(t, 0.45, m.Progress(), 1e-3)

	m.Update(300 * time.Millisecond)
	require.Equal(t, StateClosed, m.State())
	require.Equal(t, 0.0, m.Progress())
}

func TestReversalWhileClosing(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 5, nil)
	m.Toggle()
	m.Update(time.Second)

	m.Toggle()
	m.Update(150 * time.Millisecond)
	mid := m.Progress()
	require.InDelta(t, 0.5, mid, 1e-3)

	m.Toggle()
	require.Equal(t, StateOpening, m.State())
	require.Equal(t, mid, m.Progress())

	m.Update(30 * time.Millisecond)
	require.Greater(t, m.Progress(), mid)

	m.Update(time.Second)
	require.Equal(t, StateOpen, m.State())
	require.Equal(t, 1.0, m.Progress())
}

func TestSelectItemWhileClosedIsNoop(t *testing.T) {
	t.Parallel()

	called := false
	m := newLinearMenu(t, 5, func(ActionItem) { called = true })

	require.False(t, m.SelectItem(m.Items()[0]))
	require.False(t, called)
	require.Equal(t, StateClosed, m.State())
	require.Zero(t, m.Progress())
	require.True(t, m.Settled())
}

func TestSelectItemWhileOpeningClosesAndEmits(t *testing.T) {
	t.Parallel()

	var selected []ActionItem
	m := newLinearMenu(t, 5, func(item ActionItem) { selected = append(selected, item) })

	m.Toggle()
	m.Update(100 * time.Millisecond)
	before := m.Progress()

	require.True(t, m.SelectItem(m.Items()[2]))
	require.Equal(t, []ActionItem{m.Items()[2]}, selected)
	require.Equal(t, StateClosing, m.State())
	require.Equal(t, before, m.Progress())

	m.Update(time.Second)
	require.Equal(t, StateClosed, m.State())
}

func TestSelectItemWhileOpen(t *testing.T) {
	t.Parallel()

	var selected ActionItem
	m := newLinearMenu(t, 4, func(item ActionItem) { selected = item })
	m.Toggle()
	m.Update(time.Second)

	require.True(t, m.SelectItem(m.Items()[3]))
	require.Equal(t, m.Items()[3].ID, selected.ID)
	require.Equal(t, StateClosing, m.State())
}

func TestSelectItemWhileClosingIsNoop(t *testing.T) {
	t.Parallel()

	calls := 0
	m := newLinearMenu(t, 4, func(ActionItem) { calls++ })
	m.Toggle()
	m.Update(time.Second)
	m.Toggle()
	m.Update(50 * time.Millisecond)

	require.False(t, m.SelectItem(m.Items()[0]))
	require.Zero(t, calls)
	require.Equal(t, StateClosing, m.State())
}

func TestSelectUnknownItemIsNoop(t *testing.T) {
	t.Parallel()

	calls := 0
	m := newLinearMenu(t, 4, func(ActionItem) { calls++ })
	m.Toggle()
	m.Update(time.Second)

	require.False(t, m.SelectItem(ActionItem{ID: "missing"}))
	require.Zero(t, calls)
	require.Equal(t, StateOpen, m.State())
}

func TestTapScrim(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 3, nil)
	require.False(t, m.TapScrim())
	require.Equal(t, StateClosed, m.State())

	m.Toggle()
	m.Update(time.Second)
	require.True(t, m.ScrimVisible())
	require.Equal(t, 1.0, m.ScrimOpacity())

	require.True(t, m.TapScrim())
	require.Equal(t, StateClosing, m.State())
	require.True(t, m.ScrimVisible())

	require.False(t, m.TapScrim())
	require.Equal(t, StateClosing, m.State())

	m.Update(time.Second)
	require.False(t, m.ScrimVisible())
}

func TestVisualStateMidTransition(t *testing.T) {
	t.Parallel()

	m := newLinearMenu(t, 5, nil)
	m.Toggle()
	m.Update(90 * time.Millisecond)

	p := m.Progress()
	state := m.VisualState()
	require.Len(t, state, 5)

	expected := VisualsAt(5, 100, p)
	for i, item := range m.Items() {
		require.Equal(t, expected[i], state[item.ID])
		require.InDelta(t, p, state[item.ID].Opacity, 1e-12)
	}

	// reading has no side effects
	require.Equal(t, p, m.Progress())
	require.Equal(t, StateOpening, m.State())
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	m, err := NewMenu(testItems(2), 40, MenuOptions{})
	require.NoError(t, err)

	m.Toggle()
	m.Update(200 * time.Millisecond)
	require.Equal(t, StateOpening, m.State())
	require.InDelta(t, 1-2*(1.0/3)*(1.0/3), m.Progress(), 1e-3)

	m.Update(101 * time.Millisecond)
	require.Equal(t, StateOpen, m.State())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "closed", StateClosed.String())
	require.Equal(t, "opening", StateOpening.String())
	require.Equal(t, "open", StateOpen.String())
	require.Equal(t, "closing", StateClosing.String())
	require.Equal(t, "unknown", State(42).String())
}
