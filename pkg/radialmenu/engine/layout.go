package engine

import "math"

const (
	// MinItemScale is the size of an item, relative to its full size, while collapsed at the center.
	MinItemScale = 0.3
	// MaxTriggerRotation is the trigger icon rotation in degrees when the menu is fully open.
	MaxTriggerRotation = 45.0
)

// ItemVisual holds the derived draw parameters of one item, relative to the trigger center.
type ItemVisual struct {
	OffsetX float64
	OffsetY float64
	Opacity float64
	Scale   float64
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ItemAngle returns the angle in radians of item i out of n.
// Index 0 sits at 12 o'clock and angles proceed clockwise in screen coordinates (y grows downward).
func ItemAngle(i, n int) float64 {
	return (2*math.Pi*float64(i))/float64(n) - math.Pi/2
}

// RestingOffset is the offset of item i when the menu is fully open.
func RestingOffset(i, n int, radius float64) (x, y float64) {
	theta := ItemAngle(i, n)
	return radius * math.Cos(theta), radius * math.Sin(theta)
}

// VisualAt derives the visual state of item i at progress p.
// Position moves on a straight line from the center to the resting point.
func VisualAt(i, n int, radius, p float64) ItemVisual {
	p = clampProgress(p)
	x, y := RestingOffset(i, n, radius)

	return ItemVisual{
		OffsetX: p * x,
		OffsetY: p * y,
		Opacity: p,
		Scale:   Lerp(MinItemScale, 1.0, p),
	}
}

// VisualsAt derives the visual state of all n items at progress p.
func VisualsAt(n int, radius, p float64) []ItemVisual {
	visuals := make([]ItemVisual, n)
	for i := range visuals {
		visuals[i] = VisualAt(i, n, radius, p)
	}
	return visuals
}

// TriggerRotationAt returns the trigger icon rotation in degrees at progress p.
func TriggerRotationAt(p float64) float64 {
	return Lerp(0, MaxTriggerRotation, clampProgress(p))
}

// HitTest returns the index of the item under (x, y), relative to the trigger center, or -1.
// itemRadius is the radius of an item at full scale. Invisible items are never hit, and later items win on overlap as they are drawn on top.
func HitTest(visuals []ItemVisual, itemRadius, x, y float64) int {
	for i := len(visuals) - 1; i >= 0; i-- {
		v := visuals[i]
		if v.Opacity <= 0 {
			continue
		}
		if math.Hypot(x-v.OffsetX, y-v.OffsetY) <= itemRadius*v.Scale {
			return i
		}
	}
	return -1
}
