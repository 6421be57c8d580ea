package radialmenu

import (
	"errors"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/engine"
)

var (
	ErrCancelled = errors.New("operation cancelled by user")
)

// RadialMenuResult is the standardized return type for the RadialMenu component
type RadialMenuResult struct {
	Item  engine.ActionItem
	Index int // Position of Item in the list passed to RadialMenu
}
