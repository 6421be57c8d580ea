package engine

import "image/color"

// ActionItem is one entry of the radial menu.
// Items are laid out clockwise from 12 o'clock in the order they are supplied.
type ActionItem struct {
	ID          string
	Label       string
	IconToken   string
	AccentColor color.RGBA
}

func validateItems(items []ActionItem) error {
	if len(items) == 0 {
		return configErrorf("at least one action item is required")
	}

	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return configErrorf("action item %d has an empty id", i)
		}
		if first, ok := seen[item.ID]; ok {
			return configErrorf("action items %d and %d share id %q", first, i, item.ID)
		}
		seen[item.ID] = i
	}

	return nil
}
