package engine

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Config is the on-disk description of a radial menu.
type Config struct {
	Radius     float64      `toml:"radius"`
	DurationMs int          `toml:"duration_ms"`
	Items      []ItemConfig `toml:"items"`
}

type ItemConfig struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Icon  string `toml:"icon"`
	Color string `toml:"color"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse menu config: %w", err)
	}

	for i := range config.Items {
		if config.Items[i].ID == "" {
			config.Items[i].ID = uuid.NewString()
		}
	}

	return &config, nil
}

// Duration returns the configured transition duration, or zero when unset.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// ActionItems converts the configured items, in file order.
func (c *Config) ActionItems() ([]ActionItem, error) {
	items := make([]ActionItem, 0, len(c.Items))
	for i, ic := range c.Items {
		accent, err := ParseHexColor(ic.Color)
		if err != nil {
			return nil, configErrorf("item %d (%s): %v", i, ic.ID, err)
		}
		items = append(items, ActionItem{
			ID:          ic.ID,
			Label:       ic.Label,
			IconToken:   ic.Icon,
			AccentColor: accent,
		})
	}
	return items, nil
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB". An empty string yields opaque white.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q must have six hex digits", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not hex: %w", s, err)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
