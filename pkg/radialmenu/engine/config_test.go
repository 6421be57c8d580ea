package engine

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const createMenuConfig = `
radius = 120
duration_ms = 250

[[items]]
id = "post"
label = "Post"
icon = "✎"
color = "#FF5A5F"

[[items]]
label = "Story"
icon = "◎"
color = "00A699"
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	config, err := ParseConfig([]byte(createMenuConfig))
	require.NoError(t, err)
	require.Equal(t, 120.0, config.Radius)
	require.Equal(t, 250*time.Millisecond, config.Duration())
	require.Len(t, config.Items, 2)

	require.Equal(t, "post", config.Items[0].ID)
	_, err = uuid.Parse(config.Items[1].ID)
	require.NoError(t, err, "missing ids are generated")

	items, err := config.ActionItems()
	require.NoError(t, err)
	require.Equal(t, ActionItem{
		ID:          "post",
		Label:       "Post",
		IconToken:   "✎",
		AccentColor: color.RGBA{R: 0xFF, G: 0x5A, B: 0x5F, A: 255},
	}, items[0])
	require.Equal(t, color.RGBA{R: 0x00, G: 0xA6, B: 0x99, A: 255}, items[1].AccentColor)

	m, err := NewMenu(items, config.Radius, MenuOptions{Duration: config.Duration()})
	require.NoError(t, err)
	require.Len(t, m.Items(), 2)
}

func TestParseConfigRejectsMalformedToml(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("radius = [oops"))
	require.Error(t, err)
}

func TestActionItemsRejectsBadColor(t *testing.T) {
	t.Parallel()

	config := &Config{Items: []ItemConfig{{ID: "a", Label: "A", Color: "#12345"}}}
	_, err := config.ActionItems()
	require.ErrorIs(t, err, ErrConfiguration)

	config.Items[0].Color = "zzzzzz"
	_, err = config.ActionItems()
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestEmptyConfigCannotBuildMenu(t *testing.T) {
	t.Parallel()

	config, err := ParseConfig([]byte("radius = 90"))
	require.NoError(t, err)
	require.Zero(t, config.Duration())

	items, err := config.ActionItems()
	require.NoError(t, err)

	_, err = NewMenu(items, config.Radius, MenuOptions{})
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "menu.toml")
	require.NoError(t, os.WriteFile(path, []byte(createMenuConfig), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, config.Items, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	c, err := ParseHexColor("")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)

	c, err = ParseHexColor(" #008080 ")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 0, G: 0x80, B: 0x80, A: 255}, c)
}
