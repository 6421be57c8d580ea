package main

import (
	_ "embed"
	"errors"
	"os"

	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/engine"
	"github.com/BrandonKowalski/radialmenu/pkg/radialmenu/i18n"
	"github.com/joho/godotenv"
)

//go:embed resources/create_menu.toml
var defaultMenuConfig []byte

//go:embed resources/active.es.toml
var spanishMessages []byte

const (
	menuConfigEnvVar = "RADIAL_MENU_CONFIG"
	languageEnvVar   = "RADIAL_LANGUAGE"
)

func loadMenuConfig() (*engine.Config, error) {
	if path := os.Getenv(menuConfigEnvVar); path != "" {
		return engine.LoadConfig(path)
	}
	return engine.ParseConfig(defaultMenuConfig)
}

func main() {
	// a missing .env is fine, the environment may already carry the settings
	envErr := godotenv.Load()

	radialmenu.Init(radialmenu.Options{
		WindowTitle:    "Create",
		ShowBackground: false,
		IsNextUI:       os.Getenv("NEXTUI") != "",
		LogFilename:    "radial-demo.log",
	})
	defer radialmenu.Close()

	logger := radialmenu.GetLogger()
	radialmenu.SetRawLogLevel(os.Getenv("LOG_LEVEL"))

	if envErr != nil {
		logger.Debug("No .env file loaded", "error", envErr)
	}

	if err := i18n.InitI18NFromBytes([]i18n.MessageFile{{Name: "active.es.toml", Content: spanishMessages}}); err != nil {
		logger.Error("Unable to load translations", "error", err)
	}
	if code := os.Getenv(languageEnvVar); code != "" {
		if err := i18n.SetWithCode(code); err != nil {
			logger.Warn("Unknown language code", "code", code, "error", err)
		}
	}

	config, err := loadMenuConfig()
	if err != nil {
		logger.Error("Unable to load menu config", "error", err)
		os.Exit(1)
	}

	items, err := config.ActionItems()
	if err != nil {
		logger.Error("Invalid menu config", "error", err)
		os.Exit(1)
	}

	settings := radialmenu.RadialMenuSettings{
		Title:    i18n.Localize(&i18n.Message{ID: "demo.title", Other: "Create"}, nil),
		Radius:   config.Radius,
		Duration: config.Duration(),
		FooterHelpItems: []radialmenu.FooterHelpItem{
			{ButtonName: "B", HelpText: "Back"},
			{ButtonName: "A", HelpText: "Open / Select"},
		},
	}

	for {
		result, err := radialmenu.RadialMenu(items, settings)
		if errors.Is(err, radialmenu.ErrCancelled) {
			logger.Info("Create menu dismissed")
			return
		}
		if err != nil {
			logger.Error("Radial menu failed", "error", err)
			os.Exit(1)
		}

		logger.Info("Create action chosen", "id", result.Item.ID, "label", result.Item.Label, "index", result.Index)
	}
}
