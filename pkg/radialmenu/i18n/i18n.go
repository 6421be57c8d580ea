package i18n

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func use(bundle *i18n.Bundle, langs ...string) {
	i = &I18N{localizer: i18n.NewLocalizer(bundle, langs...), bundle: bundle}
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return err
		}
	}

	use(bundle, language.English.String())
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	use(bundle, language.English.String())
	return nil
}

func SetLanguage(lang language.Tag) {
	if i == nil {
		use(newBundle(), lang.String())
		return
	}
	use(i.bundle, lang.String())
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Localize returns the translation of message for the current language.
// The message's Other text is returned when no translation exists or i18n was never initialized.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	if i == nil {
		return message.Other
	}

	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
	if err != nil {
		return message.Other
	}
	return msg
}

// LocalizePlural is Localize with plural form selection by count.
func LocalizePlural(message *Message, count int, templateData map[string]interface{}) string {
	if message == nil {
		return ""
	}
	if i == nil {
		return message.Other
	}

	msg, err := i.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		PluralCount:    count,
		TemplateData:   templateData,
	})
	if err != nil {
		return message.Other
	}
	return msg
}
