// Package i18n localizes interface strings. The letter itself is always
// Danish; this covers labels, notices and errors shown around it, in the
// user's own language (Ukrainian, English or Danish).
package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		for _, name := range []string{"locales/active.en.toml", "locales/active.uk.toml", "locales/active.da.toml"} {
			if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
				// Embedded files; a failure here is a packaging bug and the
				// English fallback still works.
				continue
			}
		}
	})
	return bundle
}

// Localizer returns a localizer for the given UI language, falling back to
// English for anything unknown.
func Localizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = "en"
	}
	return i18n.NewLocalizer(loadBundle(), lang, "en")
}

// T translates a message ID. Unknown IDs come back verbatim so a missing
// translation never hides information.
func T(loc *i18n.Localizer, messageID string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// TWithData translates a message ID with template data.
func TWithData(loc *i18n.Localizer, messageID string, data map[string]any) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: data})
	if err != nil {
		return messageID
	}
	return msg
}
