package i18n

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/ZeiZel/self-hosted/config"
)

// LoadDictionary reads a dictionary file for locale. format is "yaml", "yml" or "toml".
func LoadDictionary(locale Locale, filename, format string) (*TextBundle, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	b, err := ParseDictionary(locale, format, data)
	if err != nil {
		return nil, config.WithSource(err, filename, "")
	}
	return b, nil
}

// ParseDictionary flattens a nested dictionary into dotted keys:
//
//	hero:
//	  title: Self-hosted Infrastructure
//
// becomes "hero.title". Empty values are rejected.
func ParseDictionary(locale Locale, format string, data []byte) (*TextBundle, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if locale == "" {
		return nil, config.Invalid("dictionary", "locale", "is required")
	}

	parser := goi18n.NewBundle(language.Make(string(locale)))
	parser.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	parser.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	parser.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// go-i18n takes the language and format from the file name.
	mf, err := parser.ParseMessageFileBytes(data, string(locale)+"."+format)
	if err != nil {
		return nil, &config.ConfigurationError{Source: "dictionary", Err: err}
	}

	messages := make(map[string]string, len(mf.Messages))
	for _, m := range mf.Messages {
		if strings.TrimSpace(m.Other) == "" {
			return nil, config.Invalid("dictionary", m.ID, "empty translation")
		}
		messages[m.ID] = m.Other
	}
	if len(messages) == 0 {
		return nil, config.Invalid("dictionary", "", "no translations for %q", locale)
	}

	return NewTextBundle(locale, messages), nil
}
