package render

import (
	"strings"

	"github.com/ZeiZel/self-hosted/content"
	"github.com/ZeiZel/self-hosted/i18n"
)

// Links turns site paths into hrefs for one locale. The default locale lives at the
// base URL, other locales under /<locale>/.
type Links struct {
	BaseURL string
	Default i18n.Locale
	Locale  i18n.Locale
}

func (l Links) Href(path string) string {
	if content.IsExternal(path) {
		return path
	}
	return l.base() + l.Prefix(l.Locale) + path
}

// Prefix is "" for the default locale and "/<locale>" otherwise.
func (l Links) Prefix(locale i18n.Locale) string {
	if locale == l.Default {
		return ""
	}
	return "/" + string(locale)
}

// In returns l switched to locale.
func (l Links) In(locale i18n.Locale) Links {
	l.Locale = locale
	return l
}

func (l Links) base() string {
	return strings.TrimSuffix(l.BaseURL, "/")
}

// Alternate is the current page in another locale.
type Alternate struct {
	Locale   string
	Label    string
	HTMLLang string
	Href     string
	Active   bool
}
