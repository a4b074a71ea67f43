package i18n

// Locale identifies one of the site's supported languages, e.g. "en" or "ru".
type Locale string

func (l Locale) String() string { return string(l) }

// LocaleSource is the host's current-locale signal.
type LocaleSource interface {
	CurrentLocale() Locale
}

// LocaleFunc adapts a function to LocaleSource.
type LocaleFunc func() Locale

func (f LocaleFunc) CurrentLocale() Locale { return f() }

// Resolve returns the bundle registered for requested, or the default locale's bundle
// when requested has none. bundles must contain defaultLocale; Catalog enforces that at
// construction so Resolve never returns nil for a catalog's own bundles.
func Resolve(requested Locale, bundles map[Locale]*TextBundle, defaultLocale Locale) *TextBundle {
	if b, ok := bundles[requested]; ok {
		return b
	}
	return bundles[defaultLocale]
}
