package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/ZeiZel/self-hosted/config"
)

// Catalog is the closed set of supported locales and their bundles.
type Catalog struct {
	defaultLocale Locale
	supported     []Locale
	bundles       map[Locale]*TextBundle

	// matchOrder[i] is the locale for the i-th tag given to matcher; index 0 is the default.
	matchOrder []Locale
	matcher    language.Matcher
}

// NewCatalog builds a catalog for supported (in display order). Every supported locale,
// the default included, needs a bundle.
func NewCatalog(defaultLocale Locale, bundles map[Locale]*TextBundle, supported ...Locale) (*Catalog, error) {
	if len(supported) == 0 {
		supported = []Locale{defaultLocale}
	}

	c := &Catalog{
		defaultLocale: defaultLocale,
		supported:     make([]Locale, 0, len(supported)),
		bundles:       make(map[Locale]*TextBundle, len(supported)),
	}

	hasDefault := false
	for _, l := range supported {
		if _, dup := c.bundles[l]; dup {
			return nil, config.Invalid("locales", string(l), "listed twice")
		}
		b, ok := bundles[l]
		if !ok || b == nil {
			return nil, config.Invalid("locales", string(l), "no text bundle")
		}
		if b.Locale() != l {
			return nil, config.Invalid("locales", string(l), "bundle is registered for %q", b.Locale())
		}
		c.supported = append(c.supported, l)
		c.bundles[l] = b
		if l == defaultLocale {
			hasDefault = true
		}
	}
	if !hasDefault {
		return nil, config.Invalid("locales", string(defaultLocale), "default locale is not supported")
	}

	tags := []language.Tag{language.Make(string(defaultLocale))}
	c.matchOrder = []Locale{defaultLocale}
	for _, l := range c.supported {
		if l == defaultLocale {
			continue
		}
		tags = append(tags, language.Make(string(l)))
		c.matchOrder = append(c.matchOrder, l)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

func (c *Catalog) Default() Locale { return c.defaultLocale }

// Supported returns the supported locales in configured order.
func (c *Catalog) Supported() []Locale {
	out := make([]Locale, len(c.supported))
	copy(out, c.supported)
	return out
}

func (c *Catalog) IsSupported(l Locale) bool {
	_, ok := c.bundles[l]
	return ok
}

// Resolve never returns nil: unknown locales get the default bundle.
func (c *Catalog) Resolve(l Locale) *TextBundle {
	return Resolve(l, c.bundles, c.defaultLocale)
}

// Bundles returns the locale to bundle map. Callers must not modify it.
func (c *Catalog) Bundles() map[Locale]*TextBundle { return c.bundles }

// Parse normalizes s ("RU", " ru ") and reports whether it names a supported locale.
func (c *Catalog) Parse(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	if c.IsSupported(l) {
		return l, true
	}
	return c.defaultLocale, false
}

// Negotiate picks the best supported locale for an Accept-Language header.
func (c *Catalog) Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return c.defaultLocale
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(c.matchOrder) {
		return c.defaultLocale
	}
	return c.matchOrder[idx]
}
