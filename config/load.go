package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const manifestSource = "manifest"

func LoadManifest(filename string) (*SiteManifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var manifest SiteManifest
	err = yaml.UnmarshalStrict(data, &manifest)
	if err != nil {
		return nil, &ConfigurationError{Source: filename, Err: err}
	}

	manifest.applyDefaults()
	if err := manifest.Validate(); err != nil {
		return nil, WithSource(err, filename, "")
	}

	return &manifest, nil
}

func (m *SiteManifest) applyDefaults() {
	if m.BaseURL == "" {
		m.BaseURL = "/"
	}
	if !strings.HasPrefix(m.BaseURL, "/") {
		m.BaseURL = "/" + m.BaseURL
	}
	if !strings.HasSuffix(m.BaseURL, "/") {
		m.BaseURL += "/"
	}
	if m.Content == "" {
		m.Content = "content.yaml"
	}
	for i := range m.Locales {
		if m.Locales[i].Direction == "" {
			m.Locales[i].Direction = "ltr"
		}
		if m.Locales[i].HTMLLang == "" {
			m.Locales[i].HTMLLang = m.Locales[i].Code
		}
	}
	for i := range m.Translations {
		if m.Translations[i].SourceType == "" {
			ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(m.Translations[i].Source)), ".")
			m.Translations[i].SourceType = ext
		}
	}
	if len(m.Routes) == 0 {
		m.Routes = []Route{{Path: "/", Page: PageHome}, {Path: "/about", Page: PageAbout}}
	}
}

// Validate checks the manifest for missing or contradictory values.
func (m *SiteManifest) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return Invalid(manifestSource, "title", "is required")
	}
	if m.Origin != "" {
		u, err := url.Parse(m.Origin)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Invalid(manifestSource, "origin", "%q is not an absolute URL", m.Origin)
		}
	}
	if len(m.Locales) == 0 {
		return Invalid(manifestSource, "locales", "at least one locale is required")
	}

	seen := map[string]struct{}{}
	for i, l := range m.Locales {
		if l.Code == "" {
			return Invalid(manifestSource, indexed("locales", i)+".code", "is required")
		}
		if _, dup := seen[l.Code]; dup {
			return Invalid(manifestSource, indexed("locales", i)+".code", "duplicate locale %q", l.Code)
		}
		seen[l.Code] = struct{}{}
		if _, err := language.Parse(l.HTMLLang); err != nil {
			return Invalid(manifestSource, indexed("locales", i)+".html_lang", "%q is not a BCP 47 tag", l.HTMLLang)
		}
		if l.Direction != "ltr" && l.Direction != "rtl" {
			return Invalid(manifestSource, indexed("locales", i)+".direction", "must be ltr or rtl, got %q", l.Direction)
		}
	}
	if _, ok := seen[m.DefaultLocale]; !ok {
		return Invalid(manifestSource, "default_locale", "%q is not one of the configured locales", m.DefaultLocale)
	}

	sources := map[string]struct{}{}
	for i, t := range m.Translations {
		if _, ok := seen[t.Code]; !ok {
			return Invalid(manifestSource, indexed("translations", i)+".code", "%q is not a configured locale", t.Code)
		}
		if t.Source == "" {
			return Invalid(manifestSource, indexed("translations", i)+".source", "is required")
		}
		switch t.SourceType {
		case "yaml", "yml", "toml":
		default:
			return Invalid(manifestSource, indexed("translations", i)+".source_type", "unsupported dictionary format %q", t.SourceType)
		}
		sources[t.Code] = struct{}{}
	}
	for _, l := range m.Locales {
		if _, ok := sources[l.Code]; !ok {
			return Invalid(manifestSource, "translations", "no dictionary for locale %q", l.Code)
		}
	}

	for i, r := range m.Routes {
		if !strings.HasPrefix(r.Path, "/") {
			return Invalid(manifestSource, indexed("routes", i)+".path", "%q must start with /", r.Path)
		}
		if r.Page != PageHome && r.Page != PageAbout {
			return Invalid(manifestSource, indexed("routes", i)+".page", "unknown page %q", r.Page)
		}
	}

	return nil
}

func indexed(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}
