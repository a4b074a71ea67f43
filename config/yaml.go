package config

// config/yaml.go

const (
	PageHome  = "home"
	PageAbout = "about"
)

type SiteManifest struct {
	Title         string        `yaml:"title"`
	Tagline       string        `yaml:"tagline"`
	Origin        string        `yaml:"origin"`
	BaseURL       string        `yaml:"base_url"`
	Repository    string        `yaml:"repository"`
	DefaultLocale string        `yaml:"default_locale"`
	Locales       []Locale      `yaml:"locales"`
	Translations  []Translation `yaml:"translations"`
	Content       string        `yaml:"content"`
	Routes        []Route       `yaml:"routes"`
	Navbar        []NavItem     `yaml:"navbar"`
	Footer        Footer        `yaml:"footer"`
	Metadata      []MetaTag     `yaml:"metadata"`
}

type Locale struct {
	Code      string `yaml:"code"`
	Label     string `yaml:"label"`
	HTMLLang  string `yaml:"html_lang"`
	Direction string `yaml:"direction"`
}

type Route struct {
	Path string `yaml:"path"`
	Page string `yaml:"page"`
}

type Translation struct {
	Code       string `yaml:"code"`
	Source     string `yaml:"source"`
	SourceType string `yaml:"source_type"`
}

// NavItem is a navbar or footer link. To is a site path, Href an external URL.
type NavItem struct {
	Label    string `yaml:"label"`
	LabelKey string `yaml:"label_key"`
	To       string `yaml:"to"`
	Href     string `yaml:"href"`
	Position string `yaml:"position"`
}

type Footer struct {
	Style        string         `yaml:"style"`
	Columns      []FooterColumn `yaml:"columns"`
	CopyrightKey string         `yaml:"copyright_key"`
}

type FooterColumn struct {
	Title    string    `yaml:"title"`
	TitleKey string    `yaml:"title_key"`
	Items    []NavItem `yaml:"items"`
}

type MetaTag struct {
	Name     string `yaml:"name"`
	Property string `yaml:"property"`
	Content  string `yaml:"content"`
}

// Locale returns the locale entry for code.
func (m *SiteManifest) Locale(code string) (Locale, bool) {
	for _, l := range m.Locales {
		if l.Code == code {
			return l, true
		}
	}
	return Locale{}, false
}

// LocaleCodes returns the configured locale codes in manifest order.
func (m *SiteManifest) LocaleCodes() []string {
	codes := make([]string, 0, len(m.Locales))
	for _, l := range m.Locales {
		codes = append(codes, l.Code)
	}
	return codes
}
