package site

import (
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/content"
	"github.com/ZeiZel/self-hosted/i18n"
)

const ManifestFile = "manifest.yaml"

// Site is the static configuration assembled once at startup. Nothing in it changes
// afterwards, so it is shared by reference across requests.
type Site struct {
	Dir      string
	Manifest *config.SiteManifest
	Locales  *i18n.Catalog
	Content  *content.Catalog
	Composer *composer.Composer
}

// Load reads the manifest, dictionaries and content under env.SiteDir. Any contract
// violation is returned as a *config.ConfigurationError before anything is composed.
func Load(env config.Env) (*Site, error) {
	dir := env.SiteDir
	if dir == "" {
		dir = "."
	}

	manifest, err := config.LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, errors.Wrap(err, "error loading manifest")
	}
	if env.AppOrigin != "" {
		manifest.Origin = env.AppOrigin
		if err := manifest.Validate(); err != nil {
			return nil, config.WithSource(err, "APP_ORIGIN", "")
		}
	}

	locales, err := loadTranslations(dir, manifest)
	if err != nil {
		return nil, errors.Wrap(err, "error loading translations")
	}

	lists, err := content.Load(filepath.Join(dir, manifest.Content))
	if err != nil {
		return nil, errors.Wrap(err, "error loading content")
	}

	comp, err := composer.New(locales, lists)
	if err != nil {
		return nil, errors.Wrap(err, "error checking translations")
	}

	slog.Debug("site loaded",
		"dir", dir,
		"locales", manifest.LocaleCodes(),
		"default_locale", manifest.DefaultLocale,
		"services", len(lists.Services),
		"quick_start", len(lists.QuickStart),
	)

	return &Site{
		Dir:      dir,
		Manifest: manifest,
		Locales:  locales,
		Content:  lists,
		Composer: comp,
	}, nil
}

func loadTranslations(dir string, manifest *config.SiteManifest) (*i18n.Catalog, error) {
	bundles := make(map[i18n.Locale]*i18n.TextBundle, len(manifest.Translations))
	for _, t := range manifest.Translations {
		locale := i18n.Locale(t.Code)
		if _, dup := bundles[locale]; dup {
			return nil, config.Invalid("manifest", "translations", "more than one dictionary for %q", t.Code)
		}
		b, err := i18n.LoadDictionary(locale, filepath.Join(dir, t.Source), t.SourceType)
		if err != nil {
			return nil, err
		}
		bundles[locale] = b
	}

	supported := make([]i18n.Locale, 0, len(manifest.Locales))
	for _, code := range manifest.LocaleCodes() {
		supported = append(supported, i18n.Locale(code))
	}
	return i18n.NewCatalog(i18n.Locale(manifest.DefaultLocale), bundles, supported...)
}

// StaticDir is where static assets are served from.
func (s *Site) StaticDir() string {
	return filepath.Join(s.Dir, "static")
}
