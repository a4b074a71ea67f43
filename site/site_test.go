package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/i18n"
)

func TestLoadRepositorySite(t *testing.T) {
	s, err := Load(config.Env{SiteDir: ".."})
	require.NoError(t, err)

	assert.Equal(t, i18n.Locale("en"), s.Locales.Default())
	assert.Equal(t, []i18n.Locale{"en", "ru"}, s.Locales.Supported())
	assert.Len(t, s.Content.Services, 6)
	assert.Len(t, s.Content.TechStack, 8)

	en := s.Composer.Compose("en")
	assert.Equal(t, "Self-hosted Infrastructure", en.Title)
	assert.Equal(t, "Quick Start", en.Sections[4].Title)

	ru := s.Composer.Compose("ru")
	assert.Equal(t, "Быстрый старт", ru.Sections[4].Title)
	assert.Equal(t, "Начать →", ru.Sections[0].Actions[0].Label)

	assert.Equal(t, s.Composer.Compose("en"), s.Composer.Compose("de"))

	about := s.Composer.ComposeAbout("ru")
	assert.Equal(t, "О проекте", about.Title)
	assert.Equal(t, composer.PageAbout, about.Name)
}

func TestLoadAppOriginOverride(t *testing.T) {
	s, err := Load(config.Env{SiteDir: "..", AppOrigin: "http://localhost:9010"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9010", s.Manifest.Origin)

	_, err = Load(config.Env{SiteDir: "..", AppOrigin: "localhost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
}

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

const minimalManifest = `
title: Test
default_locale: en
locales:
  - code: en
translations:
  - code: en
    source: translations/en.yaml
`

func TestLoadFailsFastOnInvalidContent(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"manifest.yaml":        minimalManifest,
		"translations/en.yaml": "hero:\n  title: Hi\n",
		"content.yaml":         "services:\n  - title: Storage\n",
	})

	_, err := Load(config.Env{SiteDir: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
	assert.Contains(t, err.Error(), "services[0].description")
}

func TestLoadFailsFastOnIncompleteDictionary(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"manifest.yaml":        minimalManifest,
		"translations/en.yaml": "hero:\n  title: Hi\n",
		"content.yaml":         "services: []\n",
	})

	_, err := Load(config.Env{SiteDir: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
	assert.Contains(t, err.Error(), "site.title")
}

func TestLoadRejectsUnknownDefaultLocale(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"manifest.yaml": `
title: Test
default_locale: de
locales:
  - code: en
translations:
  - code: en
    source: translations/en.yaml
`,
	})

	_, err := Load(config.Env{SiteDir: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
	assert.Contains(t, err.Error(), "default_locale")
}
