package composer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeiZel/self-hosted/components"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/content"
	"github.com/ZeiZel/self-hosted/i18n"
)

func messages(overrides map[string]string) map[string]string {
	m := map[string]string{
		"site.title":            "Self-hosted Infrastructure",
		"site.tagline":          "Complete self-hosted infrastructure solution",
		"hero.title":            "Self-hosted Infrastructure",
		"hero.subtitle":         "Complete self-hosted infrastructure solution",
		"hero.getStarted":       "Get Started →",
		"hero.viewServices":     "View Services",
		"about.title":           "About This Project",
		"about.description1":    "First.",
		"about.description2":    "Second.",
		"features.title":        "Key Features",
		"services.title":        "Services Overview",
		"services.summary":      "Comprehensive set of self-hosted services",
		"services.viewAll":      "View All Services →",
		"quickStart.title":      "Quick Start",
		"quickStart.summary":    "Choose your deployment method",
		"techStack.title":       "Technology Stack",
		"aboutPage.title":       "About",
		"aboutPage.author.name": "ZeiZel",
		"aboutPage.author.bio":  "I work with self-hosted infrastructure.",
		"aboutPage.author.repositoryLink": "View Repository on GitHub",
	}
	for k, v := range overrides {
		m[k] = v
	}
	return m
}

func testLists() *content.Catalog {
	return &content.Catalog{
		Features: []content.Feature{
			{Title: "Complete Infrastructure", Description: "Full-stack", Icon: content.Some("🏗️")},
			{Title: "Production Ready", Description: "Hardened", Icon: content.Some("✅")},
		},
		Services: []content.Service{
			{Title: "Storage", Description: "Sync", Category: content.Some("Storage"), Destination: content.Some("/docs/services/storage")},
			{Title: "Monitoring", Description: "Grafana", Icon: content.Some("📊")},
		},
		QuickStart: []content.QuickStartLink{
			{Title: "Docker Compose Deployment", Description: "Local", Destination: "/docs/deployment/docker", Icon: content.Some("🐳")},
		},
		TechStack: []content.TechItem{{Name: "Kubernetes", Icon: content.Some("☸️")}, {Name: "Helm"}},
		HeroActions: []content.Action{
			{LabelKey: "hero.getStarted", Destination: "/docs/getting-started/overview", Primary: true},
			{LabelKey: "hero.viewServices", Destination: "/docs/services/overview"},
		},
		ServiceActions: []content.Action{{LabelKey: "services.viewAll", Destination: "/docs/services/overview"}},
		AboutActions:   []content.Action{{LabelKey: "aboutPage.author.repositoryLink", Destination: "https://github.com/ZeiZel/self-hosted", Primary: true}},
	}
}

func newComposer(t *testing.T) *Composer {
	t.Helper()
	en := i18n.NewTextBundle("en", messages(nil))
	ru := i18n.NewTextBundle("ru", messages(map[string]string{
		"quickStart.title": "Быстрый старт",
		"hero.getStarted":  "Начать →",
		"aboutPage.title":  "О проекте",
	}))
	locales, err := i18n.NewCatalog("en", map[i18n.Locale]*i18n.TextBundle{"en": en, "ru": ru}, "en", "ru")
	require.NoError(t, err)
	c, err := New(locales, testLists())
	require.NoError(t, err)
	return c
}

func kinds(sections []components.RenderedSection) []components.SectionKind {
	out := make([]components.SectionKind, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestComposeSectionOrder(t *testing.T) {
	c := newComposer(t)
	for _, l := range []i18n.Locale{"en", "ru", "de", ""} {
		assert.Equal(t, Order, kinds(c.Compose(l).Sections), "locale %q", l)
	}

	empty, err := New(c.Locales(), &content.Catalog{})
	require.NoError(t, err)
	page := empty.Compose("en")
	assert.Equal(t, Order, kinds(page.Sections))
	for _, s := range page.Sections {
		assert.Empty(t, s.Items)
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	c := newComposer(t)
	assert.Equal(t, c.Compose("ru"), c.Compose("ru"))

	bundle := c.Locales().Resolve("en")
	lists := testLists()
	assert.Equal(t, Sections(bundle, lists), Sections(bundle, lists))
}

func TestComposeUsesLocaleBundle(t *testing.T) {
	c := newComposer(t)

	ru := c.Compose("ru")
	assert.Equal(t, i18n.Locale("ru"), ru.Locale)
	assert.Equal(t, "Быстрый старт", ru.Sections[4].Title)
	assert.Equal(t, "Начать →", ru.Sections[0].Actions[0].Label)

	fallback := c.Compose("fr")
	assert.Equal(t, i18n.Locale("en"), fallback.Locale)
	assert.Equal(t, c.Compose("en"), fallback)
}

func TestComposeSectionContent(t *testing.T) {
	page := newComposer(t).Compose("en")
	assert.Equal(t, "Self-hosted Infrastructure", page.Title)
	assert.Equal(t, "Complete self-hosted infrastructure solution", page.Description)

	hero := page.Sections[0]
	assert.Equal(t, content.Some("Complete self-hosted infrastructure solution"), hero.Description)
	require.Len(t, hero.Actions, 2)
	assert.True(t, hero.Actions[0].Primary)
	assert.Equal(t, "/docs/services/overview", hero.Actions[1].Destination)

	about := page.Sections[1]
	assert.Equal(t, []string{"First.", "Second."}, about.Paragraphs)

	services := page.Sections[3]
	assert.Equal(t, content.Some("Comprehensive set of self-hosted services"), services.Description)
	assert.Equal(t, "View All Services →", services.Actions[0].Label)
	assert.True(t, services.Items[0].Navigable())
	assert.False(t, services.Items[1].Navigable())

	tech := page.Sections[5]
	assert.Equal(t, "Helm", tech.Items[1].Title)
	assert.False(t, tech.Items[1].Icon.IsSet())
}

func TestComposeDoesNotMutateLists(t *testing.T) {
	en := i18n.NewTextBundle("en", messages(nil))
	lists := testLists()
	before := testLists()
	_ = Sections(en, lists)
	assert.Equal(t, before, lists)
}

func TestSectionsAreIsolated(t *testing.T) {
	en := i18n.NewTextBundle("en", messages(nil))

	sections := Sections(en, nil)
	assert.Equal(t, Order, kinds(sections))
	assert.Equal(t, "About This Project", sections[1].Title)
	assert.Empty(t, sections[0].Title)
	assert.Empty(t, sections[3].Items)
}

func TestComposeFor(t *testing.T) {
	c := newComposer(t)
	page := c.ComposeFor(i18n.LocaleFunc(func() i18n.Locale { return "ru" }))
	assert.Equal(t, i18n.Locale("ru"), page.Locale)
}

func TestComposeAbout(t *testing.T) {
	c := newComposer(t)

	page, ok := c.ComposePage(PageAbout, "ru")
	require.True(t, ok)
	assert.Equal(t, "О проекте", page.Title)
	assert.Equal(t, "I work with self-hosted infrastructure.", page.Description)
	require.Len(t, page.Sections, 1)
	author := page.Sections[0]
	assert.Equal(t, components.SectionAuthor, author.Kind)
	assert.Equal(t, "ZeiZel", author.Title)
	assert.Equal(t, "https://github.com/ZeiZel/self-hosted", author.Actions[0].Destination)

	_, ok = c.ComposePage("pricing", "en")
	assert.False(t, ok)
}

func TestNewRejectsIncompleteBundle(t *testing.T) {
	en := i18n.NewTextBundle("en", messages(nil))
	partial := messages(nil)
	delete(partial, "techStack.title")
	ru := i18n.NewTextBundle("ru", partial)
	locales, err := i18n.NewCatalog("en", map[i18n.Locale]*i18n.TextBundle{"en": en, "ru": ru}, "en", "ru")
	require.NoError(t, err)

	_, err = New(locales, testLists())
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfiguration))
	assert.Contains(t, err.Error(), "techStack.title")
}

func TestNewRejectsMissingActionLabel(t *testing.T) {
	m := messages(nil)
	delete(m, "services.viewAll")
	en := i18n.NewTextBundle("en", m)
	locales, err := i18n.NewCatalog("en", map[i18n.Locale]*i18n.TextBundle{"en": en}, "en")
	require.NoError(t, err)

	_, err = New(locales, testLists())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "services.viewAll")
}
