package composer

import (
	"fmt"
	"log/slog"

	"github.com/ZeiZel/self-hosted/components"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/content"
	"github.com/ZeiZel/self-hosted/i18n"
)

type PageName string

const (
	PageHome  PageName = config.PageHome
	PageAbout PageName = config.PageAbout
)

// Order is the fixed section order of the home page.
var Order = []components.SectionKind{
	components.SectionHero,
	components.SectionAbout,
	components.SectionFeatures,
	components.SectionServices,
	components.SectionQuickStart,
	components.SectionTechStack,
}

// RequiredKeys are the text bundle keys every locale must define.
var RequiredKeys = []string{
	"site.title",
	"site.tagline",
	"hero.title",
	"hero.subtitle",
	"about.title",
	"about.description1",
	"about.description2",
	"features.title",
	"services.title",
	"services.summary",
	"quickStart.title",
	"quickStart.summary",
	"techStack.title",
	"aboutPage.title",
	"aboutPage.author.name",
	"aboutPage.author.bio",
}

// Page is a composed page plus the title and description for the layout's
// <title> and meta description.
type Page struct {
	Name        PageName                     `json:"page"`
	Locale      i18n.Locale                  `json:"locale"`
	Title       string                       `json:"title"`
	Description string                       `json:"description"`
	Sections    []components.RenderedSection `json:"sections"`
}

// Composer turns a locale into pages. It holds only read-only configuration and is safe
// for concurrent use.
type Composer struct {
	locales *i18n.Catalog
	lists   *content.Catalog
}

// New checks that every supported locale defines the keys the pages use.
func New(locales *i18n.Catalog, lists *content.Catalog) (*Composer, error) {
	keys := append(append([]string{}, RequiredKeys...), lists.LabelKeys()...)
	for _, l := range locales.Supported() {
		if missing := locales.Resolve(l).Missing(keys...); len(missing) > 0 {
			return nil, config.Invalid("dictionary", string(l), "missing keys %v", missing)
		}
	}
	return &Composer{locales: locales, lists: lists}, nil
}

func (c *Composer) Locales() *i18n.Catalog { return c.locales }

// Compose builds the home page for locale. Unsupported locales get the default bundle.
func (c *Composer) Compose(locale i18n.Locale) Page {
	bundle := c.locales.Resolve(locale)
	return Page{
		Name:        PageHome,
		Locale:      bundle.Locale(),
		Title:       bundle.Text("site.title"),
		Description: bundle.Text("site.tagline"),
		Sections:    Sections(bundle, c.lists),
	}
}

// ComposeFor composes the home page for the host's current locale.
func (c *Composer) ComposeFor(src i18n.LocaleSource) Page {
	return c.Compose(src.CurrentLocale())
}

// ComposeAbout builds the about page: the author and a link to the repository.
func (c *Composer) ComposeAbout(locale i18n.Locale) Page {
	bundle := c.locales.Resolve(locale)
	return Page{
		Name:        PageAbout,
		Locale:      bundle.Locale(),
		Title:       bundle.Text("aboutPage.title"),
		Description: bundle.Text("aboutPage.author.bio"),
		Sections: []components.RenderedSection{
			isolated(components.SectionAuthor, func() components.RenderedSection {
				return components.RenderedSection{
					Kind:        components.SectionAuthor,
					Title:       bundle.Text("aboutPage.author.name"),
					Description: content.Some(bundle.Text("aboutPage.author.bio")),
					Items:       []components.RenderedItem{},
					Actions:     actions(bundle, c.lists.AboutActions),
				}
			}),
		},
	}
}

// ComposePage dispatches on the page name.
func (c *Composer) ComposePage(name PageName, locale i18n.Locale) (Page, bool) {
	switch name {
	case PageHome:
		return c.Compose(locale), true
	case PageAbout:
		return c.ComposeAbout(locale), true
	}
	return Page{}, false
}

type sectionBuilder func(*i18n.TextBundle, *content.Catalog) components.RenderedSection

var builders = map[components.SectionKind]sectionBuilder{
	components.SectionHero:       hero,
	components.SectionAbout:      about,
	components.SectionFeatures:   features,
	components.SectionServices:   services,
	components.SectionQuickStart: quickStart,
	components.SectionTechStack:  techStack,
}

// Sections composes the home page sections in Order from a bundle and descriptor lists.
// Identical inputs always give structurally equal output.
func Sections(bundle *i18n.TextBundle, lists *content.Catalog) []components.RenderedSection {
	out := make([]components.RenderedSection, 0, len(Order))
	for _, kind := range Order {
		build := builders[kind]
		out = append(out, isolated(kind, func() components.RenderedSection {
			return build(bundle, lists)
		}))
	}
	return out
}

// isolated runs build and turns a panic into an empty section of the same kind,
// so one broken section never takes the page down.
func isolated(kind components.SectionKind, build func() components.RenderedSection) (s components.RenderedSection) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("section failed to compose", "section", kind, "panic", fmt.Sprint(r))
			s = components.RenderedSection{Kind: kind, Items: []components.RenderedItem{}}
		}
	}()
	return build()
}

func hero(b *i18n.TextBundle, lists *content.Catalog) components.RenderedSection {
	return components.RenderedSection{
		Kind:        components.SectionHero,
		Title:       b.Text("hero.title"),
		Description: content.Some(b.Text("hero.subtitle")),
		Items:       []components.RenderedItem{},
		Actions:     actions(b, lists.HeroActions),
	}
}

func about(b *i18n.TextBundle, _ *content.Catalog) components.RenderedSection {
	return components.RenderedSection{
		Kind:       components.SectionAbout,
		Title:      b.Text("about.title"),
		Paragraphs: []string{b.Text("about.description1"), b.Text("about.description2")},
		Items:      []components.RenderedItem{},
	}
}

func features(b *i18n.TextBundle, lists *content.Catalog) components.RenderedSection {
	return components.FeatureGrid(b.Text("features.title"), lists.Features)
}

func services(b *i18n.TextBundle, lists *content.Catalog) components.RenderedSection {
	s := components.ServiceCards(b.Text("services.title"), lists.Services)
	s.Description = content.Some(b.Text("services.summary"))
	s.Actions = actions(b, lists.ServiceActions)
	return s
}

func quickStart(b *i18n.TextBundle, lists *content.Catalog) components.RenderedSection {
	s := components.QuickStartLinks(b.Text("quickStart.title"), lists.QuickStart)
	s.Description = content.Some(b.Text("quickStart.summary"))
	return s
}

func techStack(b *i18n.TextBundle, lists *content.Catalog) components.RenderedSection {
	return components.TechStack(b.Text("techStack.title"), lists.TechStack)
}

func actions(b *i18n.TextBundle, list []content.Action) []components.RenderedAction {
	if len(list) == 0 {
		return nil
	}
	out := make([]components.RenderedAction, 0, len(list))
	for _, a := range list {
		out = append(out, components.Action(b.Text(a.LabelKey), a))
	}
	return out
}
