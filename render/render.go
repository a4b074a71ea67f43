package render

import (
	"embed"
	"html/template"
	"path"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"

	"github.com/ZeiZel/self-hosted/components"
	"github.com/ZeiZel/self-hosted/composer"
	"github.com/ZeiZel/self-hosted/config"
	"github.com/ZeiZel/self-hosted/i18n"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutTemplate   = "templates/layouts/base.plush.html"
	notFoundTemplate = "templates/404.plush.html"
)

// Chrome is everything the layout needs besides the composed page.
type Chrome struct {
	Manifest *config.SiteManifest
	Bundle   *i18n.TextBundle
	Links    Links
	// Path is the page's site path without base URL or locale prefix, e.g. "/about".
	Path string
	Year int
}

// Renderer is the plush layout host for composed pages.
type Renderer struct {
	sources map[string]string
}

// New loads the embedded templates and checks that each one parses.
func New() (*Renderer, error) {
	r := &Renderer{sources: map[string]string{}}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := r.load(path.Join("templates", e.Name())); err != nil {
			return nil, err
		}
	}
	if err := r.load(layoutTemplate); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) load(name string) error {
	content, err := templateFS.ReadFile(name)
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := plush.Parse(string(content)); err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	r.sources[name] = string(content)
	return nil
}

func (r *Renderer) exec(name string, ctx *plush.Context) (string, error) {
	source, ok := r.sources[name]
	if !ok {
		return "", errors.Errorf("unknown template %s", name)
	}
	t, err := plush.Parse(source)
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", name)
	}
	out, err := t.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "execute %s", name)
	}
	return out, nil
}

// Section renders one section through the template named after its kind.
func (r *Renderer) Section(s components.RenderedSection, links Links) (template.HTML, error) {
	ctx := plush.NewContext()
	ctx.Set("section", newSectionView(s, links))
	out, err := r.exec("templates/"+string(s.Kind)+".plush.html", ctx)
	if err != nil {
		return "", err
	}
	return template.HTML(out), nil
}

// Page renders a composed page inside the base layout.
func (r *Renderer) Page(page composer.Page, chrome Chrome) (string, error) {
	var body strings.Builder
	for _, s := range page.Sections {
		html, err := r.Section(s, chrome.Links)
		if err != nil {
			return "", errors.Wrapf(err, "render section %s", s.Kind)
		}
		body.WriteString(string(html))
	}

	title := page.Title
	if page.Name != composer.PageHome {
		title = page.Title + " | " + chrome.Bundle.Text("site.title")
	}
	return r.layout(chrome, title, page.Description, template.HTML(body.String()))
}

// NotFound renders the 404 page in the chrome's locale.
func (r *Renderer) NotFound(chrome Chrome) (string, error) {
	ctx := plush.NewContext()
	ctx.Set("text", chrome.Bundle.Text)
	ctx.Set("homeHref", chrome.Links.Href("/"))
	body, err := r.exec(notFoundTemplate, ctx)
	if err != nil {
		return "", err
	}
	return r.layout(chrome, chrome.Bundle.Text("notFound.title"), chrome.Bundle.Text("site.tagline"), template.HTML(body))
}

func (r *Renderer) layout(chrome Chrome, title, description string, yield template.HTML) (string, error) {
	m := chrome.Manifest
	bundle := chrome.Bundle
	links := chrome.Links

	ctx := plush.NewContext()
	ctx.Set("yield", yield)
	ctx.Set("title", title)
	ctx.Set("description", description)
	ctx.Set("siteTitle", bundle.Text("site.title"))
	ctx.Set("homeHref", links.Href("/"))

	loc, _ := m.Locale(string(bundle.Locale()))
	ctx.Set("lang", loc.HTMLLang)
	ctx.Set("dir", loc.Direction)

	canonical := ""
	if m.Origin != "" && chrome.Path != "" {
		canonical = strings.TrimSuffix(m.Origin, "/") + links.Href(chrome.Path)
	}
	ctx.Set("canonical", canonical)
	ctx.Set("hasCanonical", canonical != "")
	ctx.Set("alternates", alternates(m, links, chrome.Path))

	metadata := make([]metaView, 0, len(m.Metadata))
	for _, t := range m.Metadata {
		if t.Property != "" {
			metadata = append(metadata, metaView{Name: t.Property, Content: t.Content, IsProperty: true})
		} else {
			metadata = append(metadata, metaView{Name: t.Name, Content: t.Content})
		}
	}
	ctx.Set("metadata", metadata)

	navbar := make([]navView, 0, len(m.Navbar))
	for _, item := range m.Navbar {
		navbar = append(navbar, newNavView(item, bundle, links))
	}
	ctx.Set("navbar", navbar)

	columns := make([]footerColumnView, 0, len(m.Footer.Columns))
	for _, c := range m.Footer.Columns {
		col := footerColumnView{Title: c.Title}
		if c.TitleKey != "" {
			col.Title = bundle.Text(c.TitleKey)
		}
		for _, item := range c.Items {
			col.Items = append(col.Items, newNavView(item, bundle, links))
		}
		columns = append(columns, col)
	}
	ctx.Set("footer", columns)
	ctx.Set("footerStyle", m.Footer.Style)

	copyright := ""
	if m.Footer.CopyrightKey != "" {
		copyright = bundle.Format(m.Footer.CopyrightKey, map[string]interface{}{"Year": chrome.Year})
	}
	ctx.Set("copyright", copyright)

	return r.exec(layoutTemplate, ctx)
}

func alternates(m *config.SiteManifest, links Links, pagePath string) []Alternate {
	if pagePath == "" {
		pagePath = "/"
	}
	out := make([]Alternate, 0, len(m.Locales))
	for _, l := range m.Locales {
		locale := i18n.Locale(l.Code)
		out = append(out, Alternate{
			Locale:   l.Code,
			Label:    l.Label,
			HTMLLang: l.HTMLLang,
			Href:     links.In(locale).Href(pagePath),
			Active:   locale == links.Locale,
		})
	}
	return out
}
